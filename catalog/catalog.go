// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package catalog - registry of composable artwork parts
//
// parts are JSON records in a pool with a separate ownership pool, so
// a part can change hands without rewriting its description.  nested
// children attach external tokens underneath a part.
package catalog

import (
	"encoding/binary"
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/fault"
	"github.com/algogate/algogated/guard"
	"github.com/algogate/algogated/storage"
)

// PartKind - how a part composes into a larger piece
type PartKind string

const (
	Fixed PartKind = "fixed"
	Slot  PartKind = "slot"
)

// Part - a single catalog entry
type Part struct {
	Kind       PartKind          `json:"kind"`
	Layer      uint32            `json:"layer"`
	Uri        string            `json:"uri"`
	Equippable []account.Address `json:"equippable,omitempty"`
}

// Child - an external token nested under a part
type Child struct {
	Collection account.Address `json:"collection"`
	TokenId    uint64          `json:"token_id"`
}

// Catalog - the operations on parts
type Catalog interface {
	AddPart(caller account.Address, part Part) (uint64, error)
	Part(partId uint64) (Part, error)
	PartOwner(partId uint64) (account.Address, error)
	AddNestedChild(caller account.Address, partId uint64, child Child) error
	NestedChildren(partId uint64) ([]Child, error)
	LazyMint(caller account.Address, partId uint64, kind PartKind) error
}

// Handles - the storage pools used by the catalog
type Handles struct {
	Parts       storage.Handle
	Owners      storage.Handle
	Children    storage.Handle
	Identifiers storage.Handle
}

var identifierKey = []byte("part")

type catalog struct {
	sync.RWMutex

	log         *logger.L
	handles     Handles
	initialised bool
}

var globalData catalog

// Initialise - setup the catalog
func Initialise(handles Handles) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("catalog")
	globalData.log.Info("starting…")

	globalData.handles = handles
	globalData.initialised = true
	return nil
}

// Finalise - shut down the catalog
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()
	globalData.initialised = false
}

// Get - the global catalog
func Get() Catalog {
	return &globalData
}

func partKey(partId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, partId)
	return key
}

func validKind(kind PartKind) bool {
	return Fixed == kind || Slot == kind
}

// AddPart - store a new part owned by the caller
func (c *catalog) AddPart(caller account.Address, part Part) (uint64, error) {
	c.Lock()
	defer c.Unlock()

	if !c.initialised {
		return 0, fault.NotInitialised
	}
	if caller.IsZero() || !validKind(part.Kind) {
		return 0, fault.MissingParameters
	}

	buffer, err := json.Marshal(part)
	if nil != err {
		return 0, err
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return 0, err
	}

	next, _ := c.handles.Identifiers.GetN(identifierKey)
	partId := next + 1
	trx.PutN(c.handles.Identifiers, identifierKey, partId)

	key := partKey(partId)
	trx.Put(c.handles.Parts, key, buffer)
	trx.Put(c.handles.Owners, key, caller.Bytes())
	if err := trx.Commit(); nil != err {
		return 0, err
	}

	c.log.Infof("add part: %d  kind: %s  owner: %s", partId, part.Kind, caller)
	return partId, nil
}

// Part - fetch a part record
func (c *catalog) Part(partId uint64) (Part, error) {
	c.RLock()
	defer c.RUnlock()
	return c.part(partId)
}

func (c *catalog) part(partId uint64) (Part, error) {
	buffer := c.handles.Parts.Get(partKey(partId))
	if nil == buffer {
		return Part{}, fault.PartNotFound
	}
	var part Part
	if err := json.Unmarshal(buffer, &part); nil != err {
		logger.Panicf("catalog.part corrupt record for: %d: %s", partId, err)
	}
	return part, nil
}

// PartOwner - current owner of a part
func (c *catalog) PartOwner(partId uint64) (account.Address, error) {
	c.RLock()
	defer c.RUnlock()

	buffer := c.handles.Owners.Get(partKey(partId))
	if nil == buffer {
		return account.Zero, fault.PartNotFound
	}
	return account.AddressFromBytes(buffer)
}

// AddNestedChild - attach a token underneath a part
func (c *catalog) AddNestedChild(caller account.Address, partId uint64, child Child) error {
	c.Lock()
	defer c.Unlock()

	if err := c.requireOwner(caller, partId); nil != err {
		return err
	}

	children, err := c.nestedChildren(partId)
	if nil != err {
		return err
	}
	children = append(children, child)

	buffer, err := json.Marshal(children)
	if nil != err {
		return err
	}
	c.handles.Children.Put(partKey(partId), buffer)
	c.log.Infof("nest: part: %d  child: %s/%d", partId, child.Collection, child.TokenId)
	return nil
}

// NestedChildren - all tokens nested under a part
func (c *catalog) NestedChildren(partId uint64) ([]Child, error) {
	c.RLock()
	defer c.RUnlock()

	if !c.handles.Parts.Has(partKey(partId)) {
		return nil, fault.PartNotFound
	}
	return c.nestedChildren(partId)
}

func (c *catalog) nestedChildren(partId uint64) ([]Child, error) {
	buffer := c.handles.Children.Get(partKey(partId))
	if nil == buffer {
		return nil, nil
	}
	var children []Child
	if err := json.Unmarshal(buffer, &children); nil != err {
		logger.Panicf("catalog.nestedChildren corrupt record for: %d: %s", partId, err)
	}
	return children, nil
}

// LazyMint - finalise a part by rewriting its kind
func (c *catalog) LazyMint(caller account.Address, partId uint64, kind PartKind) error {
	c.Lock()
	defer c.Unlock()

	if !validKind(kind) {
		return fault.MissingParameters
	}
	if err := c.requireOwner(caller, partId); nil != err {
		return err
	}

	part, err := c.part(partId)
	if nil != err {
		return err
	}
	part.Kind = kind

	buffer, err := json.Marshal(part)
	if nil != err {
		return err
	}
	c.handles.Parts.Put(partKey(partId), buffer)
	c.log.Infof("lazy mint: part: %d  kind: %s", partId, kind)
	return nil
}

func (c *catalog) requireOwner(caller account.Address, partId uint64) error {
	buffer := c.handles.Owners.Get(partKey(partId))
	if nil == buffer {
		return fault.PartNotFound
	}
	owner, err := account.AddressFromBytes(buffer)
	if nil != err {
		return err
	}
	return guard.TokenOwnerOnly(owner, caller)
}
