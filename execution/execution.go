// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package execution

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/fault"
	"github.com/algogate/algogated/guard"
	"github.com/algogate/algogated/storage"
)

// Registry - the operations on execution tokens
type Registry interface {
	Mint(caller account.Address, parentId uint64) (uint64, error)
	OwnerOf(executionId uint64) (account.Address, error)
	Transfer(caller account.Address, executionId uint64, newOwner account.Address) error
	SetParent(caller account.Address, executionId uint64, parentId uint64) error
	Parent(executionId uint64) (uint64, error)
	Total() uint64
}

// Algorithms - the subset of the algorithm registry the execution
// registry needs to maintain the parent links
//
// the reverse link is staged on the caller's transaction so it lands
// in the same database batch as the parent record
type Algorithms interface {
	OwnerOf(tokenId uint64) (account.Address, error)
	LinkExecution(trx storage.Transaction, tokenId uint64, executionId uint64) error
}

// Handles - the storage pools used by the registry
type Handles struct {
	Owners      storage.Handle
	Parents     storage.Handle
	Identifiers storage.Handle
}

var identifierKey = []byte("execution")

type registry struct {
	sync.RWMutex

	log         *logger.L
	handles     Handles
	algorithms  Algorithms
	initialised bool
}

var globalData registry

// Initialise - setup the execution registry
func Initialise(handles Handles, algorithms Algorithms) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("execution")
	globalData.log.Info("starting…")

	globalData.handles = handles
	globalData.algorithms = algorithms
	globalData.initialised = true
	return nil
}

// Finalise - shut down the registry
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()
	globalData.initialised = false
}

// Get - the global registry
func Get() Registry {
	return &globalData
}

func tokenKey(executionId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, executionId)
	return key
}

// Mint - create an execution token bound to an existing algorithm
//
// the algorithm registry records the reverse link so holders of the
// algorithm token can enumerate the access tokens issued against it
func (r *registry) Mint(caller account.Address, parentId uint64) (uint64, error) {
	r.Lock()
	defer r.Unlock()

	if !r.initialised {
		return 0, fault.NotInitialised
	}
	if caller.IsZero() {
		return 0, fault.MissingParameters
	}
	if _, err := r.algorithms.OwnerOf(parentId); nil != err {
		return 0, err
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return 0, err
	}

	next, _ := r.handles.Identifiers.GetN(identifierKey)
	executionId := next + 1
	trx.PutN(r.handles.Identifiers, identifierKey, executionId)

	key := tokenKey(executionId)
	trx.Put(r.handles.Owners, key, caller.Bytes())
	trx.PutN(r.handles.Parents, key, parentId)

	if err := r.algorithms.LinkExecution(trx, parentId, executionId); nil != err {
		trx.Abort()
		return 0, err
	}
	if err := trx.Commit(); nil != err {
		return 0, err
	}

	r.log.Infof("mint: execution: %d  parent: %d  owner: %s", executionId, parentId, caller)
	return executionId, nil
}

// OwnerOf - current owner of an execution token
func (r *registry) OwnerOf(executionId uint64) (account.Address, error) {
	r.RLock()
	defer r.RUnlock()

	buffer := r.handles.Owners.Get(tokenKey(executionId))
	if nil == buffer {
		return account.Zero, fault.TokenNotFound
	}
	return account.AddressFromBytes(buffer)
}

// Transfer - move an execution token to a new owner
func (r *registry) Transfer(caller account.Address, executionId uint64, newOwner account.Address) error {
	r.Lock()
	defer r.Unlock()

	if err := r.requireOwner(caller, executionId); nil != err {
		return err
	}
	if newOwner.IsZero() {
		return fault.MissingParameters
	}
	r.handles.Owners.Put(tokenKey(executionId), newOwner.Bytes())
	r.log.Infof("transfer: execution: %d  owner: %s", executionId, newOwner)
	return nil
}

// SetParent - repoint an execution token at a different algorithm
func (r *registry) SetParent(caller account.Address, executionId uint64, parentId uint64) error {
	r.Lock()
	defer r.Unlock()

	if err := r.requireOwner(caller, executionId); nil != err {
		return err
	}
	if _, err := r.algorithms.OwnerOf(parentId); nil != err {
		return err
	}
	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	trx.PutN(r.handles.Parents, tokenKey(executionId), parentId)
	if err := r.algorithms.LinkExecution(trx, parentId, executionId); nil != err {
		trx.Abort()
		return err
	}
	if err := trx.Commit(); nil != err {
		return err
	}
	r.log.Infof("set parent: execution: %d  parent: %d", executionId, parentId)
	return nil
}

// Parent - the algorithm an execution token is bound to
func (r *registry) Parent(executionId uint64) (uint64, error) {
	r.RLock()
	defer r.RUnlock()

	parentId, ok := r.handles.Parents.GetN(tokenKey(executionId))
	if !ok {
		return 0, fault.ParentNotFound
	}
	return parentId, nil
}

// Total - highest execution token id minted so far
func (r *registry) Total() uint64 {
	r.RLock()
	defer r.RUnlock()

	element, found := r.handles.Owners.LastElement()
	if !found || len(element.Key) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(element.Key[:8])
}

func (r *registry) requireOwner(caller account.Address, executionId uint64) error {
	buffer := r.handles.Owners.Get(tokenKey(executionId))
	if nil == buffer {
		return fault.TokenNotFound
	}
	owner, err := account.AddressFromBytes(buffer)
	if nil != err {
		return err
	}
	return guard.TokenOwnerOnly(owner, caller)
}
