// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package algorithm

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/fault"
	"github.com/algogate/algogated/guard"
	"github.com/algogate/algogated/storage"
)

// Registry - interface for the algorithm token registry
type Registry interface {
	Mint(caller account.Address, metadata string, contentId string) (uint64, error)
	OwnerOf(tokenId uint64) (account.Address, error)
	Transfer(caller account.Address, tokenId uint64, newOwner account.Address) error
	SetMetadata(caller account.Address, tokenId uint64, metadata string) error
	Metadata(tokenId uint64) (string, error)
	SetContentId(caller account.Address, tokenId uint64, contentId string) error
	PutContentId(tokenId uint64, contentId string) error
	ContentId(tokenId uint64) (string, error)
	LinkExecution(trx storage.Transaction, tokenId uint64, executionId uint64) error
	Executions(tokenId uint64) ([]uint64, error)
	Total() uint64
}

// Handles - the storage pools used by the registry
type Handles struct {
	Owners      storage.Handle
	Meta        storage.Handle
	Content     storage.Handle
	Executions  storage.Handle
	Identifiers storage.Handle
}

// key for the monotonic identifier counter
var identifierKey = []byte("algorithm")

type registry struct {
	sync.RWMutex

	log     *logger.L
	handles Handles

	// set once during initialise
	initialised bool
}

var globalData registry

// Initialise - setup the registry
func Initialise(handles Handles) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("algorithm")
	globalData.handles = handles
	globalData.initialised = true
	globalData.log.Info("initialised")
	return nil
}

// Finalise - shut down the registry
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()
	globalData.initialised = false
}

// Get - return the Registry interface
func Get() Registry {
	return &globalData
}

// convert a token id to its 8 byte big endian key
func tokenKey(tokenId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, tokenId)
	return key
}

// Mint - create a new token owned by the caller
//
// identifiers are monotonically assigned starting from 1
func (r *registry) Mint(caller account.Address, metadata string, contentId string) (uint64, error) {
	r.Lock()
	defer r.Unlock()

	if !r.initialised {
		return 0, fault.NotInitialised
	}
	if caller.IsZero() {
		return 0, fault.MissingParameters
	}
	if "" != contentId {
		if err := ValidateContentId(contentId); nil != err {
			return 0, err
		}
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return 0, err
	}

	next, _ := r.handles.Identifiers.GetN(identifierKey)
	tokenId := next + 1
	trx.PutN(r.handles.Identifiers, identifierKey, tokenId)

	key := tokenKey(tokenId)
	trx.Put(r.handles.Owners, key, caller.Bytes())
	if "" != metadata {
		trx.Put(r.handles.Meta, key, []byte(metadata))
	}
	if "" != contentId {
		trx.Put(r.handles.Content, key, []byte(contentId))
	}
	if err := trx.Commit(); nil != err {
		return 0, err
	}

	r.log.Infof("mint: token: %d  owner: %s", tokenId, caller)
	return tokenId, nil
}

// OwnerOf - current owner of a token
func (r *registry) OwnerOf(tokenId uint64) (account.Address, error) {
	r.RLock()
	defer r.RUnlock()

	buffer := r.handles.Owners.Get(tokenKey(tokenId))
	if nil == buffer {
		return account.Zero, fault.TokenNotFound
	}
	return account.AddressFromBytes(buffer)
}

// Transfer - move a token to a new owner
func (r *registry) Transfer(caller account.Address, tokenId uint64, newOwner account.Address) error {
	r.Lock()
	defer r.Unlock()

	if newOwner.IsZero() {
		return fault.MissingParameters
	}

	if err := r.requireOwner(caller, tokenId); nil != err {
		return err
	}

	r.handles.Owners.Put(tokenKey(tokenId), newOwner.Bytes())
	r.log.Infof("transfer: token: %d  owner: %s → %s", tokenId, caller, newOwner)
	return nil
}

// SetMetadata - owner-gated metadata update
func (r *registry) SetMetadata(caller account.Address, tokenId uint64, metadata string) error {
	r.Lock()
	defer r.Unlock()

	if err := r.requireOwner(caller, tokenId); nil != err {
		return err
	}

	r.handles.Meta.Put(tokenKey(tokenId), []byte(metadata))
	return nil
}

// Metadata - read the metadata of a token
func (r *registry) Metadata(tokenId uint64) (string, error) {
	r.RLock()
	defer r.RUnlock()

	if !r.handles.Owners.Has(tokenKey(tokenId)) {
		return "", fault.TokenNotFound
	}
	return string(r.handles.Meta.Get(tokenKey(tokenId))), nil
}

// SetContentId - owner-gated content id update
//
// last write wins; setting an identical value is a no-op that still
// succeeds
func (r *registry) SetContentId(caller account.Address, tokenId uint64, contentId string) error {
	r.Lock()
	defer r.Unlock()

	if err := r.requireOwner(caller, tokenId); nil != err {
		return err
	}

	return r.putContentId(tokenId, contentId)
}

// PutContentId - unguarded content id update
//
// for the gateway entry points, which apply their own authority checks
// before storing
func (r *registry) PutContentId(tokenId uint64, contentId string) error {
	r.Lock()
	defer r.Unlock()

	if !r.handles.Owners.Has(tokenKey(tokenId)) {
		return fault.TokenNotFound
	}
	return r.putContentId(tokenId, contentId)
}

func (r *registry) putContentId(tokenId uint64, contentId string) error {
	if err := ValidateContentId(contentId); nil != err {
		return err
	}
	r.handles.Content.Put(tokenKey(tokenId), []byte(contentId))
	return nil
}

// ContentId - read the content id of a token
//
// absence is a terminal error for callers that require the payload
func (r *registry) ContentId(tokenId uint64) (string, error) {
	r.RLock()
	defer r.RUnlock()

	buffer := r.handles.Content.Get(tokenKey(tokenId))
	if nil == buffer {
		return "", fault.ContentIdNotFound
	}
	return string(buffer), nil
}

// LinkExecution - append an execution token to the algorithm's list
//
// the list is append-only; the write is staged on the caller's
// transaction so the link commits together with the execution record
func (r *registry) LinkExecution(trx storage.Transaction, tokenId uint64, executionId uint64) error {
	r.Lock()
	defer r.Unlock()

	key := tokenKey(tokenId)
	if !r.handles.Owners.Has(key) {
		return fault.TokenNotFound
	}

	list := r.handles.Executions.Get(key)
	buffer := make([]byte, 0, len(list)+8)
	buffer = append(buffer, list...)
	buffer = append(buffer, tokenKey(executionId)...)
	trx.Put(r.handles.Executions, key, buffer)
	return nil
}

// Executions - the execution tokens linked to an algorithm
func (r *registry) Executions(tokenId uint64) ([]uint64, error) {
	r.RLock()
	defer r.RUnlock()

	key := tokenKey(tokenId)
	if !r.handles.Owners.Has(key) {
		return nil, fault.TokenNotFound
	}

	buffer := r.handles.Executions.Get(key)
	if 0 != len(buffer)%8 {
		logger.Panicf("algorithm.Executions corrupt list for: %d", tokenId)
	}

	list := make([]uint64, 0, len(buffer)/8)
	for i := 0; i < len(buffer); i += 8 {
		list = append(list, binary.BigEndian.Uint64(buffer[i:i+8]))
	}
	return list, nil
}

// Total - highest token id minted so far
func (r *registry) Total() uint64 {
	r.RLock()
	defer r.RUnlock()

	element, found := r.handles.Owners.LastElement()
	if !found || len(element.Key) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(element.Key[:8])
}

// caller must hold at least a read lock
func (r *registry) requireOwner(caller account.Address, tokenId uint64) error {
	buffer := r.handles.Owners.Get(tokenKey(tokenId))
	if nil == buffer {
		return fault.TokenNotFound
	}
	owner, err := account.AddressFromBytes(buffer)
	if nil != err {
		return err
	}
	return guard.TokenOwnerOnly(owner, caller)
}
