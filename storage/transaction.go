// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - pool writes staged and committed as one database batch
//
// an entry point that mutates more than one pool stages all of its
// writes on a transaction so a crash cannot persist a partial record.
// staged values are visible through the shared read cache before the
// commit, so a later stage of the same call reads what an earlier
// stage wrote.
type Transaction interface {
	Put(h Handle, key []byte, value []byte)
	PutN(h Handle, key []byte, value uint64)
	Delete(h Handle, key []byte)
	Commit() error
	Abort()
}

// only one transaction may be open at a time; entry points already
// serialise behind their registry mutex so contention means misuse
type transactionData struct {
	sync.Mutex
	inUse bool
	batch leveldb.Batch
}

var trxData transactionData

// NewTransaction - begin a staged batch over the shared database
func NewTransaction() (Transaction, error) {
	trxData.Lock()
	defer trxData.Unlock()

	if trxData.inUse {
		return nil, fmt.Errorf("transaction already in use")
	}
	if !IsInitialised() {
		return nil, fmt.Errorf("transaction: storage is not initialised")
	}

	trxData.inUse = true
	trxData.batch.Reset()
	return &trxData, nil
}

// only database pools can be staged
func stagedPool(h Handle) *PoolHandle {
	p, ok := h.(*PoolHandle)
	if !ok {
		logger.Panicf("transaction: handle is not a database pool: %T", h)
	}
	return p
}

func (t *transactionData) Put(h Handle, key []byte, value []byte) {
	prefixed := stagedPool(h).prefixKey(key)

	poolData.RLock()
	defer poolData.RUnlock()
	poolData.cache.Set(dbPut, string(prefixed), value)
	t.batch.Put(prefixed, value)
}

func (t *transactionData) PutN(h Handle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(h, key, buffer)
}

func (t *transactionData) Delete(h Handle, key []byte) {
	prefixed := stagedPool(h).prefixKey(key)

	poolData.RLock()
	defer poolData.RUnlock()
	poolData.cache.Set(dbDelete, string(prefixed), []byte{})
	t.batch.Delete(prefixed)
}

// Commit - flush the staged writes in a single database write
func (t *transactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return fmt.Errorf("transaction: storage is not initialised")
	}

	err := poolData.db.Write(&t.batch, nil)
	t.batch.Reset()
	t.inUse = false
	return err
}

// Abort - drop the staged writes
//
// the shared cache may hold staged values, clearing it forces
// subsequent reads back to the database
func (t *transactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	t.batch.Reset()
	poolData.RLock()
	poolData.cache.Clear()
	poolData.RUnlock()
	t.inUse = false
}
