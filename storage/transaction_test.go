// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/algogate/algogated/storage"
)

func TestTransactionCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewTransaction()
	assert.Nil(t, err, "begin failed")

	trx.Put(p, []byte("one"), []byte("first"))
	trx.PutN(p, []byte("two"), 42)

	// staged values are readable before the commit
	assert.Equal(t, []byte("first"), p.Get([]byte("one")), "staged value not visible")

	err = trx.Commit()
	assert.Nil(t, err, "commit failed")

	assert.Equal(t, []byte("first"), p.Get([]byte("one")), "committed value lost")
	n, ok := p.GetN([]byte("two"))
	assert.True(t, ok, "missing numeric record")
	assert.Equal(t, uint64(42), n, "wrong numeric value")
}

func TestTransactionCommitIsDurable(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewTransaction()
	assert.Nil(t, err, "begin failed")
	trx.Put(p, []byte("key"), []byte("value"))
	assert.Nil(t, trx.Commit(), "commit failed")

	// reopen to force reads past the cache
	storage.Finalise()
	err = storage.Initialise(filepath.Join(testDir, databaseFileName), storage.ReadWrite)
	assert.Nil(t, err, "reopen failed")

	assert.Equal(t, []byte("value"), storage.Pool.TestData.Get([]byte("key")), "committed value not durable")
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewTransaction()
	assert.Nil(t, err, "begin failed")
	trx.Put(p, []byte("doomed"), []byte("never"))
	trx.Abort()

	assert.Nil(t, p.Get([]byte("doomed")), "aborted value persisted")
	assert.False(t, p.Has([]byte("doomed")), "aborted key present")

	// a fresh transaction can begin after an abort
	trx, err = storage.NewTransaction()
	assert.Nil(t, err, "begin after abort failed")
	trx.Abort()
}

func TestTransactionExclusive(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewTransaction()
	assert.Nil(t, err, "begin failed")

	_, err = storage.NewTransaction()
	assert.NotNil(t, err, "overlapping transaction allowed")

	assert.Nil(t, trx.Commit(), "commit failed")

	trx, err = storage.NewTransaction()
	assert.Nil(t, err, "begin after commit failed")
	trx.Abort()
}

func TestTransactionAbortDiscardsAllStagedWrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	p.Put([]byte("kept"), []byte("before"))

	trx, err := storage.NewTransaction()
	assert.Nil(t, err, "begin failed")
	trx.Put(p, []byte("kept"), []byte("after"))
	trx.Put(p, []byte("extra"), []byte("x"))
	trx.Abort()

	assert.Equal(t, []byte("before"), p.Get([]byte("kept")), "aborted overwrite leaked")
	assert.Nil(t, p.Get([]byte("extra")), "aborted insert leaked")
}
