// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - write-through cache in front of the database
//
// every pool write also records the value here, so a read shortly
// after a write (the registries' read-back pattern, and staged
// transaction values before their commit) never touches LevelDB.
// deletions are recorded as tombstones so a cached value cannot
// shadow a removed record.
type Cache interface {
	Get(string) ([]byte, bool)
	Set(int, string, []byte)
	Clear()
}

// operations recordable against a key
const (
	dbPut = iota
	dbDelete
)

// token and part records are a few dozen bytes and mutate rarely;
// a short retention bounds memory while still covering the bursty
// read-after-write traffic of the RPC handlers
const (
	recordRetention = 5 * time.Minute
	sweepInterval   = 10 * time.Minute
)

type poolCache struct {
	store *cache.Cache
}

type cachedRecord struct {
	op    int
	value []byte
}

func newCache() Cache {
	return &poolCache{
		store: cache.New(recordRetention, sweepInterval),
	}
}

func (c *poolCache) Get(key string) ([]byte, bool) {
	obj, found := c.store.Get(key)
	if !found {
		return nil, false
	}

	record := obj.(cachedRecord)
	if dbDelete == record.op {
		// tombstone
		return nil, false
	}
	return record.value, true
}

func (c *poolCache) Set(op int, key string, value []byte) {
	c.store.Set(key, cachedRecord{op: op, value: value}, cache.DefaultExpiration)
}

func (c *poolCache) Clear() {
	c.store.Flush()
}
