// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/catalog"
	"github.com/algogate/algogated/fault"
	"github.com/algogate/algogated/storage"
)

var (
	alice = account.Address{0x0a}
	bob   = account.Address{0x0b}
)

var testDir string

func setup(t *testing.T) {
	var err error
	testDir, err = os.MkdirTemp("", "catalog-test")
	if nil != err {
		t.Fatalf("cannot create test directory: %s", err)
	}

	logging := logger.Configuration{
		Directory: testDir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err = storage.Initialise(filepath.Join(testDir, "test-index.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = catalog.Initialise(catalog.Handles{
		Parts:       storage.Pool.Parts,
		Owners:      storage.Pool.PartOwners,
		Children:    storage.Pool.PartChildren,
		Identifiers: storage.Pool.Identifiers,
	})
	if nil != err {
		t.Fatalf("catalog initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	catalog.Finalise()
	storage.Finalise()
	os.RemoveAll(testDir)
}

func TestAddPart(t *testing.T) {
	setup(t)
	defer teardown(t)

	c := catalog.Get()

	part := catalog.Part{
		Kind:       catalog.Fixed,
		Layer:      3,
		Uri:        "ipfs://QmZJTqJzHFt2kSDVWGWUXcgomDSBby1sTtiJcs3LXjXNnC",
		Equippable: []account.Address{bob},
	}

	partId, err := c.AddPart(alice, part)
	assert.Nil(t, err, "add failed")
	assert.Equal(t, uint64(1), partId, "identifiers must start at 1")

	stored, err := c.Part(partId)
	assert.Nil(t, err, "lookup failed")
	assert.Equal(t, part, stored, "stored record differs")

	owner, err := c.PartOwner(partId)
	assert.Nil(t, err, "owner lookup failed")
	assert.Equal(t, alice, owner, "wrong owner")

	// unknown ids
	_, err = c.Part(999)
	assert.Equal(t, fault.PartNotFound, err, "unknown part not detected")
	_, err = c.PartOwner(999)
	assert.Equal(t, fault.PartNotFound, err, "unknown part not detected")

	// unnamed kind is rejected
	_, err = c.AddPart(alice, catalog.Part{Kind: "banana"})
	assert.Equal(t, fault.MissingParameters, err, "invalid kind accepted")
}

func TestNestedChildren(t *testing.T) {
	setup(t)
	defer teardown(t)

	c := catalog.Get()

	partId, _ := c.AddPart(alice, catalog.Part{Kind: catalog.Slot})

	children, err := c.NestedChildren(partId)
	assert.Nil(t, err, "children lookup failed")
	assert.Empty(t, children, "fresh part has children")

	first := catalog.Child{Collection: bob, TokenId: 7}
	second := catalog.Child{Collection: bob, TokenId: 8}

	// only the part owner may nest
	err = c.AddNestedChild(bob, partId, first)
	assert.Equal(t, fault.NotTokenOwner, err, "non-owner nest accepted")

	assert.Nil(t, c.AddNestedChild(alice, partId, first), "nest failed")
	assert.Nil(t, c.AddNestedChild(alice, partId, second), "nest failed")

	children, err = c.NestedChildren(partId)
	assert.Nil(t, err, "children lookup failed")
	assert.Equal(t, []catalog.Child{first, second}, children, "wrong child list")

	err = c.AddNestedChild(alice, 999, first)
	assert.Equal(t, fault.PartNotFound, err, "unknown part accepted")
	_, err = c.NestedChildren(999)
	assert.Equal(t, fault.PartNotFound, err, "unknown part accepted")
}

func TestLazyMint(t *testing.T) {
	setup(t)
	defer teardown(t)

	c := catalog.Get()

	partId, _ := c.AddPart(alice, catalog.Part{Kind: catalog.Slot, Layer: 1, Uri: "u"})

	err := c.LazyMint(bob, partId, catalog.Fixed)
	assert.Equal(t, fault.NotTokenOwner, err, "non-owner mint accepted")

	err = c.LazyMint(alice, partId, catalog.Fixed)
	assert.Nil(t, err, "mint failed")

	part, _ := c.Part(partId)
	assert.Equal(t, catalog.Fixed, part.Kind, "kind not rewritten")
	assert.Equal(t, uint32(1), part.Layer, "other fields must survive")
	assert.Equal(t, "u", part.Uri, "other fields must survive")

	err = c.LazyMint(alice, 999, catalog.Fixed)
	assert.Equal(t, fault.PartNotFound, err, "unknown part accepted")
}
