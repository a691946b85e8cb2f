// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/algogate/algogated/account"
	cat "github.com/algogate/algogated/catalog"
	"github.com/algogate/algogated/rpc/ratelimit"
)

const (
	rateLimitCatalog = 200
	rateBurstCatalog = 100
)

// Catalog - type for the RPC
type Catalog struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Catalog cat.Catalog
}

func New(log *logger.L, catalog cat.Catalog) *Catalog {
	return &Catalog{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitCatalog, rateBurstCatalog),
		Catalog: catalog,
	}
}

// AckReply - acknowledgment for mutating calls
type AckReply struct {
	Ack string `json:"ack"`
}

// AddPartArguments - arguments for part creation
type AddPartArguments struct {
	Caller account.Address `json:"caller"`
	Part   cat.Part        `json:"part"`
}

// AddPartReply - the new part
type AddPartReply struct {
	PartId uint64 `json:"partId,string"`
}

// AddPart - store a new part
func (catalog *Catalog) AddPart(arguments *AddPartArguments, reply *AddPartReply) error {
	if err := ratelimit.Limit(catalog.Limiter); nil != err {
		return err
	}
	catalog.Log.Infof("Catalog.AddPart: %+v", arguments)

	partId, err := catalog.Catalog.AddPart(arguments.Caller, arguments.Part)
	if nil != err {
		return err
	}
	reply.PartId = partId
	return nil
}

// PartArguments - arguments for part reads
type PartArguments struct {
	PartId uint64 `json:"partId,string"`
}

// PartReply - a stored part
type PartReply struct {
	Part cat.Part `json:"part"`
}

// Part - fetch a part record
func (catalog *Catalog) Part(arguments *PartArguments, reply *PartReply) error {
	if err := ratelimit.Limit(catalog.Limiter); nil != err {
		return err
	}

	part, err := catalog.Catalog.Part(arguments.PartId)
	if nil != err {
		return err
	}
	reply.Part = part
	return nil
}

// PartOwnerReply - current owner of a part
type PartOwnerReply struct {
	Owner account.Address `json:"owner"`
}

// PartOwner - current owner of a part
func (catalog *Catalog) PartOwner(arguments *PartArguments, reply *PartOwnerReply) error {
	if err := ratelimit.Limit(catalog.Limiter); nil != err {
		return err
	}

	owner, err := catalog.Catalog.PartOwner(arguments.PartId)
	if nil != err {
		return err
	}
	reply.Owner = owner
	return nil
}

// AddNestedChildArguments - arguments for nesting
type AddNestedChildArguments struct {
	Caller account.Address `json:"caller"`
	PartId uint64          `json:"partId,string"`
	Child  cat.Child       `json:"child"`
}

// AddNestedChild - attach a token underneath a part
func (catalog *Catalog) AddNestedChild(arguments *AddNestedChildArguments, reply *AckReply) error {
	if err := ratelimit.Limit(catalog.Limiter); nil != err {
		return err
	}
	catalog.Log.Infof("Catalog.AddNestedChild: %+v", arguments)

	if err := catalog.Catalog.AddNestedChild(arguments.Caller, arguments.PartId, arguments.Child); nil != err {
		return err
	}
	reply.Ack = "done"
	return nil
}

// NestedChildrenReply - tokens nested under a part
type NestedChildrenReply struct {
	Children []cat.Child `json:"children"`
}

// NestedChildren - all tokens nested under a part
func (catalog *Catalog) NestedChildren(arguments *PartArguments, reply *NestedChildrenReply) error {
	if err := ratelimit.Limit(catalog.Limiter); nil != err {
		return err
	}

	children, err := catalog.Catalog.NestedChildren(arguments.PartId)
	if nil != err {
		return err
	}
	reply.Children = children
	return nil
}

// LazyMintArguments - arguments for finalising a part
type LazyMintArguments struct {
	Caller account.Address `json:"caller"`
	PartId uint64          `json:"partId,string"`
	Kind   cat.PartKind    `json:"kind"`
}

// LazyMint - finalise a part by rewriting its kind
func (catalog *Catalog) LazyMint(arguments *LazyMintArguments, reply *AckReply) error {
	if err := ratelimit.Limit(catalog.Limiter); nil != err {
		return err
	}
	catalog.Log.Infof("Catalog.LazyMint: %+v", arguments)

	if err := catalog.Catalog.LazyMint(arguments.Caller, arguments.PartId, arguments.Kind); nil != err {
		return err
	}
	reply.Ack = "done"
	return nil
}
