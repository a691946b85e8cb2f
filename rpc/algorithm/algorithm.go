// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package algorithm

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/algogate/algogated/account"
	reg "github.com/algogate/algogated/algorithm"
	"github.com/algogate/algogated/rpc/ratelimit"
)

const (
	rateLimitAlgorithm = 200
	rateBurstAlgorithm = 100
)

// Algorithm - type for the RPC
type Algorithm struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry reg.Registry
}

func New(log *logger.L, registry reg.Registry) *Algorithm {
	return &Algorithm{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitAlgorithm, rateBurstAlgorithm),
		Registry: registry,
	}
}

// AckReply - acknowledgment for mutating calls
type AckReply struct {
	Ack string `json:"ack"`
}

// MintArguments - arguments for algorithm mint
type MintArguments struct {
	Caller    account.Address `json:"caller"`
	Metadata  string          `json:"metadata"`
	ContentId string          `json:"contentId"`
}

// MintReply - the new token
type MintReply struct {
	TokenId uint64 `json:"tokenId,string"`
}

// Mint - create an algorithm token
func (algorithm *Algorithm) Mint(arguments *MintArguments, reply *MintReply) error {
	if err := ratelimit.Limit(algorithm.Limiter); nil != err {
		return err
	}
	algorithm.Log.Infof("Algorithm.Mint: %+v", arguments)

	tokenId, err := algorithm.Registry.Mint(arguments.Caller, arguments.Metadata, arguments.ContentId)
	if nil != err {
		return err
	}
	reply.TokenId = tokenId
	return nil
}

// TokenArguments - arguments for token reads
type TokenArguments struct {
	TokenId uint64 `json:"tokenId,string"`
}

// OwnerReply - current owner of a token
type OwnerReply struct {
	Owner account.Address `json:"owner"`
}

// Owner - current owner of an algorithm token
func (algorithm *Algorithm) Owner(arguments *TokenArguments, reply *OwnerReply) error {
	if err := ratelimit.Limit(algorithm.Limiter); nil != err {
		return err
	}

	owner, err := algorithm.Registry.OwnerOf(arguments.TokenId)
	if nil != err {
		return err
	}
	reply.Owner = owner
	return nil
}

// TransferArguments - arguments for token transfer
type TransferArguments struct {
	Caller   account.Address `json:"caller"`
	TokenId  uint64          `json:"tokenId,string"`
	NewOwner account.Address `json:"newOwner"`
}

// Transfer - move an algorithm token to a new owner
func (algorithm *Algorithm) Transfer(arguments *TransferArguments, reply *AckReply) error {
	if err := ratelimit.Limit(algorithm.Limiter); nil != err {
		return err
	}
	algorithm.Log.Infof("Algorithm.Transfer: %+v", arguments)

	if err := algorithm.Registry.Transfer(arguments.Caller, arguments.TokenId, arguments.NewOwner); nil != err {
		return err
	}
	reply.Ack = "done"
	return nil
}

// SetMetadataArguments - arguments for the metadata setter
type SetMetadataArguments struct {
	Caller   account.Address `json:"caller"`
	TokenId  uint64          `json:"tokenId,string"`
	Metadata string          `json:"metadata"`
}

// SetMetadata - owner-gated metadata write
func (algorithm *Algorithm) SetMetadata(arguments *SetMetadataArguments, reply *AckReply) error {
	if err := ratelimit.Limit(algorithm.Limiter); nil != err {
		return err
	}

	if err := algorithm.Registry.SetMetadata(arguments.Caller, arguments.TokenId, arguments.Metadata); nil != err {
		return err
	}
	reply.Ack = "done"
	return nil
}

// MetadataReply - stored metadata of a token
type MetadataReply struct {
	Metadata string `json:"metadata"`
}

// Metadata - public metadata read
func (algorithm *Algorithm) Metadata(arguments *TokenArguments, reply *MetadataReply) error {
	if err := ratelimit.Limit(algorithm.Limiter); nil != err {
		return err
	}

	metadata, err := algorithm.Registry.Metadata(arguments.TokenId)
	if nil != err {
		return err
	}
	reply.Metadata = metadata
	return nil
}

// ExecutionsReply - execution tokens linked to an algorithm
type ExecutionsReply struct {
	Executions []uint64 `json:"executions"`
}

// Executions - the execution tokens granted against an algorithm
func (algorithm *Algorithm) Executions(arguments *TokenArguments, reply *ExecutionsReply) error {
	if err := ratelimit.Limit(algorithm.Limiter); nil != err {
		return err
	}

	executions, err := algorithm.Registry.Executions(arguments.TokenId)
	if nil != err {
		return err
	}
	reply.Executions = executions
	return nil
}
