// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package execution

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/algogate/algogated/account"
	reg "github.com/algogate/algogated/execution"
	"github.com/algogate/algogated/rpc/ratelimit"
)

const (
	rateLimitExecution = 200
	rateBurstExecution = 100
)

// Execution - type for the RPC
type Execution struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry reg.Registry
}

func New(log *logger.L, registry reg.Registry) *Execution {
	return &Execution{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitExecution, rateBurstExecution),
		Registry: registry,
	}
}

// AckReply - acknowledgment for mutating calls
type AckReply struct {
	Ack string `json:"ack"`
}

// MintArguments - arguments for execution mint
type MintArguments struct {
	Caller      account.Address `json:"caller"`
	AlgorithmId uint64          `json:"algorithmId,string"`
}

// MintReply - the new token
type MintReply struct {
	TokenId uint64 `json:"tokenId,string"`
}

// Mint - create an execution token bound to an algorithm
func (execution *Execution) Mint(arguments *MintArguments, reply *MintReply) error {
	if err := ratelimit.Limit(execution.Limiter); nil != err {
		return err
	}
	execution.Log.Infof("Execution.Mint: %+v", arguments)

	tokenId, err := execution.Registry.Mint(arguments.Caller, arguments.AlgorithmId)
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

// Owner - current owner of an execution token
func (execution *Execution) Owner(arguments *TokenArguments, reply *OwnerReply) error {
	if err := ratelimit.Limit(execution.Limiter); nil != err {
		return err
	}

	owner, err := execution.Registry.OwnerOf(arguments.TokenId)
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

// Transfer - move an execution token to a new owner
func (execution *Execution) Transfer(arguments *TransferArguments, reply *AckReply) error {
	if err := ratelimit.Limit(execution.Limiter); nil != err {
		return err
	}
	execution.Log.Infof("Execution.Transfer: %+v", arguments)

	if err := execution.Registry.Transfer(arguments.Caller, arguments.TokenId, arguments.NewOwner); nil != err {
		return err
	}
	reply.Ack = "done"
	return nil
}

// SetParentArguments - arguments for the parent setter
type SetParentArguments struct {
	Caller      account.Address `json:"caller"`
	TokenId     uint64          `json:"tokenId,string"`
	AlgorithmId uint64          `json:"algorithmId,string"`
}

// SetParent - owner-gated parent repoint
func (execution *Execution) SetParent(arguments *SetParentArguments, reply *AckReply) error {
	if err := ratelimit.Limit(execution.Limiter); nil != err {
		return err
	}
	execution.Log.Infof("Execution.SetParent: %+v", arguments)

	if err := execution.Registry.SetParent(arguments.Caller, arguments.TokenId, arguments.AlgorithmId); nil != err {
		return err
	}
	reply.Ack = "done"
	return nil
}

// ParentReply - the algorithm an execution token is bound to
type ParentReply struct {
	AlgorithmId uint64 `json:"algorithmId,string"`
}

// Parent - public parent read
func (execution *Execution) Parent(arguments *TokenArguments, reply *ParentReply) error {
	if err := ratelimit.Limit(execution.Limiter); nil != err {
		return err
	}

	parentId, err := execution.Registry.Parent(arguments.TokenId)
	if nil != err {
		return err
	}
	reply.AlgorithmId = parentId
	return nil
}
