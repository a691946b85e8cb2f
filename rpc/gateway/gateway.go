// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/algogate/algogated/account"
	gw "github.com/algogate/algogated/gateway"
	"github.com/algogate/algogated/rpc/ratelimit"
)

const (
	rateLimitGateway = 200
	rateBurstGateway = 100
)

// Gateway - type for the RPC
type Gateway struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Gateway *gw.Gateway
}

func New(log *logger.L, g *gw.Gateway) *Gateway {
	return &Gateway{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitGateway, rateBurstGateway),
		Gateway: g,
	}
}

// AckReply - acknowledgment for mutating calls
type AckReply struct {
	Ack string `json:"ack"`
}

// SetContentIdArguments - arguments for the owner-gated setter
type SetContentIdArguments struct {
	Caller      account.Address `json:"caller"`
	AlgorithmId uint64          `json:"algorithmId,string"`
	ContentId   string          `json:"contentId"`
}

// SetContentId - owner-gated content id write
func (gateway *Gateway) SetContentId(arguments *SetContentIdArguments, reply *AckReply) error {
	if err := ratelimit.Limit(gateway.Limiter); nil != err {
		return err
	}
	gateway.Log.Infof("Gateway.SetContentId: %+v", arguments)

	if err := gateway.Gateway.SetContentId(arguments.Caller, arguments.AlgorithmId, arguments.ContentId); nil != err {
		return err
	}
	reply.Ack = "done"
	return nil
}

// SetContentIdWithProofArguments - arguments for the proof-gated setter
type SetContentIdWithProofArguments struct {
	Caller      account.Address `json:"caller"`
	AlgorithmId uint64          `json:"algorithmId,string"`
	ContentId   string          `json:"contentId"`
	TimestampMS uint64          `json:"timestamp,string"`
	Signature   string          `json:"signature"`
}

// SetContentIdWithProof - signature-gated content id write
func (gateway *Gateway) SetContentIdWithProof(arguments *SetContentIdWithProofArguments, reply *AckReply) error {
	if err := ratelimit.Limit(gateway.Limiter); nil != err {
		return err
	}
	gateway.Log.Infof("Gateway.SetContentIdWithProof: algorithm: %d", arguments.AlgorithmId)

	err := gateway.Gateway.SetContentIdWithProof(
		arguments.Caller,
		arguments.AlgorithmId,
		arguments.ContentId,
		arguments.TimestampMS,
		arguments.Signature,
	)
	if nil != err {
		return err
	}
	reply.Ack = "done"
	return nil
}

// GetContentIdArguments - arguments for the content id read
type GetContentIdArguments struct {
	AlgorithmId uint64 `json:"algorithmId,string"`
}

// GetContentIdReply - result of the content id read
type GetContentIdReply struct {
	ContentId string `json:"contentId"`
}

// GetContentId - public content id read
func (gateway *Gateway) GetContentId(arguments *GetContentIdArguments, reply *GetContentIdReply) error {
	if err := ratelimit.Limit(gateway.Limiter); nil != err {
		return err
	}

	contentId, err := gateway.Gateway.GetContentId(arguments.AlgorithmId)
	if nil != err {
		return err
	}
	reply.ContentId = contentId
	return nil
}

// EncryptArguments - arguments for encryption
type EncryptArguments struct {
	Plaintext string `json:"plaintext"`
}

// EncryptReply - hex ciphertext
type EncryptReply struct {
	Ciphertext string `json:"ciphertext"`
}

// Encrypt - encrypt a payload under the gateway key
func (gateway *Gateway) Encrypt(arguments *EncryptArguments, reply *EncryptReply) error {
	if err := ratelimit.Limit(gateway.Limiter); nil != err {
		return err
	}

	ciphertext, err := gateway.Gateway.Encrypt(arguments.Plaintext)
	if nil != err {
		return err
	}
	reply.Ciphertext = ciphertext
	return nil
}

// ExecuteArguments - arguments for algorithm execution
type ExecuteArguments struct {
	Caller      account.Address `json:"caller"`
	ExecutionId uint64          `json:"executionId,string"`
	AlgorithmId uint64          `json:"algorithmId,string"`
}

// Execute - run the full decrypt and dispatch pipeline
func (gateway *Gateway) Execute(arguments *ExecuteArguments, reply *AckReply) error {
	if err := ratelimit.Limit(gateway.Limiter); nil != err {
		return err
	}
	gateway.Log.Infof("Gateway.Execute: execution: %d  algorithm: %d",
		arguments.ExecutionId, arguments.AlgorithmId)

	acknowledgment, err := gateway.Gateway.ExecuteAlgorithm(
		arguments.Caller,
		arguments.ExecutionId,
		arguments.AlgorithmId,
	)
	if nil != err {
		return err
	}
	reply.Ack = acknowledgment
	return nil
}

// DepositArguments - arguments for the proof-gated pipeline
type DepositArguments struct {
	AlgorithmId uint64 `json:"algorithmId,string"`
	TimestampMS uint64 `json:"timestamp,string"`
	Signature   string `json:"signature"`
}

// Deposit - run the pipeline for a token holder proving ownership
func (gateway *Gateway) Deposit(arguments *DepositArguments, reply *AckReply) error {
	if err := ratelimit.Limit(gateway.Limiter); nil != err {
		return err
	}
	gateway.Log.Infof("Gateway.Deposit: algorithm: %d", arguments.AlgorithmId)

	acknowledgment, err := gateway.Gateway.DepositContent(
		arguments.AlgorithmId,
		arguments.TimestampMS,
		arguments.Signature,
	)
	if nil != err {
		return err
	}
	reply.Ack = acknowledgment
	return nil
}

// SetOwnerArguments - arguments for gateway handover
type SetOwnerArguments struct {
	Caller   account.Address `json:"caller"`
	NewOwner account.Address `json:"newOwner"`
}

// SetOwner - hand the gateway to a new owner
func (gateway *Gateway) SetOwner(arguments *SetOwnerArguments, reply *AckReply) error {
	if err := ratelimit.Limit(gateway.Limiter); nil != err {
		return err
	}
	gateway.Log.Warnf("Gateway.SetOwner: %+v", arguments)

	if err := gateway.Gateway.SetOwner(arguments.Caller, arguments.NewOwner); nil != err {
		return err
	}
	reply.Ack = "done"
	return nil
}
