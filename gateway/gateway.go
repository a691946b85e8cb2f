// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/fault"
	"github.com/algogate/algogated/guard"
	"github.com/algogate/algogated/proofing"
	"github.com/algogate/algogated/retrieve"
	"github.com/algogate/algogated/sink"
	"github.com/algogate/algogated/vault"
)

// Registry - the token records the gateway consults
//
// OwnerOf and GetParent operate on execution tokens, GetContentId and
// PutContentId on algorithm tokens
type Registry interface {
	OwnerOf(executionId uint64) (account.Address, error)
	GetParent(executionId uint64) (uint64, error)
	GetContentId(algorithmId uint64) (string, error)
	PutContentId(algorithmId uint64, contentId string) error
}

// Config - everything a gateway needs at construction
type Config struct {
	Owner            account.Address
	OwnerRestriction bool
	RegistryAddress  account.Address
	Vault            *vault.Vault
	Fetcher          retrieve.Fetcher
	Sink             sink.Sink
	Query            proofing.OwnerQuery
	Registry         Registry
	Clock            func() time.Time
}

// Gateway - a single gateway instance
//
// owner and the restriction flag are the only mutable fields and are
// protected by the embedded mutex; everything else is read-only after
// construction
type Gateway struct {
	sync.RWMutex

	log              *logger.L
	owner            account.Address
	ownerRestriction bool
	registryAddress  account.Address
	vault            *vault.Vault
	fetcher          retrieve.Fetcher
	sink             sink.Sink
	query            proofing.OwnerQuery
	registry         Registry
	clock            func() time.Time
}

// New - create a gateway
func New(config Config) (*Gateway, error) {
	if config.Owner.IsZero() || nil == config.Vault || nil == config.Fetcher ||
		nil == config.Sink || nil == config.Query || nil == config.Registry {
		return nil, fault.MissingParameters
	}
	clock := config.Clock
	if nil == clock {
		clock = time.Now
	}
	return &Gateway{
		log:              logger.New("gateway"),
		owner:            config.Owner,
		ownerRestriction: config.OwnerRestriction,
		registryAddress:  config.RegistryAddress,
		vault:            config.Vault,
		fetcher:          config.Fetcher,
		sink:             config.Sink,
		query:            config.Query,
		registry:         config.Registry,
		clock:            clock,
	}, nil
}

// Owner - the current contract owner
func (g *Gateway) Owner() account.Address {
	g.RLock()
	defer g.RUnlock()
	return g.owner
}

// SetOwner - hand the gateway to a new owner
func (g *Gateway) SetOwner(caller account.Address, newOwner account.Address) error {
	g.Lock()
	defer g.Unlock()

	if err := guard.ContractOwnerOnly(g.owner, caller); nil != err {
		return err
	}
	if newOwner.IsZero() {
		return fault.MissingParameters
	}
	g.log.Warnf("owner change: %s -> %s", g.owner, newOwner)
	g.owner = newOwner
	return nil
}

// OwnerRestriction - whether proof-gated writes also require the owner
func (g *Gateway) OwnerRestriction() bool {
	g.RLock()
	defer g.RUnlock()
	return g.ownerRestriction
}

// SetContentId - owner-gated content id write
func (g *Gateway) SetContentId(caller account.Address, algorithmId uint64, contentId string) error {
	g.RLock()
	owner := g.owner
	g.RUnlock()

	if err := guard.ContractOwnerOnly(owner, caller); nil != err {
		return err
	}
	if err := g.registry.PutContentId(algorithmId, contentId); nil != err {
		return err
	}
	g.log.Infof("set content id: algorithm: %d", algorithmId)
	return nil
}

// SetContentIdWithProof - proof-gated content id write
//
// the signature must cover the canonical message for the claimed
// timestamp and recover to the current on-chain owner of the token.
// with the owner restriction active the caller must additionally be
// the contract owner.
func (g *Gateway) SetContentIdWithProof(
	caller account.Address,
	algorithmId uint64,
	contentId string,
	timestampMS uint64,
	signature string,
) error {
	g.RLock()
	owner := g.owner
	restricted := g.ownerRestriction
	g.RUnlock()

	nowMS := uint64(g.clock().UnixNano() / int64(time.Millisecond))
	digest, err := proofing.ValidateTimestamp(nowMS, timestampMS)
	if nil != err {
		return err
	}

	ok, err := proofing.VerifyTokenOwner(g.query, signature, digest, algorithmId, g.registryAddress)
	if nil != err {
		return err
	}
	if !ok {
		return fault.NotTokenOwner
	}

	if restricted {
		if err := guard.ContractOwnerOnly(owner, caller); nil != err {
			return err
		}
	}

	if err := g.registry.PutContentId(algorithmId, contentId); nil != err {
		return err
	}
	g.log.Infof("set content id with proof: algorithm: %d", algorithmId)
	return nil
}

// GetContentId - public content id read
func (g *Gateway) GetContentId(algorithmId uint64) (string, error) {
	return g.registry.GetContentId(algorithmId)
}

// Encrypt - encrypt a payload under the gateway key
func (g *Gateway) Encrypt(plaintext string) (string, error) {
	return g.vault.Encrypt(plaintext)
}

// VerifyExecutionRights - check an execution token grants an algorithm
//
// structural check only, caller identity is not consulted here
func (g *Gateway) VerifyExecutionRights(executionId uint64, algorithmId uint64) error {
	parentId, err := g.registry.GetParent(executionId)
	if nil != err {
		return fault.InvalidExecutionToken
	}
	if parentId != algorithmId {
		return fault.UnauthorizedAccess
	}
	return nil
}

// DecryptAndExecute - run the full retrieval pipeline for an algorithm
//
// locate → fetch → decrypt → dispatch, first failure aborts.  the
// sink acknowledgment is returned verbatim, plaintext never is.
func (g *Gateway) DecryptAndExecute(algorithmId uint64) (string, error) {
	contentId, err := g.registry.GetContentId(algorithmId)
	if nil != err {
		return "", err
	}

	blob, err := g.fetcher.Fetch(contentId)
	if nil != err {
		return "", err
	}

	plaintext, err := g.vault.Decrypt(blob)
	if nil != err {
		return "", err
	}

	acknowledgment, err := g.sink.Deposit(algorithmId, plaintext)
	if nil != err {
		return "", err
	}

	g.log.Infof("dispatched: algorithm: %d", algorithmId)
	return acknowledgment, nil
}

// DepositContent - run the pipeline for a token holder proving
// ownership off-chain
//
// the signature must cover the canonical message for the claimed
// timestamp and recover to the current on-chain owner of the
// algorithm token; no execution token is consulted
func (g *Gateway) DepositContent(algorithmId uint64, timestampMS uint64, signature string) (string, error) {
	nowMS := uint64(g.clock().UnixNano() / int64(time.Millisecond))
	digest, err := proofing.ValidateTimestamp(nowMS, timestampMS)
	if nil != err {
		return "", err
	}

	ok, err := proofing.VerifyTokenOwner(g.query, signature, digest, algorithmId, g.registryAddress)
	if nil != err {
		return "", err
	}
	if !ok {
		return "", fault.NotTokenOwner
	}

	return g.DecryptAndExecute(algorithmId)
}

// ExecuteAlgorithm - execute on behalf of an execution token holder
func (g *Gateway) ExecuteAlgorithm(caller account.Address, executionId uint64, algorithmId uint64) (string, error) {
	owner, err := g.registry.OwnerOf(executionId)
	if nil != err {
		return "", err
	}
	if err := guard.TokenOwnerOnly(owner, caller); nil != err {
		return "", err
	}
	if err := g.VerifyExecutionRights(executionId, algorithmId); nil != err {
		return "", err
	}
	return g.DecryptAndExecute(algorithmId)
}
