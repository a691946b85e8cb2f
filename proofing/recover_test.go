// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proofing_test

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"

	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/fault"
	"github.com/algogate/algogated/proofing"
)

// fixture owner query: fixed owner for every token
type fixtureQuery struct {
	owner account.Address
	err   error
}

func (f fixtureQuery) OwnerOf(registry account.Address, tokenId uint64) (account.Address, error) {
	return f.owner, f.err
}

// sign the freshness digest with a throwaway key, return the signature
// and the signer's address
func signDigest(t *testing.T, digest proofing.Digest) (string, account.Address) {
	privateKey, err := crypto.GenerateKey()
	if nil != err {
		t.Fatalf("key generation failed: %s", err)
	}
	signature, err := crypto.Sign(digest[:], privateKey)
	if nil != err {
		t.Fatalf("sign failed: %s", err)
	}
	signer := account.Address(crypto.PubkeyToAddress(privateKey.PublicKey))
	return hex.EncodeToString(signature), signer
}

func TestRecoverSigner(t *testing.T) {

	digest, err := proofing.ValidateTimestamp(now, now-1000)
	assert.Nil(t, err, "validate failed")

	signature, signer := signDigest(t, digest)

	recovered, err := proofing.RecoverSigner(signature, digest)
	assert.Nil(t, err, "recover failed")
	assert.Equal(t, signer, recovered, "wrong recovered address")

	// "0x" prefixed form recovers identically
	recovered, err = proofing.RecoverSigner("0x"+signature, digest)
	assert.Nil(t, err, "recover failed")
	assert.Equal(t, signer, recovered, "wrong recovered address")
}

func TestRecoverSignerLegacyV(t *testing.T) {

	digest, err := proofing.ValidateTimestamp(now, now-1000)
	assert.Nil(t, err, "validate failed")

	signature, signer := signDigest(t, digest)

	// wallets emit V of 27/28 rather than 0/1
	buffer, _ := hex.DecodeString(signature)
	buffer[64] += 27

	recovered, err := proofing.RecoverSigner(hex.EncodeToString(buffer), digest)
	assert.Nil(t, err, "recover failed")
	assert.Equal(t, signer, recovered, "wrong recovered address")
}

func TestRecoverSignerCompact(t *testing.T) {

	digest, err := proofing.ValidateTimestamp(now, now-1000)
	assert.Nil(t, err, "validate failed")

	signature, signer := signDigest(t, digest)

	// 64 byte form: the parity folds into the top bit of s, which is
	// always clear for the normalised low-s signatures produced here
	buffer, _ := hex.DecodeString(signature)
	compact := make([]byte, 64)
	copy(compact, buffer[:64])
	compact[32] |= buffer[64] << 7

	recovered, err := proofing.RecoverSigner(hex.EncodeToString(compact), digest)
	assert.Nil(t, err, "recover failed")
	assert.Equal(t, signer, recovered, "wrong recovered address")
}

func TestRecoverSignerMalformed(t *testing.T) {

	digest, _ := proofing.ValidateTimestamp(now, now-1000)

	testData := []string{
		"",
		"invalid_signature",
		"30d121c70f1f79d8", // too short
		"30d121c70f1f79d830d121c70f1f79d830d121c70f1f79d830d121c70f1f79d830d121c70f1f79d830d121c70f1f79d830d121c70f1f79d830d121c70f1f79d8aabb", // 66 bytes
	}

	for i, signature := range testData {
		_, err := proofing.RecoverSigner(signature, digest)
		if fault.SignatureRecoveryFailed != err {
			t.Errorf("%d: error mismatch, actual: %v  expected: %v", i, err, fault.SignatureRecoveryFailed)
		}
	}
}

func TestVerifyTokenOwner(t *testing.T) {

	digest, _ := proofing.ValidateTimestamp(now, now-1000)
	signature, signer := signDigest(t, digest)

	registry := account.Address{0x01}

	// owner matches the signer
	ok, err := proofing.VerifyTokenOwner(fixtureQuery{owner: signer}, signature, digest, 1, registry)
	assert.Nil(t, err, "verify failed")
	assert.True(t, ok, "owner not verified")

	// mismatch is a business outcome, not an error
	ok, err = proofing.VerifyTokenOwner(fixtureQuery{owner: account.Address{0xff}}, signature, digest, 1, registry)
	assert.Nil(t, err, "mismatch must not be an error")
	assert.False(t, ok, "mismatched owner verified")

	// unreachable registry is an error
	_, err = proofing.VerifyTokenOwner(fixtureQuery{err: fault.RegistryCallFailed}, signature, digest, 1, registry)
	assert.Equal(t, fault.RegistryCallFailed, err, "registry error not propagated")

	// malformed signature is an error
	_, err = proofing.VerifyTokenOwner(fixtureQuery{owner: signer}, "junk", digest, 1, registry)
	assert.Equal(t, fault.SignatureRecoveryFailed, err, "malformed signature not rejected")
}
