// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proofing

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/fault"
)

const (
	signatureLength        = 65 // r||s||v
	compactSignatureLength = 64 // r||yParityAndS
)

// RecoverSigner - recover the signing address from a recoverable
// secp256k1 signature over a message digest
//
// the signature is hex, optionally "0x" prefixed; either the 65 byte
// r||s||v form (V of 27/28 is normalised to 0/1) or the 64 byte
// compact form with the parity bit folded into the top bit of s
func RecoverSigner(signature string, digest Digest) (account.Address, error) {

	signature = strings.TrimPrefix(signature, "0x")
	buffer, err := hex.DecodeString(signature)
	if nil != err {
		return account.Zero, fault.SignatureRecoveryFailed
	}

	switch len(buffer) {
	case signatureLength:
		if buffer[64] >= 27 {
			buffer[64] -= 27
		}
	case compactSignatureLength:
		v := buffer[32] >> 7
		buffer[32] &= 0x7f
		buffer = append(buffer, v)
	default:
		return account.Zero, fault.SignatureRecoveryFailed
	}

	publicKey, err := crypto.SigToPub(digest[:], buffer)
	if nil != err {
		return account.Zero, fault.SignatureRecoveryFailed
	}

	return account.Address(crypto.PubkeyToAddress(*publicKey)), nil
}

// VerifyTokenOwner - prove that the signer of a freshness message
// currently owns a token
//
// returns false with a nil error when recovery succeeds but the
// recovered address is not the registered owner: an ownership mismatch
// is a business outcome, not a fault
func VerifyTokenOwner(query OwnerQuery, signature string, digest Digest, tokenId uint64, registry account.Address) (bool, error) {

	signer, err := RecoverSigner(signature, digest)
	if nil != err {
		return false, err
	}

	owner, err := query.OwnerOf(registry, tokenId)
	if nil != err {
		return false, err
	}

	return signer == owner, nil
}
