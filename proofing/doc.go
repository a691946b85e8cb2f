// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proofing - time-bounded request proofs
//
// a caller proves current control of a token by signing a freshness
// message off-chain:
//
//  1. the caller builds "ALGOGATE_REQUEST_MSG: <unix milliseconds>"
//     and signs its Keccak-256 digest with the secp256k1 key that
//     controls the token
//  2. the gateway rebuilds the digest from the claimed timestamp,
//     rejecting stale or future timestamps
//  3. the signer address is recovered from the signature and compared
//     with the token owner reported by the token registry
//
// ownership mismatch is a business outcome (false, nil error); only a
// malformed signature or an unreachable registry is an error
package proofing
