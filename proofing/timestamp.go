// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proofing

import (
	"strconv"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/algogate/algogated/fault"
)

// SignatureValidTime - maximum age of a signed timestamp in milliseconds
const SignatureValidTime = 5 * 60 * 1000

// the fixed literal prepended to the decimal timestamp before hashing
const messagePrefix = "ALGOGATE_REQUEST_MSG: "

// Digest - Keccak-256 digest of a freshness message
type Digest [32]byte

// ValidateTimestamp - check a claimed timestamp against current time
//
// rejects future timestamps outright (clock skew is not tolerated) and
// timestamps at or beyond the freshness window; on success returns the
// digest of the message that must have been signed off-chain
//
// pure function: both times are caller supplied milliseconds
func ValidateTimestamp(nowMS uint64, claimedMS uint64) (Digest, error) {
	var digest Digest

	if claimedMS > nowMS || nowMS-claimedMS >= SignatureValidTime {
		return digest, fault.StaleOrFutureTimestamp
	}

	message := messagePrefix + strconv.FormatUint(claimedMS, 10)
	copy(digest[:], crypto.Keccak256([]byte(message)))
	return digest, nil
}
