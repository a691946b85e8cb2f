// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gateway - confidential execution orchestration
//
// the gateway is the only component that ever sees algorithm payloads
// in the clear.  every entry point verifies the full authorisation
// chain before anything is decrypted:
//
//  1. a signed, time-bounded request proves the caller controls the
//     relevant token off-chain
//  2. the execution token's recorded parent must match the requested
//     algorithm token
//  3. the ciphertext is fetched by content id, authenticated and
//     decrypted, then handed to the downstream sink
//
// the stages run in strict order and the first failure aborts the
// whole request.  the sink dispatch is deliberately last: it is the
// one irreversible external side effect.
package gateway
