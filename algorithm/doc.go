// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package algorithm - the algorithm token registry
//
// each token records the account that controls a registered algorithm,
// an optional metadata string, the content id of its encrypted payload
// and the list of execution tokens derived from it
//
// tokens are created by mint, mutated only by owner-gated setters and
// never deleted
package algorithm
