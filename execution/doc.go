// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package execution - registry of execution access tokens
//
// an execution token grants its holder the right to run exactly one
// algorithm.  the link is recorded as a parent pointer from the
// execution token to the algorithm token and is checked by the
// gateway before any payload is released for execution.
package execution
