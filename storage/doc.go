// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a LevelDB database split into a series of pools,
// each pool being acessed by a prefix byte on the key
//
//	NOTE: no actual record can have a zero length key
//
// The pools are:
//
//	AlgorithmOwners     - owner account of an algorithm token
//	AlgorithmMeta       - metadata string of an algorithm token
//	AlgorithmContent    - content id of an algorithm token
//	AlgorithmExecutions - execution token ids linked to an algorithm token
//	ExecutionOwners     - owner account of an execution token
//	ExecutionParents    - parent algorithm token of an execution token
//	Parts               - catalog part records
//	PartOwners          - owner account of a catalog part
//	PartChildren        - nested children of a catalog part
//	Identifiers         - monotonic identifier counters
//	TestData            - reserved for unit tests
package storage
