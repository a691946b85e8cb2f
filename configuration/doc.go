// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read Lua configuration files
//
// the configuration file is a Lua program whose final expression is a
// table; fields like TLS certificates can therefore be inlined with
// io.open from within the configuration itself.
package configuration
