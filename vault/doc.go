// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - symmetric protection of algorithm payloads
//
// a single 256-bit key is derived at construction by argon2i from a
// configured secret and salt; payloads are sealed with AES-256-GCM
// using a random 96-bit nonce per message, the nonce travelling with
// the ciphertext
package vault
