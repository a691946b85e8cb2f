// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"io"
	"unicode/utf8"

	"github.com/bitmark-inc/go-argon2"

	"github.com/algogate/algogated/fault"
)

// key derivation parameters
const (
	keyIterations  = 5
	keyMemory      = 1 << 16
	keyParallelism = 4
	keyLength      = 32
)

// Vault - holds the AEAD derived once at construction
//
// the key is never rotated for the life of the process
type Vault struct {
	aead cipher.AEAD
}

// New - derive the symmetric key from a secret and salt and set up
// AES-256-GCM
func New(secret []byte, salt []byte) (*Vault, error) {

	if 0 == len(secret) || 0 == len(salt) {
		return nil, fault.MissingParameters
	}

	ctx := &argon2.Context{
		Iterations:  keyIterations,
		Memory:      keyMemory,
		Parallelism: keyParallelism,
		HashLen:     keyLength,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	key, err := argon2.Hash(ctx, secret, salt)
	if nil != err {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if nil != err {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if nil != err {
		return nil, err
	}

	return &Vault{aead: aead}, nil
}

// Encrypt - seal a plaintext with a fresh random nonce
//
// output is lowercase hex of: nonce || ciphertext || tag
//
// a fresh nonce per message is required: sealing two messages under
// the same key and nonce voids both confidentiality and integrity
func (v *Vault) Encrypt(plaintext string) (string, error) {

	nonce := make([]byte, v.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); nil != err {
		return "", err
	}

	sealed := v.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

// Decrypt - open a hex encoded nonce || ciphertext || tag blob
//
// hex decoding is case-insensitive; any malformed input, truncated
// blob, failed authentication tag or non-UTF-8 plaintext is the same
// decryption failure - no partial plaintext ever surfaces
func (v *Vault) Decrypt(encrypted string) (string, error) {

	blob, err := hex.DecodeString(encrypted)
	if nil != err {
		return "", fault.DecryptionFailed
	}

	nonceSize := v.aead.NonceSize()
	if len(blob) < nonceSize+v.aead.Overhead() {
		return "", fault.DecryptionFailed
	}

	plaintext, err := v.aead.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
	if nil != err {
		return "", fault.DecryptionFailed
	}

	if !utf8.Valid(plaintext) {
		return "", fault.DecryptionFailed
	}

	return string(plaintext), nil
}
