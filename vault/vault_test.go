// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/algogate/algogated/fault"
	"github.com/algogate/algogated/vault"
)

var (
	testSecret = []byte("0123456789abcdef0123456789abcdef")
	testSalt   = []byte("981781668367")
)

func newTestVault(t *testing.T) *vault.Vault {
	v, err := vault.New(testSecret, testSalt)
	if nil != err {
		t.Fatalf("vault.New failed: %s", err)
	}
	return v
}

func TestRoundTrip(t *testing.T) {
	v := newTestVault(t)

	testData := []string{
		"hello",
		"",
		"a longer plaintext with spaces, punctuation and\nnewlines",
		"日本語のテキスト",
	}

	for i, plaintext := range testData {
		encrypted, err := v.Encrypt(plaintext)
		assert.Nil(t, err, "encrypt failed")
		assert.Equal(t, strings.ToLower(encrypted), encrypted, "%d: encoding not lowercase canonical", i)

		decrypted, err := v.Decrypt(encrypted)
		assert.Nil(t, err, "decrypt failed")
		assert.Equal(t, plaintext, decrypted, "%d: round trip mismatch", i)
	}
}

func TestCaseInsensitiveDecode(t *testing.T) {
	v := newTestVault(t)

	encrypted, err := v.Encrypt("hello")
	assert.Nil(t, err, "encrypt failed")

	decrypted, err := v.Decrypt(strings.ToUpper(encrypted))
	assert.Nil(t, err, "uppercase hex rejected")
	assert.Equal(t, "hello", decrypted, "round trip mismatch")
}

func TestNonceFreshness(t *testing.T) {
	v := newTestVault(t)

	first, err := v.Encrypt("hello")
	assert.Nil(t, err, "encrypt failed")

	second, err := v.Encrypt("hello")
	assert.Nil(t, err, "encrypt failed")

	// same plaintext must never seal to the same bytes
	assert.NotEqual(t, first, second, "nonce reuse detected")
}

func TestTamperDetection(t *testing.T) {
	v := newTestVault(t)

	encrypted, err := v.Encrypt("hello")
	assert.Nil(t, err, "encrypt failed")

	blob, err := hex.DecodeString(encrypted)
	assert.Nil(t, err, "decode failed")

	// flip one bit in every byte position in turn
	for i := 0; i < len(blob); i += 1 {
		tampered := make([]byte, len(blob))
		copy(tampered, blob)
		tampered[i] ^= 0x01

		_, err := v.Decrypt(hex.EncodeToString(tampered))
		if fault.DecryptionFailed != err {
			t.Fatalf("bit flip at byte %d not detected: %v", i, err)
		}
	}
}

func TestDecryptMalformed(t *testing.T) {
	v := newTestVault(t)

	testData := []string{
		"invalid_encrypted_content", // not hex
		"abcd",                      // shorter than nonce + tag
		"",                          // empty
	}

	for i, item := range testData {
		_, err := v.Decrypt(item)
		if fault.DecryptionFailed != err {
			t.Errorf("%d: error mismatch, actual: %v  expected: %v", i, err, fault.DecryptionFailed)
		}
	}
}

func TestWrongKey(t *testing.T) {
	v := newTestVault(t)

	other, err := vault.New([]byte("a completely different secret..."), testSalt)
	assert.Nil(t, err, "vault.New failed")

	encrypted, err := v.Encrypt("hello")
	assert.Nil(t, err, "encrypt failed")

	_, err = other.Decrypt(encrypted)
	assert.Equal(t, fault.DecryptionFailed, err, "wrong key not detected")
}

func TestNewMissingParameters(t *testing.T) {
	_, err := vault.New(nil, testSalt)
	assert.Equal(t, fault.MissingParameters, err, "empty secret accepted")

	_, err = vault.New(testSecret, nil)
	assert.Equal(t, fault.MissingParameters, err, "empty salt accepted")
}
