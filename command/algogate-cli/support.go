// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/ecdsa"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/proofing"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func nowMS() uint64 {
	return uint64(time.Now().UnixNano() / int64(time.Millisecond))
}

func parsePrivateKey(keyHex string) (*ecdsa.PrivateKey, error) {
	keyHex = strings.TrimPrefix(strings.TrimPrefix(keyHex, "0x"), "0X")
	return crypto.HexToECDSA(keyHex)
}

// sign the freshness message for a timestamp, returning the hex
// signature and the signer's address
func signTimestamp(privateKey *ecdsa.PrivateKey, timestampMS uint64) (string, account.Address, error) {

	digest, err := proofing.ValidateTimestamp(nowMS(), timestampMS)
	if nil != err {
		return "", account.Zero, err
	}

	signature, err := crypto.Sign(digest[:], privateKey)
	if nil != err {
		return "", account.Zero, err
	}

	signer := account.Address(crypto.PubkeyToAddress(privateKey.PublicKey))
	return hex.EncodeToString(signature), signer, nil
}
