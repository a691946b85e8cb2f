// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyHex := c.String("key")
	if "" == keyHex {
		return fmt.Errorf("missing private key")
	}
	privateKey, err := parsePrivateKey(keyHex)
	if nil != err {
		return err
	}

	timestampMS := c.Uint64("timestamp")
	if 0 == timestampMS {
		timestampMS = nowMS()
	}

	signature, signer, err := signTimestamp(privateKey, timestampMS)
	if nil != err {
		return err
	}

	printJson(m.w, map[string]interface{}{
		"timestamp": timestampMS,
		"signature": signature,
		"signer":    signer,
	})

	return nil
}
