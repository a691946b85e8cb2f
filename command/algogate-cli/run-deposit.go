// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/algogate/algogated/command/algogate-cli/rpccalls"
)

func runDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyHex := c.String("key")
	if "" == keyHex {
		return fmt.Errorf("missing key")
	}

	privateKey, err := parsePrivateKey(keyHex)
	if nil != err {
		return err
	}
	timestampMS := nowMS()
	signature, _, err := signTimestamp(privateKey, timestampMS)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Deposit(c.Uint64("algorithm"), timestampMS, signature)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
