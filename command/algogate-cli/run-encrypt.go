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

func runEncrypt(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	plaintext := c.String("plaintext")
	if "" == plaintext {
		return fmt.Errorf("missing plaintext")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Encrypt(plaintext)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
