// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/command/algogate-cli/rpccalls"
)

func runExecute(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := account.AddressFromHexString(c.String("caller"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Execute(caller, c.Uint64("execution"), c.Uint64("algorithm"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
