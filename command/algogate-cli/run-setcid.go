// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/command/algogate-cli/rpccalls"
)

func runSetCid(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	algorithmId := c.Uint64("algorithm")
	contentId := c.String("cid")
	if "" == contentId {
		return fmt.Errorf("missing content id")
	}

	keyHex := c.String("key")
	callerHex := c.String("caller")

	var caller account.Address
	var err error
	if "" != callerHex {
		caller, err = account.AddressFromHexString(callerHex)
		if nil != err {
			return err
		}
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	// with a key: prove token ownership instead of contract ownership
	if "" != keyHex {
		privateKey, err := parsePrivateKey(keyHex)
		if nil != err {
			return err
		}
		timestampMS := nowMS()
		signature, signer, err := signTimestamp(privateKey, timestampMS)
		if nil != err {
			return err
		}
		if caller.IsZero() {
			caller = signer
		}

		response, err := client.SetContentIdWithProof(caller, algorithmId, contentId, timestampMS, signature)
		if nil != err {
			return err
		}
		printJson(m.w, response)
		return nil
	}

	if caller.IsZero() {
		return fmt.Errorf("missing caller")
	}

	response, err := client.SetContentId(caller, algorithmId, contentId)
	if nil != err {
		return err
	}
	printJson(m.w, response)
	return nil
}
