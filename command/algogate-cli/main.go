// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "algogate-cli"
	app.Usage = "client for an algogated confidential execution gateway"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " algogated host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sign",
			Usage:     "sign the freshness message for the current time",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*secp256k1 private key, `HEX`",
				},
				cli.Uint64Flag{
					Name:  "timestamp, t",
					Value: 0,
					Usage: " timestamp in `MILLISECONDS` [current time]",
				},
			},
			Action: runSign,
		},
		{
			Name:      "set-cid",
			Usage:     "store the content id for an algorithm token",
			ArgsUsage: "\n   (* = required, + = proof-gated only)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, o",
					Value: "",
					Usage: "*caller account, `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "algorithm, a",
					Value: 0,
					Usage: "*algorithm token, `NUMBER`",
				},
				cli.StringFlag{
					Name:  "cid, i",
					Value: "",
					Usage: "*content id, `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "+secp256k1 private key for the ownership proof, `HEX`",
				},
			},
			Action: runSetCid,
		},
		{
			Name:      "get-cid",
			Usage:     "fetch the content id of an algorithm token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "algorithm, a",
					Value: 0,
					Usage: "*algorithm token, `NUMBER`",
				},
			},
			Action: runGetCid,
		},
		{
			Name:      "encrypt",
			Usage:     "encrypt a payload under the gateway key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "plaintext, p",
					Value: "",
					Usage: "*payload to encrypt, `STRING`",
				},
			},
			Action: runEncrypt,
		},
		{
			Name:      "execute",
			Usage:     "decrypt an algorithm payload and dispatch it for execution",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, o",
					Value: "",
					Usage: "*caller account, `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "execution, e",
					Value: 0,
					Usage: "*execution token, `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "algorithm, a",
					Value: 0,
					Usage: "*algorithm token, `NUMBER`",
				},
			},
			Action: runExecute,
		},
		{
			Name:      "deposit",
			Usage:     "prove token ownership and dispatch the algorithm payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "algorithm, a",
					Value: 0,
					Usage: "*algorithm token, `NUMBER`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*secp256k1 private key for the ownership proof, `HEX`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:   "info",
			Usage:  "display algogated information",
			Action: runInfo,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
