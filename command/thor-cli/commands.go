// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

// flags shared by build and broadcast
func transactionFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "from, f",
			Value: "",
			Usage: "*sender `ADDRESS`",
		},
		cli.StringFlag{
			Name:  "to, t",
			Value: "",
			Usage: "*recipient `ADDRESS`",
		},
		cli.StringFlag{
			Name:  "memo, m",
			Value: "",
			Usage: " transaction `MEMO`",
		},
		cli.StringFlag{
			Name:  "amount, a",
			Value: "",
			Usage: " coins to send e.g. 100rune,5btc/btc `COINS`",
		},
		cli.StringFlag{
			Name:  "fee",
			Value: "",
			Usage: " fee `COINS`",
		},
		cli.Uint64Flag{
			Name:  "sequence, s",
			Value: 0,
			Usage: " account sequence `NUMBER`",
		},
		cli.Uint64Flag{
			Name:  "account-number",
			Value: 0,
			Usage: " account `NUMBER` for the sign doc",
		},
		cli.Uint64Flag{
			Name:  "gas, g",
			Value: 0,
			Usage: " gas `LIMIT` [chain default]",
		},
		cli.Uint64Flag{
			Name:  "timeout-height",
			Value: 0,
			Usage: " block `HEIGHT` after which the transaction is void [chain default]",
		},
		cli.StringFlag{
			Name:  "public-key, k",
			Value: "",
			Usage: " sender compressed public key `HEX`",
		},
		cli.IntFlag{
			Name:  "signatures",
			Value: 1,
			Usage: " number of placeholder signatures `COUNT`",
		},
	}
}

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "build",
			Usage:     "encode a send transaction and print it as base64",
			ArgsUsage: "\n   (* = required)",
			Flags:     transactionFlags(),
			Action:    runBuild,
		},
		{
			Name:      "broadcast",
			Usage:     "encode a send transaction, submit it and record the result",
			ArgsUsage: "\n   (* = required)",
			Flags:     transactionFlags(),
			Action:    runBroadcast,
		},
		{
			Name:      "address",
			Usage:     "decode an address to its account identifier",
			ArgsUsage: "ADDRESS",
			Action:    runAddress,
		},
		{
			Name:   "history",
			Usage:  "list transactions recorded by broadcast",
			Action: runHistory,
		},
		{
			Name:  "version",
			Usage: "display thor-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}
