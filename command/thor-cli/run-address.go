// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/thortx/account"
)

type addressReply struct {
	Address    string `json:"address"`
	Prefix     string `json:"prefix"`
	Identifier string `json:"identifier"`
}

func runAddress(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	address := c.Args().First()
	if "" == address {
		return ErrMissingAddress
	}

	a, err := account.AccountFromString(m.parameters.Prefix, address)
	if nil != err {
		return err
	}

	return printJson(m.w, addressReply{
		Address:    a.String(),
		Prefix:     a.Prefix,
		Identifier: hex.EncodeToString(a.Bytes()),
	})
}
