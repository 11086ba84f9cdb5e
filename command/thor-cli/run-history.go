// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/thortx/journal"
)

func runHistory(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	if nil == m.config {
		return ErrRequiresConfiguration
	}

	history, err := journal.Open(m.config.Journal)
	if nil != err {
		return err
	}
	defer history.Close()

	records, err := history.List()
	if nil != err {
		return err
	}
	return printJson(m.w, records)
}
