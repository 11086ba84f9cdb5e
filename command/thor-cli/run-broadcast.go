// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/thortx/broadcast"
	"github.com/bitmark-inc/thortx/journal"
)

type broadcastReply struct {
	Hash     string            `json:"hash"`
	Accepted bool              `json:"accepted"`
	Result   *broadcast.Result `json:"result"`
}

func runBroadcast(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	if nil == m.config {
		return ErrRequiresConfiguration
	}

	arguments, err := getBuildArguments(c)
	if nil != err {
		return err
	}

	record, err := build(m.parameters, arguments, m.builderLog)
	if nil != err {
		return err
	}

	client, err := broadcast.New(m.config.Broadcast())
	if nil != err {
		return err
	}

	history, err := journal.Open(m.config.Journal)
	if nil != err {
		return err
	}
	defer history.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "submitting: %s  to: %s\n", record.Hash, m.config.NodeURL)
	}

	result, err := client.BroadcastTxSync(context.Background(), record.Tx)
	if nil != err {
		// keep the built bytes even though the node never answered
		if e := history.Put(record); nil != e {
			m.log.Errorf("journal: %s  error: %s", record.Hash, e)
		}
		return err
	}

	record.Broadcast = true
	record.Code = result.Code
	record.Log = result.Log
	err = history.Put(record)
	if nil != err {
		return err
	}

	return printJson(m.w, broadcastReply{
		Hash:     record.Hash,
		Accepted: result.Accepted(),
		Result:   result,
	})
}
