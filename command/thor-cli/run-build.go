// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/thortx/chain"
	"github.com/bitmark-inc/thortx/journal"
	"github.com/bitmark-inc/thortx/transaction"
	"github.com/bitmark-inc/thortx/transactionrecord"
)

// values collected from the command line
type buildArguments struct {
	from          string
	to            string
	memo          string
	amount        string
	fee           string
	sequence      uint64
	accountNumber uint64
	gas           *uint64 // nil selects the chain default
	timeoutHeight *uint64 // nil selects the chain default
	publicKey     string
	signatures    int
}

type buildReply struct {
	Hash   string                   `json:"hash"`
	Size   int                      `json:"size"`
	Base64 string                   `json:"base64"`
	Tx     transactionrecord.Packed `json:"tx"`
}

func getBuildArguments(c *cli.Context) (*buildArguments, error) {
	arguments := &buildArguments{
		from:          c.String("from"),
		to:            c.String("to"),
		memo:          c.String("memo"),
		amount:        c.String("amount"),
		fee:           c.String("fee"),
		sequence:      c.Uint64("sequence"),
		accountNumber: c.Uint64("account-number"),
		publicKey:     c.String("public-key"),
		signatures:    c.Int("signatures"),
	}
	if "" == arguments.from || "" == arguments.to {
		return nil, ErrMissingAddress
	}

	// an explicit zero is a valid value, only an absent flag means default
	if c.IsSet("gas") {
		gas := c.Uint64("gas")
		arguments.gas = &gas
	}
	if c.IsSet("timeout-height") {
		height := c.Uint64("timeout-height")
		arguments.timeoutHeight = &height
	}
	return arguments, nil
}

// encode a transaction with placeholder signatures
//
// log may be nil, otherwise every pipeline stage is logged
func build(parameters chain.Parameters, arguments *buildArguments, log *logger.L) (*journal.Record, error) {
	if arguments.signatures < 1 {
		return nil, ErrInvalidSignatureCount
	}

	amount, err := transactionrecord.ParseCoins(arguments.amount)
	if nil != err {
		return nil, err
	}
	fee, err := transactionrecord.ParseCoins(arguments.fee)
	if nil != err {
		return nil, err
	}

	var publicKey []byte
	if "" != arguments.publicKey {
		publicKey, err = hex.DecodeString(arguments.publicKey)
		if nil != err {
			return nil, ErrInvalidPublicKey
		}
	}

	builder := transaction.NewBuilder(parameters)
	if nil != log {
		builder.SetObserver(func(stage string, size int) {
			log.Debugf("stage: %s  size: %d", stage, size)
		})
	}

	request := builder.NewRequest(arguments.from, arguments.to)
	request.Memo = arguments.memo
	request.Amount = amount
	request.FeeAmount = fee
	request.Sequence = arguments.sequence
	request.AccountNumber = arguments.accountNumber
	request.PublicKey = publicKey
	if nil != arguments.gas {
		request.GasLimit = *arguments.gas
	}
	if nil != arguments.timeoutHeight {
		request.TimeoutHeight = *arguments.timeoutHeight
	}

	unsigned, err := builder.Prepare(request)
	if nil != err {
		return nil, err
	}

	signer := transaction.PlaceholderSigner{}
	signatures := make([][]byte, 0, arguments.signatures)
	for i := 0; i < arguments.signatures; i += 1 {
		signature, err := signer.Sign(unsigned.SignDoc)
		if nil != err {
			return nil, err
		}
		signatures = append(signatures, signature)
	}
	tx := builder.Assemble(unsigned, signatures)

	record := &journal.Record{
		Hash:      transaction.Hash(tx),
		Timestamp: time.Now().UTC(),
		Chain:     builder.Parameters().Name,
		From:      arguments.from,
		To:        arguments.to,
		Amount:    arguments.amount,
		Memo:      arguments.memo,
		Sequence:  request.Sequence,
		GasLimit:  request.GasLimit,
		Tx:        tx,
	}

	if nil != log {
		log.Infof("built: %s  size: %d", record.Hash, len(tx))
	}
	return record, nil
}

func runBuild(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	arguments, err := getBuildArguments(c)
	if nil != err {
		return err
	}

	record, err := build(m.parameters, arguments, m.builderLog)
	if nil != err {
		return err
	}

	return printJson(m.w, buildReply{
		Hash:   record.Hash,
		Size:   len(record.Tx),
		Base64: transaction.Encode(record.Tx),
		Tx:     record.Tx,
	})
}
