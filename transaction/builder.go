// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/thortx/account"
	"github.com/bitmark-inc/thortx/chain"
	"github.com/bitmark-inc/thortx/transactionrecord"
)

// names of the stages reported to an Observer
const (
	StageMsgSend  = "MsgSend"
	StageAny      = "Any"
	StageTxBody   = "TxBody"
	StageAuthInfo = "AuthInfo"
	StageSignDoc  = "SignDoc"
	StageTxRaw    = "TxRaw"
)

// Observer - optional callback run after each stage with the packed size
type Observer func(stage string, size int)

// Builder - builds transactions for one chain
type Builder struct {
	parameters chain.Parameters
	observer   Observer
}

// Request - everything needed for a single send
type Request struct {
	From          string
	To            string
	Amount        transactionrecord.Coins
	Memo          string
	TimeoutHeight uint64

	Sequence      uint64
	AccountNumber uint64
	PublicKey     []byte                     // optional compressed key
	SignMode      transactionrecord.SignMode // only written with a public key

	GasLimit  uint64
	FeeAmount transactionrecord.Coins
}

// Unsigned - body and auth info waiting for signatures
type Unsigned struct {
	BodyBytes     transactionrecord.Packed
	AuthInfoBytes transactionrecord.Packed
	SignDoc       transactionrecord.Packed
}

// NewBuilder - create a builder for a chain
func NewBuilder(parameters chain.Parameters) *Builder {
	return &Builder{
		parameters: parameters,
	}
}

// SetObserver - install a stage callback, nil removes it
func (builder *Builder) SetObserver(observer Observer) {
	builder.observer = observer
}

// Parameters - the chain constants in use
func (builder *Builder) Parameters() chain.Parameters {
	return builder.parameters
}

// NewRequest - a request using the chain's default gas limit and
// timeout height
func (builder *Builder) NewRequest(from string, to string) *Request {
	return &Request{
		From:          from,
		To:            to,
		TimeoutHeight: builder.parameters.DefaultTimeoutHeight,
		SignMode:      transactionrecord.SignModeDirect,
		GasLimit:      builder.parameters.DefaultGasLimit,
	}
}

// BuildTransaction - a minimal send with pre-computed signatures
//
// the signer info carries only the sequence and the fee only the gas
// limit; signatures are written in the order given
func (builder *Builder) BuildTransaction(from string, to string, memo string, sequence uint64, gasLimit uint64, signatures [][]byte) (transactionrecord.Packed, error) {
	request := &Request{
		From:          from,
		To:            to,
		Memo:          memo,
		TimeoutHeight: builder.parameters.DefaultTimeoutHeight,
		Sequence:      sequence,
		GasLimit:      gasLimit,
	}

	unsigned, err := builder.Prepare(request)
	if nil != err {
		return nil, err
	}
	return builder.Assemble(unsigned, signatures), nil
}

// Prepare - decode addresses and pack the body, auth info and sign doc
func (builder *Builder) Prepare(request *Request) (*Unsigned, error) {
	prefix := builder.parameters.Prefix

	from, err := account.AccountFromString(prefix, request.From)
	if nil != err {
		return nil, err
	}
	to, err := account.AccountFromString(prefix, request.To)
	if nil != err {
		return nil, err
	}

	send := &transactionrecord.MsgSend{
		From:   from,
		To:     to,
		Amount: request.Amount,
	}
	packedSend := send.Pack()
	builder.observe(StageMsgSend, len(packedSend))

	message := &transactionrecord.Any{
		TypeURL: builder.parameters.MsgSendTypeURL,
		Value:   packedSend,
	}
	builder.observe(StageAny, len(message.Pack()))

	body := &transactionrecord.TxBody{
		Messages:      []*transactionrecord.Any{message},
		Memo:          request.Memo,
		TimeoutHeight: request.TimeoutHeight,
	}
	bodyBytes := body.Pack()
	builder.observe(StageTxBody, len(bodyBytes))

	authInfo := &transactionrecord.AuthInfo{
		SignerInfos: []*transactionrecord.SignerInfo{builder.signerInfo(request)},
		Fee: &transactionrecord.Fee{
			Amount:   request.FeeAmount,
			GasLimit: request.GasLimit,
		},
	}
	authInfoBytes := authInfo.Pack()
	builder.observe(StageAuthInfo, len(authInfoBytes))

	signDoc := &transactionrecord.SignDoc{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		ChainID:       builder.parameters.ChainID,
		AccountNumber: request.AccountNumber,
	}
	signDocBytes := signDoc.Pack()
	builder.observe(StageSignDoc, len(signDocBytes))

	return &Unsigned{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		SignDoc:       signDocBytes,
	}, nil
}

// Assemble - the final TxRaw
func (builder *Builder) Assemble(unsigned *Unsigned, signatures [][]byte) transactionrecord.Packed {
	tx := &transactionrecord.TxRaw{
		BodyBytes:     unsigned.BodyBytes,
		AuthInfoBytes: unsigned.AuthInfoBytes,
		Signatures:    signatures,
	}
	packed := tx.Pack()
	builder.observe(StageTxRaw, len(packed))
	return packed
}

// minimal form unless a public key is supplied
func (builder *Builder) signerInfo(request *Request) *transactionrecord.SignerInfo {
	info := &transactionrecord.SignerInfo{
		Sequence: request.Sequence,
	}
	if 0 != len(request.PublicKey) {
		info.PublicKey = transactionrecord.NewAny(
			builder.parameters.PublicKeyTypeURL,
			&transactionrecord.PubKey{Key: request.PublicKey},
		)
		info.ModeInfo = &transactionrecord.ModeInfo{Mode: request.SignMode}
	}
	return info
}

func (builder *Builder) observe(stage string, size int) {
	if nil != builder.observer {
		builder.observer(stage, size)
	}
}
