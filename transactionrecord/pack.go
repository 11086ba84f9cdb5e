// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/thortx/account"
	"github.com/bitmark-inc/thortx/wire"
)

// Pack - denom then amount
func (coin Coin) Pack() Packed {
	return coinLayout.Pack(
		wire.String(coin.Denom),
		wire.String(coin.Amount),
	)
}

// pack MsgSend
//
// the amount is left out completely when there are no coins, which
// is not the same as writing an empty field
func (send *MsgSend) Pack() Packed {
	return msgSendLayout.Pack(
		accountValue(send.From),
		accountValue(send.To),
		send.Amount.value(),
	)
}

// Pack - type URL then the inner message bytes
func (envelope *Any) Pack() Packed {
	return anyLayout.Pack(
		wire.String(envelope.TypeURL),
		wire.Bytes(envelope.Value),
	)
}

// pack TxBody
//
// messages are written in the order given; memo and timeout height
// are always present
func (body *TxBody) Pack() Packed {
	messages := make(wire.Repeated, 0, len(body.Messages))
	for _, m := range body.Messages {
		messages = append(messages, wire.Message(m.Pack()))
	}
	return txBodyLayout.Pack(
		messages,
		wire.String(body.Memo),
		wire.Uint64(body.TimeoutHeight),
	)
}

// Pack - the raw key bytes
func (key *PubKey) Pack() Packed {
	return pubKeyLayout.Pack(wire.Bytes(key.Key))
}

// Pack - ModeInfo{single: Single{mode}}
func (info *ModeInfo) Pack() Packed {
	single := modeInfoSingleLayout.Pack(wire.Uint64(info.Mode))
	return modeInfoLayout.Pack(wire.Message(single))
}

// pack SignerInfo
//
// a nil public key or mode info gives the minimal form that only
// carries the sequence
func (signer *SignerInfo) Pack() Packed {
	var publicKey, modeInfo wire.Value
	if nil != signer.PublicKey {
		publicKey = wire.Message(signer.PublicKey.Pack())
	}
	if nil != signer.ModeInfo {
		modeInfo = wire.Message(signer.ModeInfo.Pack())
	}
	return signerInfoLayout.Pack(
		publicKey,
		modeInfo,
		wire.Uint64(signer.Sequence),
	)
}

// Pack - optional amount, gas limit, optional payer and granter
func (fee *Fee) Pack() Packed {
	return feeLayout.Pack(
		fee.Amount.value(),
		wire.Uint64(fee.GasLimit),
		wire.OptionalString(fee.Payer),
		wire.OptionalString(fee.Granter),
	)
}

// Pack - one signer info per signer then the fee
func (auth *AuthInfo) Pack() Packed {
	signers := make(wire.Repeated, 0, len(auth.SignerInfos))
	for _, s := range auth.SignerInfos {
		signers = append(signers, wire.Message(s.Pack()))
	}
	var fee wire.Value
	if nil != auth.Fee {
		fee = wire.Message(auth.Fee.Pack())
	}
	return authInfoLayout.Pack(signers, fee)
}

// pack TxRaw
//
// the number of signatures is not checked against the signer infos,
// the chain rejects an inconsistent transaction itself
func (tx *TxRaw) Pack() Packed {
	signatures := make(wire.Repeated, 0, len(tx.Signatures))
	for _, s := range tx.Signatures {
		signatures = append(signatures, wire.Bytes(s))
	}
	return txRawLayout.Pack(
		wire.Bytes(tx.BodyBytes),
		wire.Bytes(tx.AuthInfoBytes),
		signatures,
	)
}

// pack SignDoc
//
// zero values are omitted to match the bytes the node reconstructs
// when it verifies a signature
func (doc *SignDoc) Pack() Packed {
	return signDocLayout.Pack(
		wire.OptionalMessage(doc.BodyBytes),
		wire.OptionalMessage(doc.AuthInfoBytes),
		wire.OptionalString(doc.ChainID),
		wire.OptionalUint64(doc.AccountNumber),
	)
}

func accountValue(a *account.Account) wire.Value {
	if nil == a {
		return nil
	}
	return wire.Bytes(a.Bytes())
}

func (coins Coins) value() wire.Value {
	if 0 == len(coins) {
		return nil
	}
	r := make(wire.Repeated, 0, len(coins))
	for _, c := range coins {
		r = append(r, wire.Message(c.Pack()))
	}
	return r
}
