// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/bitmark-inc/thortx/account"
)

// Packed - packed records are just a byte slice
type Packed []byte

// Message - anything that can be packed to protobuf wire format
type Message interface {
	Pack() Packed
}

// SignMode - signing mode carried in ModeInfo.Single
type SignMode uint64

// sign modes as numbered by the Cosmos SDK
const (
	SignModeUnspecified     = SignMode(0)
	SignModeDirect          = SignMode(1)
	SignModeTextual         = SignMode(2)
	SignModeLegacyAminoJSON = SignMode(127)
)

// Coin - a denomination and an integer amount as a decimal string
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// Coins - repeated coin field
type Coins []Coin

// MsgSend - bank send between two accounts
type MsgSend struct {
	From   *account.Account `json:"fromAddress"`      // 20 byte identifier
	To     *account.Account `json:"toAddress"`        // 20 byte identifier
	Amount Coins            `json:"amount,omitempty"` // omitted when empty
}

// Any - type URL plus a packed message
type Any struct {
	TypeURL string `json:"typeUrl"`
	Value   Packed `json:"value"`
}

// TxBody - messages, memo and timeout
type TxBody struct {
	Messages      []*Any `json:"messages"`
	Memo          string `json:"memo"`          // always written, even when empty
	TimeoutHeight uint64 `json:"timeoutHeight"` // zero for no timeout
}

// PubKey - a compressed public key
type PubKey struct {
	Key []byte `json:"key"`
}

// ModeInfo - single signer mode info
type ModeInfo struct {
	Mode SignMode `json:"mode"`
}

// SignerInfo - per signer data; public key and mode info are optional
type SignerInfo struct {
	PublicKey *Any      `json:"publicKey,omitempty"`
	ModeInfo  *ModeInfo `json:"modeInfo,omitempty"`
	Sequence  uint64    `json:"sequence"`
}

// Fee - gas limit and optional fee coins
type Fee struct {
	Amount   Coins  `json:"amount,omitempty"`
	GasLimit uint64 `json:"gasLimit"`
	Payer    string `json:"payer,omitempty"`
	Granter  string `json:"granter,omitempty"`
}

// AuthInfo - signers and fee
type AuthInfo struct {
	SignerInfos []*SignerInfo `json:"signerInfos"`
	Fee         *Fee          `json:"fee"`
}

// TxRaw - the unit submitted to a node
//
// signatures must be in the same order as AuthInfo.SignerInfos
type TxRaw struct {
	BodyBytes     Packed   `json:"bodyBytes"`
	AuthInfoBytes Packed   `json:"authInfoBytes"`
	Signatures    [][]byte `json:"signatures"`
}

// SignDoc - the bytes signed in direct mode
type SignDoc struct {
	BodyBytes     Packed `json:"bodyBytes"`
	AuthInfoBytes Packed `json:"authInfoBytes"`
	ChainID       string `json:"chainId"`
	AccountNumber uint64 `json:"accountNumber"`
}

// NewAny - wrap a message with its type URL
func NewAny(typeURL string, message Message) *Any {
	return &Any{
		TypeURL: typeURL,
		Value:   message.Pack(),
	}
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
