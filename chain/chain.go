// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"sort"

	"github.com/bitmark-inc/thortx/fault"
)

// names of all chains
const (
	Thorchain = "thorchain"
	Stagenet  = "stagenet"
	Local     = "local"
)

// type URLs as registered by the THORChain node
//
// the node registers its bank send under its own "types" package, so
// the public "/cosmos.bank.v1beta1.MsgSend" is not recognised
const (
	MsgSendTypeURL   = "/types.MsgSend"
	PublicKeyTypeURL = "/cosmos.crypto.secp256k1.PubKey"
)

// defaults shared by all chains
const (
	DefaultGasLimit      = 200000
	DefaultTimeoutHeight = 0 // no timeout
	DefaultDenom         = "rune"
)

// Parameters - the per-deployment constants of a target chain
type Parameters struct {
	Name                 string `gluamapper:"name"`
	ChainID              string `gluamapper:"chain_id"`
	Prefix               string `gluamapper:"prefix"`
	MsgSendTypeURL       string `gluamapper:"msg_send_type_url"`
	PublicKeyTypeURL     string `gluamapper:"public_key_type_url"`
	Denom                string `gluamapper:"denom"`
	DefaultGasLimit      uint64 `gluamapper:"default_gas_limit"`
	DefaultTimeoutHeight uint64 `gluamapper:"default_timeout_height"`
}

var known = map[string]Parameters{
	Thorchain: {
		Name:                 Thorchain,
		ChainID:              "thorchain-1",
		Prefix:               "thor1",
		MsgSendTypeURL:       MsgSendTypeURL,
		PublicKeyTypeURL:     PublicKeyTypeURL,
		Denom:                DefaultDenom,
		DefaultGasLimit:      DefaultGasLimit,
		DefaultTimeoutHeight: DefaultTimeoutHeight,
	},
	Stagenet: {
		Name:                 Stagenet,
		ChainID:              "thorchain-stagenet-2",
		Prefix:               "sthor1",
		MsgSendTypeURL:       MsgSendTypeURL,
		PublicKeyTypeURL:     PublicKeyTypeURL,
		Denom:                DefaultDenom,
		DefaultGasLimit:      DefaultGasLimit,
		DefaultTimeoutHeight: DefaultTimeoutHeight,
	},
	Local: {
		Name:                 Local,
		ChainID:              "thorchain",
		Prefix:               "tthor1",
		MsgSendTypeURL:       MsgSendTypeURL,
		PublicKeyTypeURL:     PublicKeyTypeURL,
		Denom:                DefaultDenom,
		DefaultGasLimit:      DefaultGasLimit,
		DefaultTimeoutHeight: DefaultTimeoutHeight,
	},
}

// Valid - validate a chain name
func Valid(name string) bool {
	_, ok := known[name]
	return ok
}

// Names - all chain names in sorted order
func Names() []string {
	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParametersFor - the default parameters of a named chain
func ParametersFor(name string) (Parameters, error) {
	p, ok := known[name]
	if !ok {
		return Parameters{}, fault.ErrInvalidChain
	}
	return p, nil
}

// Merge - override any non-zero fields of p with those from overrides
//
// the name is never changed; a zero in overrides means unset, so a
// default cannot be lowered to zero here.  All built in timeout
// heights are already zero and a zero gas limit is given per request
func (p Parameters) Merge(overrides Parameters) Parameters {
	if "" != overrides.ChainID {
		p.ChainID = overrides.ChainID
	}
	if "" != overrides.Prefix {
		p.Prefix = overrides.Prefix
	}
	if "" != overrides.MsgSendTypeURL {
		p.MsgSendTypeURL = overrides.MsgSendTypeURL
	}
	if "" != overrides.PublicKeyTypeURL {
		p.PublicKeyTypeURL = overrides.PublicKeyTypeURL
	}
	if "" != overrides.Denom {
		p.Denom = overrides.Denom
	}
	if 0 != overrides.DefaultGasLimit {
		p.DefaultGasLimit = overrides.DefaultGasLimit
	}
	if 0 != overrides.DefaultTimeoutHeight {
		p.DefaultTimeoutHeight = overrides.DefaultTimeoutHeight
	}
	return p
}
