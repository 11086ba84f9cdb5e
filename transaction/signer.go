// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"fmt"

	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/transactionrecord"
)

//go:generate mockgen -destination=mocks/signer.go -package=mocks github.com/bitmark-inc/thortx/transaction Signer

// Signer - produces a signature over packed SignDoc bytes
//
// keys live outside this module; a hardware wallet, remote signer or
// test key implements this
type Signer interface {
	Sign(signDoc []byte) ([]byte, error)
}

// PlaceholderSignatureSize - bytes in a secp256k1 compact signature
const PlaceholderSignatureSize = 64

// PlaceholderSigner - an all zero signature
//
// the node accepts the structure and then rejects the signature, which
// is enough to check an encoding against a live endpoint
type PlaceholderSigner struct{}

// Sign - ignore the document and return zero bytes
func (PlaceholderSigner) Sign([]byte) ([]byte, error) {
	return make([]byte, PlaceholderSignatureSize), nil
}

// BuildSigned - prepare, sign the SignDoc and assemble
func (builder *Builder) BuildSigned(request *Request, signer Signer) (transactionrecord.Packed, error) {
	if nil == signer {
		return nil, fault.ErrSignerRequired
	}

	unsigned, err := builder.Prepare(request)
	if nil != err {
		return nil, err
	}

	signature, err := signer.Sign(unsigned.SignDoc)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrSignerFailed, err)
	}
	if 0 == len(signature) {
		return nil, fault.ErrSignerFailed
	}

	return builder.Assemble(unsigned, [][]byte{signature}), nil
}
