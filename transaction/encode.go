// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/thortx/transactionrecord"
)

// Encode - standard base64 for the JSON-RPC "tx" parameter
func Encode(tx transactionrecord.Packed) string {
	return base64.StdEncoding.EncodeToString(tx)
}

// Decode - reverse of Encode
func Decode(s string) (transactionrecord.Packed, error) {
	return base64.StdEncoding.DecodeString(s)
}

// Hash - upper case hex SHA-256 of the raw bytes, as reported by the node
func Hash(tx transactionrecord.Packed) string {
	digest := sha256.Sum256(tx)
	return strings.ToUpper(hex.EncodeToString(digest[:]))
}
