// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/thortx/fault"
)

// miscellaneous constants
const (
	IdentifierLength = 20                   // bytes in a binary account identifier
	hexLength        = 2 * IdentifierLength // characters after the prefix
)

// Identifier - the binary account id carried in messages
type Identifier [IdentifierLength]byte

// Account - a decoded chain address
type Account struct {
	Prefix     string
	Identifier Identifier
}

// AccountFromString - convert a human readable address to an account
//
// the address is the literal chain prefix (e.g. "thor1") followed by
// exactly 40 hexadecimal digits
func AccountFromString(prefix string, address string) (*Account, error) {
	if "" == prefix || !strings.HasPrefix(address, prefix) {
		return nil, fault.NewAddressFormatError(fault.PrefixMismatch, address)
	}

	// length is counted in characters so a non-ASCII digit is reported
	// as bad hex rather than a wrong length
	data := address[len(prefix):]
	if hexLength != utf8.RuneCountInString(data) {
		return nil, fault.NewAddressFormatError(fault.WrongLength, address)
	}

	b, err := hex.DecodeString(data)
	if nil != err || IdentifierLength != len(b) {
		return nil, fault.NewAddressFormatError(fault.InvalidHex, address)
	}

	account := &Account{
		Prefix: prefix,
	}
	copy(account.Identifier[:], b)
	return account, nil
}

// Bytes - the 20 byte identifier as a slice
func (account *Account) Bytes() []byte {
	return account.Identifier[:]
}

// String - the human readable address
func (account *Account) String() string {
	return account.Prefix + hex.EncodeToString(account.Identifier[:])
}

// MarshalText - convert an account to its JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}
