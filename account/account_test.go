// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/thortx/account"
	"github.com/bitmark-inc/thortx/fault"
)

// Test account functionality

type accountTest struct {
	prefix     string
	address    string
	identifier []byte
}

// Valid accounts
var testAccount = []accountTest{
	{
		prefix:     "thor1",
		address:    "thor1a3eb9d2cbea51896c33209f2bb5ff979a44201a2",
		identifier: decodeHex("a3eb9d2cbea51896c33209f2bb5ff979a44201a2"),
	},
	{
		prefix:     "thor1",
		address:    "thor10000000000000000000000000000000000000000",
		identifier: make([]byte, 20),
	},
	{
		prefix:     "sthor1",
		address:    "sthor1FFEEDDCCBBAA99887766554433221100ffeeddcc",
		identifier: decodeHex("ffeeddccbbaa99887766554433221100ffeeddcc"),
	},
}

type invalidTest struct {
	prefix  string
	address string
	reason  fault.AddressReason
}

var testInvalid = []invalidTest{
	{"thor1", "cosm1a3eb9d2cbea51896c33209f2bb5ff979a44201a2", fault.PrefixMismatch},
	{"thor1", "", fault.PrefixMismatch},
	{"thor1", "thor", fault.PrefixMismatch},
	{"thor1", "THOR1a3eb9d2cbea51896c33209f2bb5ff979a44201a2", fault.PrefixMismatch},
	{"", "a3eb9d2cbea51896c33209f2bb5ff979a44201a2", fault.PrefixMismatch},
	{"thor1", "thor1", fault.WrongLength},
	{"thor1", "thor1a3eb9d2cbea51896c33209f2bb5ff979a44201a", fault.WrongLength},
	{"thor1", "thor1a3eb9d2cbea51896c33209f2bb5ff979a44201a2a3", fault.WrongLength},
	{"thor1", "thor1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", fault.WrongLength},
	{"thor1", "thor1g3eb9d2cbea51896c33209f2bb5ff979a44201a2", fault.InvalidHex},
	{"thor1", "thor1 3eb9d2cbea51896c33209f2bb5ff979a44201a2", fault.InvalidHex},
	{"thor1", "thor1a3eb9d2cbea51896c33209f2bb5ff979a44201aé", fault.InvalidHex},
	{"thor1", "thor1a3eb9d2cbea51896c33209f2bb5ff979a44201é", fault.WrongLength},
}

func TestValidAccounts(t *testing.T) {

	for index, test := range testAccount {
		acc, err := account.AccountFromString(test.prefix, test.address)
		if nil != err {
			t.Fatalf("%d: decode error: %s", index, err)
		}

		if !bytes.Equal(acc.Bytes(), test.identifier) {
			t.Errorf("%d: identifier: %x  expected: %x", index, acc.Bytes(), test.identifier)
		}
		if account.IdentifierLength != len(acc.Bytes()) {
			t.Errorf("%d: identifier length: %d", index, len(acc.Bytes()))
		}

		// String is the canonical lower case form
		again, err := account.AccountFromString(test.prefix, acc.String())
		if nil != err {
			t.Fatalf("%d: re-decode error: %s", index, err)
		}
		assert.Equal(t, acc, again, "%d: round trip", index)
	}
}

func TestInvalidAccounts(t *testing.T) {

	for index, test := range testInvalid {
		acc, err := account.AccountFromString(test.prefix, test.address)
		if nil == err {
			t.Errorf("%d: unexpected success: %v", index, acc)
			continue
		}
		assert.Nil(t, acc, "%d: account returned with error", index)
		assert.True(t, fault.IsErrAddressFormat(err), "%d: wrong error class: %s", index, err)

		reason, _ := fault.AddressFormatReason(err)
		assert.Equal(t, test.reason, reason, "%d: wrong reason for: %q", index, test.address)
	}
}

func TestJSON(t *testing.T) {
	acc, err := account.AccountFromString("thor1", testAccount[0].address)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}

	b, err := json.Marshal(struct {
		Owner *account.Account `json:"owner"`
	}{acc})
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	assert.Equal(t, `{"owner":"thor1a3eb9d2cbea51896c33209f2bb5ff979a44201a2"}`, string(b), "wrong JSON")
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}
