// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/thortx/fixtures"
	"github.com/bitmark-inc/thortx/wire"
)

var testLayout = wire.NewLayout(
	wire.Field{Number: 1, Type: wire.LengthDelimited, Name: "items"},
	wire.Field{Number: 2, Type: wire.LengthDelimited, Name: "memo"},
	wire.Field{Number: 3, Type: wire.Varint, Name: "height"},
	wire.Field{Number: 4, Type: wire.Varint, Name: "optional"},
)

func TestLayoutPack(t *testing.T) {
	b := testLayout.Pack(
		wire.Repeated{wire.Message{0x08, 0x01}, wire.Message{0x08, 0x02}},
		wire.String(""),
		wire.Uint64(0),
		nil,
	)

	expected := []byte{
		0x0a, 0x02, 0x08, 0x01,
		0x0a, 0x02, 0x08, 0x02,
		0x12, 0x00,
		0x18, 0x00,
	}
	assert.Equal(t, expected, b, "wrong packing")

	fields, err := fixtures.ParseFields(b)
	assert.Nil(t, err, "reference parse")
	assert.Equal(t, []uint64{1, 1, 2, 3}, fields.Numbers(), "wrong field order")
}

func TestLayoutOptional(t *testing.T) {
	b := testLayout.Pack(
		wire.Repeated{},
		wire.OptionalString(""),
		wire.Uint64(7),
		wire.OptionalUint64(0),
	)
	assert.Equal(t, []byte{0x18, 0x07}, b, "optional fields not omitted")

	b = testLayout.Pack(
		nil,
		wire.OptionalString("x"),
		wire.Uint64(7),
		wire.OptionalUint64(9),
	)
	assert.Equal(t, []byte{0x12, 0x01, 0x78, 0x18, 0x07, 0x20, 0x09}, b, "optional fields omitted")

	assert.Nil(t, wire.OptionalMessage(nil), "nil message not omitted")
	assert.Nil(t, wire.OptionalMessage([]byte{}), "empty message not omitted")
	assert.NotNil(t, wire.OptionalMessage([]byte{0x00}), "message omitted")
}

func TestLayoutMisuse(t *testing.T) {
	assert.Panics(t, func() {
		testLayout.Pack(nil, nil, nil)
	}, "short value list accepted")

	assert.Panics(t, func() {
		testLayout.Pack(nil, wire.Uint64(1), nil, nil)
	}, "varint accepted for length-delimited field")

	assert.Panics(t, func() {
		testLayout.Pack(wire.Repeated{wire.Uint64(1)}, nil, nil, nil)
	}, "varint accepted inside repeated length-delimited field")

	assert.Panics(t, func() {
		wire.NewLayout(
			wire.Field{Number: 2, Type: wire.Varint, Name: "b"},
			wire.Field{Number: 1, Type: wire.Varint, Name: "a"},
		)
	}, "descending layout accepted")

	assert.Panics(t, func() {
		wire.NewLayout(wire.Field{Number: 1, Type: wire.WireType(5), Name: "fixed32"})
	}, "unsupported wire type accepted")
}
