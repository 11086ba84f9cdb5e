// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/thortx/util"
	"github.com/bitmark-inc/thortx/wire"
)

func TestMakeTag(t *testing.T) {
	assert.Equal(t, uint64(0x0a), wire.MakeTag(1, wire.LengthDelimited), "field 1 bytes")
	assert.Equal(t, uint64(0x12), wire.MakeTag(2, wire.LengthDelimited), "field 2 bytes")
	assert.Equal(t, uint64(0x10), wire.MakeTag(2, wire.Varint), "field 2 varint")
	assert.Equal(t, uint64(0x18), wire.MakeTag(3, wire.Varint), "field 3 varint")
	assert.Equal(t, uint64(0x1a), wire.MakeTag(3, wire.LengthDelimited), "field 3 bytes")

	assert.Panics(t, func() { wire.MakeTag(0, wire.Varint) }, "field zero accepted")
	assert.Panics(t, func() { wire.MakeTag(1<<29, wire.Varint) }, "field too large accepted")
}

var writerTests = []struct {
	name    string
	actual  []byte
	encoded []byte
}{
	{"string", wire.WriteLengthDelimited(1, []byte("abc")), []byte{0x0a, 0x03, 0x61, 0x62, 0x63}},
	{"empty", wire.WriteLengthDelimited(2, nil), []byte{0x12, 0x00}},
	{"timeout", wire.WriteVarintField(3, 0), []byte{0x18, 0x00}},
	{"gas", wire.WriteVarintField(2, 200000), []byte{0x10, 0xc0, 0x9a, 0x0c}},
	{"max", wire.WriteVarintField(1, 0xffffffffffffffff), []byte{0x08, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	{"two byte tag", wire.WriteVarintField(16, 1), []byte{0x80, 0x01, 0x01}},
	{"two byte tag bytes", wire.WriteLengthDelimited(16, []byte{0xff}), []byte{0x82, 0x01, 0x01, 0xff}},
}

func TestWriters(t *testing.T) {
	for i, item := range writerTests {
		if !bytes.Equal(item.actual, item.encoded) {
			t.Errorf("%d: %s: %x  expected: %x", i, item.name, item.actual, item.encoded)
			t.Errorf("*** GENERATED:\n%s", util.FormatBytes("encoded", item.actual))
		}
	}
}

// the varint field must never be written as a fixed width integer
func TestVarintFieldIsNotFixedWidth(t *testing.T) {
	b := wire.WriteVarintField(3, 1)
	assert.Equal(t, []byte{0x18, 0x01}, b, "wrong encoding")
	assert.NotEqual(t, 10, len(b), "fixed width 64 bit encoding")
}

func TestAppendKeepsPrefix(t *testing.T) {
	buffer := []byte{0xde, 0xad}
	buffer = wire.AppendLengthDelimited(buffer, 1, []byte{0x01})
	buffer = wire.AppendVarintField(buffer, 2, 300)
	assert.Equal(t, []byte{0xde, 0xad, 0x0a, 0x01, 0x01, 0x10, 0xac, 0x02}, buffer, "wrong append")
}

// property: for field numbers 1..15 the tag is one byte and the total
// length is 1 + len(varint(len(p))) + len(p)
func TestLengthDelimitedProperty(t *testing.T) {
	r := rand.New(rand.NewSource(0x7a6))

	sizes := []int{0, 1, 127, 128, 129, 300, 16383, 16384}
	for i := 0; i < 200; i += 1 {
		sizes = append(sizes, r.Intn(2048))
	}

	for _, size := range sizes {
		payload := make([]byte, size)
		r.Read(payload)

		for f := uint64(1); f <= 15; f += 1 {
			b := wire.WriteLengthDelimited(f, payload)

			expectedLength := 1 + len(util.ToVarint64(uint64(size))) + size
			if expectedLength != len(b) {
				t.Fatalf("field: %d  size: %d  length: %d  expected: %d", f, size, len(b), expectedLength)
			}
			if byte(f<<3|2) != b[0] {
				t.Fatalf("field: %d  tag: %02x", f, b[0])
			}

			// decode with the reference implementation
			buffer := proto.NewBuffer(b)
			tag, err := buffer.DecodeVarint()
			assert.Nil(t, err, "reference tag decode")
			assert.Equal(t, f<<3|proto.WireBytes, tag, "reference tag")
			data, err := buffer.DecodeRawBytes(true)
			assert.Nil(t, err, "reference bytes decode")
			assert.True(t, bytes.Equal(payload, data), "field: %d  size: %d payload differs", f, size)
		}
	}
}

// multi-byte UTF-8 lengths are bytes, not characters
func TestUTF8Length(t *testing.T) {
	memo := "SWAP:THOR.RUNE:ᚱᚢᚾᛖ:😀"
	b := wire.WriteLengthDelimited(2, []byte(memo))

	length, n := util.FromVarint64(b[1:])
	assert.Equal(t, uint64(len(memo)), length, "prefix is not byte length")
	assert.NotEqual(t, uint64(len([]rune(memo))), length, "prefix is character count")
	assert.Equal(t, memo, string(b[1+n:]), "payload changed")
}
