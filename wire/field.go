// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/util"
)

// WireType - the low three bits of a field tag
type WireType uint64

// supported wire types
const (
	Varint          WireType = 0
	LengthDelimited WireType = 2
)

// field number limits
const (
	MinimumFieldNumber = 1
	MaximumFieldNumber = 1<<29 - 1
)

func (t WireType) String() string {
	switch t {
	case Varint:
		return "varint"
	case LengthDelimited:
		return "length-delimited"
	default:
		return "unsupported"
	}
}

// MakeTag - combine a field number and wire type
func MakeTag(number uint64, wireType WireType) uint64 {
	if number < MinimumFieldNumber || number > MaximumFieldNumber {
		fault.Panicf("field number: %d is out of range", number)
	}
	return number<<3 | uint64(wireType)
}

// WriteLengthDelimited - a single bytes/string/message field
func WriteLengthDelimited(number uint64, payload []byte) []byte {
	return AppendLengthDelimited(nil, number, payload)
}

// WriteVarintField - a single integer field
func WriteVarintField(number uint64, value uint64) []byte {
	return AppendVarintField(nil, number, value)
}

// AppendLengthDelimited - append tag, Varint64(length) and payload to
// a buffer
//
// the written length prefix is read back and compared with the
// payload; a mismatch would desynchronise every following field so it
// is fatal
func AppendLengthDelimited(buffer []byte, number uint64, payload []byte) []byte {
	start := len(buffer)

	buffer = append(buffer, util.ToVarint64(MakeTag(number, LengthDelimited))...)
	prefixStart := len(buffer)
	buffer = append(buffer, util.ToVarint64(uint64(len(payload)))...)
	payloadStart := len(buffer)
	buffer = append(buffer, payload...)

	length, n := util.FromVarint64(buffer[prefixStart:payloadStart])
	if n != payloadStart-prefixStart || length != uint64(len(payload)) || len(buffer)-payloadStart != len(payload) {
		fault.Panicf("%s: field: %d  prefix: %d  payload: %d  written: %d",
			fault.ErrEncodingInvariant, number, length, len(payload), len(buffer)-start)
	}
	return buffer
}

// AppendVarintField - append tag and Varint64(value) to a buffer
func AppendVarintField(buffer []byte, number uint64, value uint64) []byte {
	buffer = append(buffer, util.ToVarint64(MakeTag(number, Varint))...)
	return append(buffer, util.ToVarint64(value)...)
}
