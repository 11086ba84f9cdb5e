// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
)

// Field - one decoded occurrence of a protobuf field
type Field struct {
	Number   uint64
	WireType uint64
	Value    uint64 // wire type 0
	Data     []byte // wire type 2
}

// Fields - all fields of a message in stream order
type Fields []Field

// ParseFields - split a message into fields using the gogo/protobuf
// varint decoder as an independent reference
//
// any truncation or unsupported wire type is an error
func ParseFields(b []byte) (Fields, error) {
	result := Fields{}
	for 0 != len(b) {
		tag, n := proto.DecodeVarint(b)
		if 0 == n {
			return nil, fmt.Errorf("truncated tag at: %x", b)
		}
		b = b[n:]

		f := Field{
			Number:   tag >> 3,
			WireType: tag & 0x07,
		}
		if 0 == f.Number {
			return nil, fmt.Errorf("illegal tag 0")
		}

		switch f.WireType {
		case proto.WireVarint:
			value, n := proto.DecodeVarint(b)
			if 0 == n {
				return nil, fmt.Errorf("field: %d truncated varint", f.Number)
			}
			f.Value = value
			b = b[n:]

		case proto.WireBytes:
			buffer := proto.NewBuffer(b)
			data, err := buffer.DecodeRawBytes(true)
			if nil != err {
				return nil, fmt.Errorf("field: %d: %s", f.Number, err)
			}
			f.Data = data
			length, n := proto.DecodeVarint(b)
			b = b[uint64(n)+length:]

		default:
			return nil, fmt.Errorf("field: %d unsupported wire type: %d", f.Number, f.WireType)
		}
		result = append(result, f)
	}
	return result, nil
}

// Get - all occurrences of a field number
func (fields Fields) Get(number uint64) Fields {
	result := Fields{}
	for _, f := range fields {
		if number == f.Number {
			result = append(result, f)
		}
	}
	return result
}

// Numbers - field numbers in stream order
func (fields Fields) Numbers() []uint64 {
	result := make([]uint64, 0, len(fields))
	for _, f := range fields {
		result = append(result, f.Number)
	}
	return result
}
