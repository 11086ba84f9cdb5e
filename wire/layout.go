// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/bitmark-inc/thortx/fault"
)

// Field - one entry of a message layout
type Field struct {
	Number uint64
	Type   WireType
	Name   string
}

// Layout - the fields of a message in the order they are written
type Layout []Field

// NewLayout - check and return a layout
//
// field numbers must be unique and ascending; intended for package
// level variables so a bad table fails at start up
func NewLayout(fields ...Field) Layout {
	previous := uint64(0)
	for _, f := range fields {
		if f.Number <= previous {
			fault.Panicf("layout field: %q number: %d must be greater than: %d", f.Name, f.Number, previous)
		}
		if Varint != f.Type && LengthDelimited != f.Type {
			fault.Panicf("layout field: %q has unsupported wire type: %d", f.Name, f.Type)
		}
		MakeTag(f.Number, f.Type)
		previous = f.Number
	}
	return Layout(fields)
}

// Pack - write one value per field in layout order
//
// a nil value omits the field completely
func (layout Layout) Pack(values ...Value) []byte {
	if len(values) != len(layout) {
		fault.Panicf("layout has: %d fields  values supplied: %d", len(layout), len(values))
	}

	buffer := make([]byte, 0, 64)
	for i, field := range layout {
		buffer = appendValue(buffer, field, values[i])
	}
	return buffer
}

func appendValue(buffer []byte, field Field, value Value) []byte {
	if nil == value {
		return buffer
	}
	if repeated, ok := value.(Repeated); ok {
		for _, item := range repeated {
			buffer = appendValue(buffer, field, item)
		}
		return buffer
	}
	if value.WireType() != field.Type {
		fault.Panicf("field: %q is: %s  value is: %s", field.Name, field.Type, value.WireType())
	}
	return value.AppendTo(buffer, field.Number)
}
