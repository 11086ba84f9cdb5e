// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// Value - the data for one field
type Value interface {
	WireType() WireType
	AppendTo(buffer []byte, number uint64) []byte
}

// Uint64 - an unsigned integer, also used for enums and bools
type Uint64 uint64

// Bytes - raw bytes
type Bytes []byte

// String - UTF-8 text, the length prefix counts bytes not characters
type String string

// Message - an embedded message that is already packed
type Message []byte

// Repeated - each item is written as a separate occurrence of the field
type Repeated []Value

func (Uint64) WireType() WireType  { return Varint }
func (Bytes) WireType() WireType   { return LengthDelimited }
func (String) WireType() WireType  { return LengthDelimited }
func (Message) WireType() WireType { return LengthDelimited }

// WireType - never consulted, items are checked individually
func (Repeated) WireType() WireType { return LengthDelimited }

func (v Uint64) AppendTo(buffer []byte, number uint64) []byte {
	return AppendVarintField(buffer, number, uint64(v))
}

func (v Bytes) AppendTo(buffer []byte, number uint64) []byte {
	return AppendLengthDelimited(buffer, number, v)
}

func (v String) AppendTo(buffer []byte, number uint64) []byte {
	return AppendLengthDelimited(buffer, number, []byte(v))
}

func (v Message) AppendTo(buffer []byte, number uint64) []byte {
	return AppendLengthDelimited(buffer, number, v)
}

func (v Repeated) AppendTo(buffer []byte, number uint64) []byte {
	for _, item := range v {
		buffer = item.AppendTo(buffer, number)
	}
	return buffer
}

// optional values are omitted when they hold the zero value

// OptionalUint64 - omit zero
func OptionalUint64(v uint64) Value {
	if 0 == v {
		return nil
	}
	return Uint64(v)
}

// OptionalString - omit empty
func OptionalString(s string) Value {
	if "" == s {
		return nil
	}
	return String(s)
}

// OptionalMessage - omit nil or empty
func OptionalMessage(m []byte) Value {
	if 0 == len(m) {
		return nil
	}
	return Message(m)
}
