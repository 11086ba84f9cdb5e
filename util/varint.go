// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 10

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// this is the base-128 form used by protobuf: little-endian groups of
// seven bits, the top bit of each byte set if another byte follows
//
// Structure of the result
// byte 1:  ext | B06 | B05 | B04 | B03 | B02 | B01 | B00
// byte 2:  ext | B13 | B12 | B11 | B10 | B09 | B08 | B07
// ...
// byte 9:  ext | B62 | B61 | B60 | B59 | B58 | B57 | B56
// byte 10:  0  |  0  |  0  |  0  |  0  |  0  |  0  | B63
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64Length(value))
	for value > 0x7f {
		result = append(result, byte(value&0x7f)|0x80)
		value >>= 7
	}
	return append(result, byte(value))
}

// Varint64Length - number of bytes ToVarint64 will produce
func Varint64Length(value uint64) int {
	n := 1
	for value > 0x7f {
		value >>= 7
		n += 1
	}
	return n
}

// FromVarint64 - convert an array of up to Varint64MaximumBytes to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated or overflows 64 bits
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)

	shift := uint(0)
	count := 0

	for count < len(buffer) && count < Varint64MaximumBytes {
		currByte := uint64(buffer[count])
		count += 1
		if count == Varint64MaximumBytes && currByte > 0x01 {
			return 0, 0
		}
		result |= (currByte & 0x7f) << shift
		if 0 == currByte&0x80 {
			return result, count
		}
		shift += 7
	}
	return 0, 0
}

// ClippedVarint64 - return a positive clipped value as an int
// any value outside the range minimum..maximum is an error
func ClippedVarint64(buffer []byte, minimum int, maximum int) (int, int) {
	if minimum < 0 || maximum < 0 || minimum >= maximum {
		return 0, 0
	}

	value, count := FromVarint64(buffer)
	if 0 == count {
		return 0, 0
	}
	if value > uint64(maximum) || value < uint64(minimum) {
		return 0, 0
	}
	return int(value), count
}
