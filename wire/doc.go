// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire - write protobuf fields without generated code
//
// Only the two wire types needed for transactions are supported:
// varint (0) for integers and length-delimited (2) for bytes, strings
// and embedded messages.  Integers are always varint encoded, never
// fixed width.
//
// A message is described by a Layout, an ordered table of field
// numbers and wire types.  Packing a message supplies one Value per
// layout entry; a nil Value leaves the field out of the byte stream.
//
// This package only writes; nothing here parses protobuf.
package wire
