// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Errors are
// grouped into classes (invalid input, transport failure, ...) so
// callers can decide on retry without inspecting messages.
//
// Address decoding failures carry a reason code in AddressFormatError.
//
// Internal consistency failures in the wire encoder are not returned
// as errors, they are logged here and then panic.
package fault
