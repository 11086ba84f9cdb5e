// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/thortx/fault"
)

// command errors - keep in alphabetic order
const (
	ErrInvalidPublicKey      = fault.InvalidError("public key is not hex")
	ErrInvalidSignatureCount = fault.InvalidError("signature count must be at least one")
	ErrMissingAddress        = fault.InvalidError("address is required")
	ErrRequiresConfiguration = fault.NotFoundError("command requires a configuration file")
)
