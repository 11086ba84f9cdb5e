// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// thor-cli - build and broadcast THORChain send transactions
//
// build and address work from the built in chain constants, broadcast
// and history need a configuration file:
//
//   thor-cli --chain=stagenet build --from=sthor1... --to=sthor1... --memo=test
//   thor-cli --config=thor-cli.conf broadcast --from=... --to=... --sequence=4
//   thor-cli --config=thor-cli.conf history
//
// signatures are placeholders, the node will reject them, which is
// enough to check that an encoding is accepted structurally
package main
