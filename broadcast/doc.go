// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package broadcast - submit encoded transactions to a node
//
// a single JSON-RPC "broadcast_tx_sync" call per transaction with a
// request timeout; there is no retry, callers decide whether to resubmit
//
// failures to reach the node or to understand its reply are
// fault.TransportError values, an error object in the reply is an
// *RPCError and a chain level rejection is an ordinary Result with a
// non-zero code
package broadcast
