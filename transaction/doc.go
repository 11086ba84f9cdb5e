// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - assemble a complete transaction
//
// Messages are built innermost first:
//
//   MsgSend → Any → TxBody ┐
//   SignerInfo, Fee → AuthInfo ┴→ (SignDoc → Signer) → TxRaw
//
// every stage works only on the packed bytes of the previous one, so
// identical requests always give identical bytes.  Address strings are
// decoded before anything is packed; nothing else can fail.
//
// The result is handed to a transport, usually as base64 (Encode).
package transaction
