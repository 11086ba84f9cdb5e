// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package broadcast

import (
	"encoding/json"
	"fmt"
)

const (
	jsonRPCVersion = "2.0"
	methodSync     = "broadcast_tx_sync"
)

// for encoding the RPC arguments
type rpcArguments struct {
	Version string     `json:"jsonrpc"`
	Id      uint64     `json:"id"`
	Method  string     `json:"method"`
	Params  syncParams `json:"params"`
}

type syncParams struct {
	Tx string `json:"tx"`
}

// for decoding the RPC reply
type rpcReply struct {
	Version string          `json:"jsonrpc"`
	Id      json.RawMessage `json:"id"`
	Result  *Result         `json:"result"`
	Error   *RPCError       `json:"error"`
}

// Result - the node's answer to a sync broadcast
//
// code zero means the transaction passed CheckTx and is in the mempool
type Result struct {
	Code      uint32 `json:"code"`
	Data      string `json:"data"`
	Log       string `json:"log"`
	Codespace string `json:"codespace"`
	Hash      string `json:"hash"`
}

// Accepted - the node admitted the transaction
func (result *Result) Accepted() bool {
	return 0 == result.Code
}

// RPCError - an error object returned in place of a result
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func (e *RPCError) Error() string {
	if "" == e.Data {
		return fmt.Sprintf("rpc error: %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("rpc error: %d: %s: %s", e.Code, e.Message, e.Data)
}
