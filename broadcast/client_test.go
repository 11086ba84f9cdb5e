// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package broadcast_test

import (
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/thortx/broadcast"
	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/transaction"
	"github.com/bitmark-inc/thortx/transactionrecord"
)

var testTx = transactionrecord.Packed{0x0a, 0x02, 0x18, 0x00}

type received struct {
	header http.Header
	body   map[string]interface{}
}

// node - a fake endpoint returning a fixed status and body
type node struct {
	server *httptest.Server
	calls  int32
	last   atomic.Value
}

func newNode(t *testing.T, status int, reply string) *node {
	n := &node{}
	n.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&n.calls, 1)

		data, err := ioutil.ReadAll(r.Body)
		if nil != err {
			t.Errorf("read body error: %s", err)
		}
		body := map[string]interface{}{}
		err = json.Unmarshal(data, &body)
		if nil != err {
			t.Errorf("request is not JSON: %s", data)
		}
		n.last.Store(received{header: r.Header.Clone(), body: body})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	return n
}

func (n *node) close() {
	n.server.Close()
}

func (n *node) count() int {
	return int(atomic.LoadInt32(&n.calls))
}

func newClient(t *testing.T, url string) *broadcast.Client {
	client, err := broadcast.New(broadcast.Configuration{
		NodeURL:  url,
		ClientID: "test-client",
		Timeout:  2 * time.Second,
	})
	if nil != err {
		t.Fatalf("new client error: %s", err)
	}
	return client
}

const acceptedReply = `{"jsonrpc":"2.0","id":1,"result":{"code":0,"data":"","log":"[]","codespace":"","hash":"0D2C9A4B"}}`

func TestBroadcastAccepted(t *testing.T) {
	n := newNode(t, http.StatusOK, acceptedReply)
	defer n.close()

	client := newClient(t, n.server.URL)
	result, err := client.BroadcastTxSync(context.Background(), testTx)
	assert.Nil(t, err, "wrong error")
	assert.True(t, result.Accepted(), "not accepted")
	assert.Equal(t, "0D2C9A4B", result.Hash, "wrong hash")

	r := n.last.Load().(received)
	assert.Equal(t, "test-client", r.header.Get("X-Client-ID"), "wrong client id")
	assert.Equal(t, broadcast.DefaultUserAgent, r.header.Get("User-Agent"), "wrong user agent")
	assert.Equal(t, "application/json", r.header.Get("Content-Type"), "wrong content type")

	assert.Equal(t, "2.0", r.body["jsonrpc"], "wrong version")
	assert.Equal(t, "broadcast_tx_sync", r.body["method"], "wrong method")
	params, ok := r.body["params"].(map[string]interface{})
	assert.True(t, ok, "params is not an object")
	assert.Equal(t, transaction.Encode(testTx), params["tx"], "wrong tx parameter")
}

func TestBroadcastRejected(t *testing.T) {
	reply := `{"jsonrpc":"2.0","id":1,"result":{"code":5,"log":"insufficient funds","codespace":"sdk","hash":"AB"}}`
	n := newNode(t, http.StatusOK, reply)
	defer n.close()

	client := newClient(t, n.server.URL)
	result, err := client.BroadcastTxSync(context.Background(), testTx)
	assert.Nil(t, err, "rejection must not be an error")
	assert.False(t, result.Accepted(), "rejection accepted")
	assert.Equal(t, uint32(5), result.Code, "wrong code")
	assert.Equal(t, "insufficient funds", result.Log, "wrong log")
	assert.Equal(t, "sdk", result.Codespace, "wrong codespace")
}

func TestBroadcastHTTPStatus(t *testing.T) {
	n := newNode(t, http.StatusServiceUnavailable, "busy")
	defer n.close()

	client := newClient(t, n.server.URL)
	result, err := client.BroadcastTxSync(context.Background(), testTx)
	assert.Nil(t, result, "unexpected result")
	assert.True(t, fault.IsErrTransport(err), "not a transport error: %s", err)
	assert.True(t, errors.Is(err, fault.ErrHTTPStatus), "wrong error: %s", err)
}

func TestBroadcastMalformed(t *testing.T) {
	replies := []string{
		"<html>blocked</html>",
		`{"jsonrpc":"2.0","id":1}`,
		`{"jsonrpc":"2.0","id":1,"result":{"code":"zero"}}`,
	}

	for i, reply := range replies {
		n := newNode(t, http.StatusOK, reply)

		client := newClient(t, n.server.URL)
		_, err := client.BroadcastTxSync(context.Background(), testTx)
		assert.True(t, errors.Is(err, fault.ErrMalformedResponse), "%d: wrong error: %s", i, err)
		assert.True(t, fault.IsErrTransport(err), "%d: not a transport error", i)

		n.close()
	}
}

func TestBroadcastRPCError(t *testing.T) {
	reply := `{"jsonrpc":"2.0","id":1,"error":{"code":-32603,"message":"Internal error","data":"tx already exists in cache"}}`
	n := newNode(t, http.StatusOK, reply)
	defer n.close()

	client := newClient(t, n.server.URL)
	_, err := client.BroadcastTxSync(context.Background(), testTx)

	var rpcError *broadcast.RPCError
	assert.True(t, errors.As(err, &rpcError), "wrong error type: %T", err)
	assert.Equal(t, -32603, rpcError.Code, "wrong code")
	assert.Equal(t, "tx already exists in cache", rpcError.Data, "wrong data")
	assert.Equal(t, "rpc error: -32603: Internal error: tx already exists in cache", err.Error(), "wrong message")
	assert.False(t, fault.IsErrTransport(err), "rpc error classed as transport")
}

func TestBroadcastRequestFailed(t *testing.T) {
	n := newNode(t, http.StatusOK, acceptedReply)
	url := n.server.URL
	n.close()

	client := newClient(t, url)
	_, err := client.BroadcastTxSync(context.Background(), testTx)
	assert.True(t, errors.Is(err, fault.ErrRequestFailed), "wrong error: %s", err)
}

func TestBroadcastTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(acceptedReply))
	}))
	defer server.Close()
	defer close(release)

	client, err := broadcast.New(broadcast.Configuration{
		NodeURL: server.URL,
		Timeout: 50 * time.Millisecond,
	})
	assert.Nil(t, err, "wrong error")

	_, err = client.BroadcastTxSync(context.Background(), testTx)
	assert.True(t, errors.Is(err, fault.ErrRequestFailed), "wrong error: %s", err)
}

func TestBroadcastCache(t *testing.T) {
	n := newNode(t, http.StatusOK, acceptedReply)
	defer n.close()

	client := newClient(t, n.server.URL)
	first, err := client.BroadcastTxSync(context.Background(), testTx)
	assert.Nil(t, err, "wrong error")
	second, err := client.BroadcastTxSync(context.Background(), testTx)
	assert.Nil(t, err, "wrong error")

	assert.Equal(t, first, second, "cached result differs")
	assert.Equal(t, 1, n.count(), "identical bytes submitted twice")

	_, err = client.BroadcastTxSync(context.Background(), transactionrecord.Packed{0x0a, 0x00})
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 2, n.count(), "different bytes not submitted")
}

func TestBroadcastRejectionNotCached(t *testing.T) {
	replies := []string{
		`{"jsonrpc":"2.0","id":1,"result":{"code":5,"log":"insufficient funds","codespace":"sdk","hash":"AB"}}`,
		acceptedReply,
	}
	calls := int32(0)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		i := atomic.AddInt32(&calls, 1) - 1
		if int(i) >= len(replies) {
			i = int32(len(replies) - 1)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(replies[i]))
	}))
	defer server.Close()

	client := newClient(t, server.URL)
	first, err := client.BroadcastTxSync(context.Background(), testTx)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, uint32(5), first.Code, "first submission not rejected")

	// same bytes again after the cause is fixed
	second, err := client.BroadcastTxSync(context.Background(), testTx)
	assert.Nil(t, err, "wrong error")
	assert.True(t, second.Accepted(), "stale rejection returned")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "resubmission did not reach the node")

	// accepted result is now cached
	third, err := client.BroadcastTxSync(context.Background(), testTx)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, second, third, "cached result differs")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "accepted bytes submitted twice")
}

func TestBroadcastErrorNotCached(t *testing.T) {
	n := newNode(t, http.StatusBadGateway, "")
	defer n.close()

	client := newClient(t, n.server.URL)
	for i := 0; i < 2; i += 1 {
		_, err := client.BroadcastTxSync(context.Background(), testTx)
		assert.NotNil(t, err, "%d: missing error", i)
	}
	assert.Equal(t, 2, n.count(), "failure was cached")
}

func TestBroadcastRateLimited(t *testing.T) {
	n := newNode(t, http.StatusOK, acceptedReply)
	defer n.close()

	client, err := broadcast.New(broadcast.Configuration{
		NodeURL:   n.server.URL,
		RateLimit: 0.001,
		Burst:     1,
	})
	assert.Nil(t, err, "wrong error")

	_, err = client.BroadcastTxSync(context.Background(), testTx)
	assert.Nil(t, err, "first request limited")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = client.BroadcastTxSync(ctx, transactionrecord.Packed{0x0a, 0x00})
	assert.True(t, errors.Is(err, fault.ErrRateLimited), "wrong error: %s", err)
	assert.Equal(t, 1, n.count(), "limited request reached the node")
}

func TestNewMissingURL(t *testing.T) {
	client, err := broadcast.New(broadcast.Configuration{})
	assert.Nil(t, client, "unexpected client")
	assert.Equal(t, fault.ErrMissingNodeURL, err, "wrong error")
}
