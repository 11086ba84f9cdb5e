// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package broadcast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/transaction"
	"github.com/bitmark-inc/thortx/transactionrecord"
)

// defaults for an unset Configuration field
const (
	DefaultTimeout     = 30 * time.Second
	DefaultClientID    = "thortx"
	DefaultUserAgent   = "thortx/1.0"
	DefaultCacheExpiry = 10 * time.Minute

	cacheCleanupInterval = time.Minute
	maximumResponseSize  = 1 << 20
	errorBodyLimit       = 200
)

// Configuration - node endpoint and request behaviour
type Configuration struct {
	NodeURL     string
	ClientID    string        // X-Client-ID, required by some public endpoints
	UserAgent   string
	Timeout     time.Duration // whole request including reading the reply
	RateLimit   float64       // requests per second, zero is unlimited
	Burst       int
	CacheExpiry time.Duration // how long a submitted hash is remembered
}

// Client - submits transactions to one node
type Client struct {
	sync.Mutex

	log        *logger.L
	url        string
	clientID   string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	submitted  *cache.Cache
	id         uint64
}

// New - create a client, the logger must already be initialised
func New(configuration Configuration) (*Client, error) {
	if "" == configuration.NodeURL {
		return nil, fault.ErrMissingNodeURL
	}

	timeout := configuration.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	clientID := configuration.ClientID
	if "" == clientID {
		clientID = DefaultClientID
	}
	userAgent := configuration.UserAgent
	if "" == userAgent {
		userAgent = DefaultUserAgent
	}
	expiry := configuration.CacheExpiry
	if expiry <= 0 {
		expiry = DefaultCacheExpiry
	}

	var limiter *rate.Limiter
	if configuration.RateLimit > 0 {
		burst := configuration.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(configuration.RateLimit), burst)
	}

	client := &Client{
		log:       logger.New("broadcast"),
		url:       configuration.NodeURL,
		clientID:  clientID,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter:   limiter,
		submitted: cache.New(expiry, cacheCleanupInterval),
	}
	client.log.Infof("node: %s  timeout: %s", client.url, timeout)

	return client, nil
}

// BroadcastTxSync - submit raw transaction bytes
//
// identical bytes that were accepted within the cache expiry return the
// earlier result without contacting the node
func (client *Client) BroadcastTxSync(ctx context.Context, tx transactionrecord.Packed) (*Result, error) {
	client.Lock()
	defer client.Unlock()

	hash := transaction.Hash(tx)
	if r, found := client.submitted.Get(hash); found {
		client.log.Debugf("already submitted: %s", hash)
		return r.(*Result), nil
	}

	err := rateLimit(ctx, client.limiter)
	if nil != err {
		client.log.Warnf("tx: %s  error: %s", hash, err)
		return nil, err
	}

	client.id += 1
	arguments := rpcArguments{
		Version: jsonRPCVersion,
		Id:      client.id,
		Method:  methodSync,
		Params: syncParams{
			Tx: transaction.Encode(tx),
		},
	}

	result, err := client.call(ctx, &arguments)
	if nil != err {
		client.log.Errorf("tx: %s  error: %s", hash, err)
		return nil, err
	}

	// a rejection is not cached so the same bytes can be resubmitted
	// once the cause is fixed
	if result.Accepted() {
		client.log.Infof("tx: %s  accepted", hash)
		client.submitted.Set(hash, result, cache.DefaultExpiration)
	} else {
		client.log.Warnf("tx: %s  rejected: code: %d  codespace: %q  log: %s", hash, result.Code, result.Codespace, result.Log)
	}

	return result, nil
}

// basic RPC - only use while client locked
func (client *Client) call(ctx context.Context, arguments *rpcArguments) (*Result, error) {
	s, err := json.Marshal(arguments)
	if nil != err {
		return nil, err
	}

	client.log.Debugf("rpc send: %s", s)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.url, bytes.NewBuffer(s))
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrRequestFailed, err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", client.userAgent)
	request.Header.Set("X-Client-ID", client.clientID)

	response, err := client.httpClient.Do(request)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrRequestFailed, err)
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(io.LimitReader(response.Body, maximumResponseSize))
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrRequestFailed, err)
	}

	client.log.Debugf("rpc response: %d  body: %s", response.StatusCode, body)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d: %s", fault.ErrHTTPStatus, response.StatusCode, truncate(body))
	}

	var reply rpcReply
	err = json.Unmarshal(body, &reply)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrMalformedResponse, err)
	}

	if nil != reply.Error {
		return nil, reply.Error
	}
	if nil == reply.Result {
		return nil, fmt.Errorf("%w: no result", fault.ErrMalformedResponse)
	}

	return reply.Result, nil
}

func truncate(body []byte) string {
	if len(body) > errorBodyLimit {
		return string(body[:errorBodyLimit]) + "…"
	}
	return string(body)
}
