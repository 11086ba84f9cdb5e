// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"strings"

	"github.com/bitmark-inc/thortx/fault"
)

// ParseCoin - split "<digits><denom>" e.g. "100000000rune"
//
// only the shape is checked, not whether the denom exists
func ParseCoin(s string) (Coin, error) {
	s = strings.TrimSpace(s)

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i += 1
	}
	if 0 == i || i == len(s) {
		return Coin{}, fault.ErrInvalidCoin
	}

	denom := s[i:]
	for _, c := range denom {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case '/' == c, '.' == c, '-' == c, '_' == c:
		default:
			return Coin{}, fault.ErrInvalidCoin
		}
	}

	return Coin{
		Denom:  denom,
		Amount: s[:i],
	}, nil
}

// ParseCoins - comma separated list of coins, empty string is no coins
func ParseCoins(s string) (Coins, error) {
	if "" == strings.TrimSpace(s) {
		return nil, nil
	}
	coins := Coins{}
	for _, item := range strings.Split(s, ",") {
		c, err := ParseCoin(item)
		if nil != err {
			return nil, err
		}
		coins = append(coins, c)
	}
	return coins, nil
}

// String - the "<amount><denom>" form
func (coin Coin) String() string {
	return coin.Amount + coin.Denom
}
