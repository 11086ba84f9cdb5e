// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package broadcast

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/thortx/fault"
)

// limiting for a single request
//
// waits for the reservation unless the context ends first
func rateLimit(ctx context.Context, limiter *rate.Limiter) error {
	if nil == limiter {
		return nil
	}

	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimited
	}

	delay := r.Delay()
	if 0 == delay {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		r.Cancel()
		return fmt.Errorf("%w: %s", fault.ErrRateLimited, ctx.Err())
	case <-timer.C:
		return nil
	}
}
