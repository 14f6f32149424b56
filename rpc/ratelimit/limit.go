// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - admission for client RPC requests
//
// A request is held until its tokens are available, but never longer
// than MaximumWait; a request that would wait longer is refused and its
// tokens are handed back so later requests are not penalised.
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/demai-labs/demaid/fault"
)

// MaximumWait - longest a request is held before it is refused
const MaximumWait = 2 * time.Second

// Limit - admit a single request
func Limit(limiter *rate.Limiter) error {
	return admit(limiter, 1)
}

// LimitN - admit a request covering count items
//
// an out of range count still costs one token
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := admit(limiter, 1); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	return admit(limiter, count)
}

func admit(limiter *rate.Limiter, n int) error {
	now := time.Now()
	r := limiter.ReserveN(now, n)
	if !r.OK() {
		return fault.RateLimiting
	}

	delay := r.DelayFrom(now)
	if delay > MaximumWait {
		r.CancelAt(now)
		return fault.RateLimiting
	}
	time.Sleep(delay)
	return nil
}
