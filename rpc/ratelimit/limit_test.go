// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	l := rate.NewLimiter(1000, 10)
	assert.Nil(t, ratelimit.Limit(l), "wrong limit")
}

func TestLimitWhenBurstZero(t *testing.T) {
	l := rate.NewLimiter(10, 0)
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(l), "wrong limit")
}

func TestLimitN(t *testing.T) {
	l := rate.NewLimiter(1000, 10)
	assert.Nil(t, ratelimit.LimitN(l, 5, 10), "wrong limit")
}

func TestLimitNWhenInvalidCount(t *testing.T) {
	l := rate.NewLimiter(1000, 10)
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(l, 0, 10), "zero count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(l, 11, 10), "count over maximum")
}

func TestLimitNWhenOverBurst(t *testing.T) {
	l := rate.NewLimiter(1000, 2)
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(l, 5, 10), "wrong limit")
}

func TestLimitRefusesLongWait(t *testing.T) {
	// one token every ten seconds
	l := rate.NewLimiter(0.1, 1)
	assert.Nil(t, ratelimit.Limit(l), "first request should pass")

	start := time.Now()
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(l), "long wait admitted")
	assert.True(t, time.Since(start) < ratelimit.MaximumWait, "refused request was held")
}

func TestLimitRefusalReturnsTokens(t *testing.T) {
	l := rate.NewLimiter(1, 4)
	assert.Nil(t, ratelimit.LimitN(l, 4, 10), "burst should pass")

	// would wait about four seconds
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(l, 4, 10), "long wait admitted")

	// the refused reservation must not push later requests further back
	start := time.Now()
	assert.Nil(t, ratelimit.Limit(l), "short wait refused")
	assert.True(t, time.Since(start) < ratelimit.MaximumWait, "tokens not returned")
}
