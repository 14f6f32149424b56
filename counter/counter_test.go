// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/demai-labs/demaid/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "not zero at start")

	for i := 0; i < 5; i += 1 {
		c.Increment()
	}
	assert.Equal(t, uint64(5), c.Uint64(), "wrong value after increment")

	for i := 0; i < 5; i += 1 {
		c.Decrement()
	}
	assert.True(t, c.IsZero(), "did not return to zero")
}

func TestAcquire(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.Acquire(2), "first acquire refused")
	assert.True(t, c.Acquire(2), "second acquire refused")
	assert.False(t, c.Acquire(2), "third acquire allowed")
	assert.Equal(t, uint64(2), c.Uint64(), "refused acquire changed the value")
}

func TestConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < 50; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Increment()
			c.Decrement()
		}()
	}
	wg.Wait()

	assert.True(t, c.IsZero(), "concurrent use lost an update")
}
