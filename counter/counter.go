// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free gauge for open connections
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit gauge that can be shared between goroutines
type Counter uint64

// Increment - add 1, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - subtract 1, returns new value
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Uint64 - current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - true when nothing is counted
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

// Acquire - increment unless that would exceed limit
//
// returns false and leaves the value unchanged when the limit is reached
func (ic *Counter) Acquire(limit uint64) bool {
	if ic.Increment() <= limit {
		return true
	}
	ic.Decrement()
	return false
}
