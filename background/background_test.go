// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/demai-labs/demaid/background"
)

type ticker struct {
	ticks    int64
	finished int32
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)
	tick := time.NewTicker(interval)
	defer tick.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-tick.C:
			atomic.AddInt64(&state.ticks, 1)
		}
	}
	atomic.StoreInt32(&state.finished, 1)
}

func TestStartStop(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&proc1.finished), "first process not finished")
	assert.Equal(t, int32(1), atomic.LoadInt32(&proc2.finished), "second process not finished")
	assert.True(t, atomic.LoadInt64(&proc1.ticks) > 0, "first process never ran")
	assert.True(t, atomic.LoadInt64(&proc2.ticks) > 0, "second process never ran")
}

func TestStopTwice(t *testing.T) {
	done := int32(0)
	f := background.ProcessFunc(func(_ interface{}, shutdown <-chan struct{}) {
		<-shutdown
		atomic.AddInt32(&done, 1)
	})

	p := background.Start(background.Processes{f}, nil)
	p.Stop()
	p.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&done), "wrong completion count")
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()
}
