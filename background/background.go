// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - long running goroutines that share one shutdown signal
package background

import (
	"sync"
)

// Process - a background task
//
// Run must return promptly once shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// ProcessFunc - adapt a plain function to a Process
type ProcessFunc func(args interface{}, shutdown <-chan struct{})

// Run - call the function
func (f ProcessFunc) Run(args interface{}, shutdown <-chan struct{}) {
	f(args, shutdown)
}

// Processes - list of processes to start together
type Processes []Process

// T - handle for a started set of processes
type T struct {
	sync.Mutex
	shutdown chan struct{}
	stopped  bool
	wg       sync.WaitGroup
}

// Start - start a set of background processes, all receive the same args
func Start(processes Processes, args interface{}) *T {
	register := &T{
		shutdown: make(chan struct{}),
	}

	for _, p := range processes {
		register.wg.Add(1)
		go func(p Process) {
			defer register.wg.Done()
			p.Run(args, register.shutdown)
		}(p)
	}
	return register
}

// Stop - signal shutdown and wait for every process to return
//
// calling Stop more than once is harmless
func (t *T) Stop() {
	if nil == t {
		return
	}

	t.Lock()
	if !t.stopped {
		t.stopped = true
		close(t.shutdown)
	}
	t.Unlock()

	t.wg.Wait()
}
