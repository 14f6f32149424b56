// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/facebookgo/clock"

	"github.com/demai-labs/demaid/counter"
)

const (
	defaultListenerSize = 100
)

// Notification - sent to a listener when its key is stamped
type Notification struct {
	Key       string // the key the listener registered
	Emitted   string // the key passed to Emit
	Timestamp int64  // milliseconds
}

// Bus - the event log and its listeners
type Bus struct {
	sync.RWMutex

	log       *logger.L
	clock     clock.Clock
	stamps    map[string]int64
	listeners map[string]map[*Listener]struct{}
	hooks     []func(emitted string)
	dropped   counter.Counter
}

// New - create an empty bus
func New(clk clock.Clock) *Bus {
	if nil == clk {
		clk = clock.New()
	}
	return &Bus{
		log:       logger.New("events"),
		clock:     clk,
		stamps:    make(map[string]int64),
		listeners: make(map[string]map[*Listener]struct{}),
	}
}

// Emit - stamp key and all of its ancestors with the current time
func (b *Bus) Emit(key string) (int64, error) {
	prefixes, err := Prefixes(key)
	if nil != err {
		b.log.Warnf("emit: %q  error: %s", key, err)
		return 0, err
	}

	b.Lock()
	now := b.clock.Now().UnixMilli()
	for _, p := range prefixes {
		b.stamps[p] = now
	}
	hooks := b.hooks
	b.Unlock()

	b.log.Debugf("emit: %q at: %d", key, now)

	for _, f := range hooks {
		f(key)
	}
	b.notify(key, prefixes, now)

	return now, nil
}

// Read - timestamp of exactly this key, zero if never emitted
func (b *Bus) Read(key string) int64 {
	b.RLock()
	defer b.RUnlock()
	return b.stamps[key]
}

// ReadMany - timestamps for several keys, absent keys read as zero
func (b *Bus) ReadMany(keys []string) map[string]int64 {
	b.RLock()
	defer b.RUnlock()

	result := make(map[string]int64, len(keys))
	for _, k := range keys {
		result[k] = b.stamps[k]
	}
	return result
}

// Size - number of distinct keys ever stamped
func (b *Bus) Size() int {
	b.RLock()
	defer b.RUnlock()
	return len(b.stamps)
}

// Dropped - notifications discarded because a listener was full
func (b *Bus) Dropped() uint64 {
	return b.dropped.Uint64()
}

// Hook - run f inside every Emit, before listeners are notified
//
// f runs on the emitting goroutine so it must not block or emit
func (b *Bus) Hook(f func(emitted string)) {
	b.Lock()
	b.hooks = append(b.hooks[:len(b.hooks):len(b.hooks)], f)
	b.Unlock()
}

// Listen - register for notifications on key
//
// size is the channel buffer, zero selects a default
func (b *Bus) Listen(key string, size int) (*Listener, error) {
	if _, err := Prefixes(key); nil != err {
		return nil, err
	}
	if size <= 0 {
		size = defaultListenerSize
	}

	c := make(chan Notification, size)
	l := &Listener{
		C:   c,
		c:   c,
		key: key,
		bus: b,
	}

	b.Lock()
	set, ok := b.listeners[key]
	if !ok {
		set = make(map[*Listener]struct{})
		b.listeners[key] = set
	}
	set[l] = struct{}{}
	b.Unlock()

	return l, nil
}

// deliver without blocking; the read lock keeps Close from
// closing a channel while it is being written
func (b *Bus) notify(emitted string, prefixes []string, timestamp int64) {
	b.RLock()
	defer b.RUnlock()

	for _, p := range prefixes {
		for l := range b.listeners[p] {
			n := Notification{
				Key:       p,
				Emitted:   emitted,
				Timestamp: timestamp,
			}
			select {
			case l.c <- n:
			default:
				b.dropped.Increment()
				b.log.Debugf("listener: %q full, dropped: %q", p, emitted)
			}
		}
	}
}

func (b *Bus) remove(l *Listener) {
	b.Lock()
	defer b.Unlock()

	set, ok := b.listeners[l.key]
	if !ok {
		return
	}
	if _, ok := set[l]; !ok {
		return
	}
	delete(set, l)
	if 0 == len(set) {
		delete(b.listeners, l.key)
	}
	close(l.c)
}
