// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package surface - requests to bring a card to the front
//
// Each card id keeps a count of requests and the time of the latest
// one.  Both only ever increase.  Unlike the event log, Ordered and
// Batch answer questions about several cards at once.
package surface

import (
	"sort"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/facebookgo/clock"

	"github.com/demai-labs/demaid/counter"
	"github.com/demai-labs/demaid/fault"
)

const (
	defaultListenerSize = 50
)

// Request - latest surface request for one card
type Request struct {
	CardID    string `json:"cardId"`
	Timestamp int64  `json:"timestamp"`
	Count     uint64 `json:"count"`
}

// Log - surface requests by card id
type Log struct {
	sync.RWMutex

	log       *logger.L
	clock     clock.Clock
	requests  map[string]*Request
	listeners map[*Listener]struct{}
	dropped   counter.Counter
}

// Listener - receives a copy of every new request
type Listener struct {
	C <-chan Request

	c   chan Request
	log *Log
}

// New - create an empty log
func New(clk clock.Clock) *Log {
	if nil == clk {
		clk = clock.New()
	}
	return &Log{
		log:       logger.New("surface"),
		clock:     clk,
		requests:  make(map[string]*Request),
		listeners: make(map[*Listener]struct{}),
	}
}

// Surface - record a request for cardID
//
// the stamp never goes backwards even if the clock does
func (l *Log) Surface(cardID string) (Request, error) {
	cardID = normalise(cardID)
	if "" == cardID {
		return Request{}, fault.InvalidCardID
	}

	l.Lock()
	now := l.clock.Now().UnixMilli()
	r, ok := l.requests[cardID]
	if !ok {
		r = &Request{CardID: cardID}
		l.requests[cardID] = r
	}
	r.Count += 1
	if now > r.Timestamp {
		r.Timestamp = now
	}
	result := *r

	for listener := range l.listeners {
		select {
		case listener.c <- result:
		default:
			l.dropped.Increment()
		}
	}
	l.Unlock()

	l.log.Debugf("surface: %q  count: %d", cardID, result.Count)
	return result, nil
}

// Latest - the current record, false if never surfaced
func (l *Log) Latest(cardID string) (Request, bool) {
	l.RLock()
	defer l.RUnlock()

	r, ok := l.requests[normalise(cardID)]
	if !ok {
		return Request{}, false
	}
	return *r, true
}

// Batch - records for several cards, nil for cards never surfaced
func (l *Log) Batch(cardIDs []string) map[string]*Request {
	l.RLock()
	defer l.RUnlock()

	result := make(map[string]*Request, len(cardIDs))
	for _, id := range cardIDs {
		if r, ok := l.requests[normalise(id)]; ok {
			c := *r
			result[id] = &c
		} else {
			result[id] = nil
		}
	}
	return result
}

// Ordered - surfaced cards among cardIDs, most recent first
//
// equal stamps are ordered by card id; an empty cardIDs selects every card
func (l *Log) Ordered(cardIDs []string) []Request {
	l.RLock()
	result := make([]Request, 0, len(l.requests))
	if 0 == len(cardIDs) {
		for _, r := range l.requests {
			result = append(result, *r)
		}
	} else {
		seen := make(map[string]struct{}, len(cardIDs))
		for _, id := range cardIDs {
			id = normalise(id)
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if r, ok := l.requests[id]; ok {
				result = append(result, *r)
			}
		}
	}
	l.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].Timestamp != result[j].Timestamp {
			return result[i].Timestamp > result[j].Timestamp
		}
		return result[i].CardID < result[j].CardID
	})
	return result
}

// card ids are compared without surrounding blanks
func normalise(cardID string) string {
	return strings.TrimSpace(cardID)
}

// Size - number of distinct cards
func (l *Log) Size() int {
	l.RLock()
	defer l.RUnlock()
	return len(l.requests)
}

// Dropped - notifications discarded because a listener was full
func (l *Log) Dropped() uint64 {
	return l.dropped.Uint64()
}

// Listen - receive every future request, size of zero selects a default
func (l *Log) Listen(size int) *Listener {
	if size <= 0 {
		size = defaultListenerSize
	}
	c := make(chan Request, size)
	listener := &Listener{
		C:   c,
		c:   c,
		log: l,
	}

	l.Lock()
	l.listeners[listener] = struct{}{}
	l.Unlock()

	return listener
}

// Close - unregister and close the channel, safe to call repeatedly
func (listener *Listener) Close() {
	l := listener.log
	l.Lock()
	defer l.Unlock()

	if _, ok := l.listeners[listener]; !ok {
		return
	}
	delete(l.listeners, listener)
	close(listener.c)
}
