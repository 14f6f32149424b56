// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cards

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/demai-labs/demaid/rpc/ratelimit"
	"github.com/demai-labs/demaid/surface"
)

const (
	rateLimitCards = 200
	rateBurstCards = 100

	// card ids in one Batch or Ordered
	maximumCards = 100
)

// Cards - type for RPC calls
type Cards struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	requests *surface.Log
}

// New - card surfacing service
func New(log *logger.L, l *surface.Log) *Cards {
	return &Cards{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitCards, rateBurstCards),
		requests: l,
	}
}

// CardArguments - a single card
type CardArguments struct {
	CardID string `json:"cardId"`
}

// Surface - ask clients to bring a card forward
func (c *Cards) Surface(arguments *CardArguments, reply *surface.Request) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	r, err := c.requests.Surface(arguments.CardID)
	if nil != err {
		return err
	}
	*reply = r
	return nil
}

// LatestReply - nil request for a card never surfaced
type LatestReply struct {
	Request *surface.Request `json:"request"`
}

// Latest - last surface request of a card
func (c *Cards) Latest(arguments *CardArguments, reply *LatestReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	if r, ok := c.requests.Latest(arguments.CardID); ok {
		reply.Request = &r
	}
	return nil
}

// BatchArguments - several cards
type BatchArguments struct {
	CardIDs []string `json:"cardIds"`
}

// BatchReply - requests by card id
type BatchReply struct {
	Requests map[string]*surface.Request `json:"requests"`
}

// Batch - last surface request of several cards
func (c *Cards) Batch(arguments *BatchArguments, reply *BatchReply) error {
	if err := ratelimit.LimitN(c.Limiter, len(arguments.CardIDs), maximumCards); nil != err {
		return err
	}

	reply.Requests = c.requests.Batch(arguments.CardIDs)
	return nil
}

// OrderedReply - most recent first
type OrderedReply struct {
	Requests []surface.Request `json:"requests"`
}

// Ordered - surfaced cards most recent first, every card when none are named
func (c *Cards) Ordered(arguments *BatchArguments, reply *OrderedReply) error {
	count := len(arguments.CardIDs)
	if 0 == count {
		count = 1
	}
	if err := ratelimit.LimitN(c.Limiter, count, maximumCards); nil != err {
		return err
	}

	reply.Requests = c.requests.Ordered(arguments.CardIDs)
	return nil
}
