// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/demai-labs/demaid/counter"
	"github.com/demai-labs/demaid/rpc/ratelimit"
	"github.com/demai-labs/demaid/store"
	"github.com/demai-labs/demaid/tokens"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	store   *store.Store
	counter *counter.Counter
}

// New - node information service
func New(log *logger.L, s *store.Store, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		store:   s,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version string         `json:"version"`
	Uptime  string         `json:"uptime"`
	RPCs    uint64         `json:"rpcs"`
	Session store.Session  `json:"session"`
	Stats   store.Stats    `json:"stats"`
	Chains  []tokens.Chain `json:"chains"`
}

// Info - return some information about this node
// only enough for clients to determine its state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Session = node.store.Session()
	reply.Stats = node.store.Stats()
	reply.Chains = node.store.Tokens().Registry().Chains()

	return nil
}
