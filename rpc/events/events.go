// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/demai-labs/demaid/events"
	"github.com/demai-labs/demaid/rpc/ratelimit"
)

const (
	rateLimitEvents = 200
	rateBurstEvents = 100

	// keys in one ReadMany
	maximumKeys = 100
)

// Events - type for RPC calls
type Events struct {
	Log     *logger.L
	Limiter *rate.Limiter
	bus     *events.Bus
}

// New - event bus service
func New(log *logger.L, bus *events.Bus) *Events {
	return &Events{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitEvents, rateBurstEvents),
		bus:     bus,
	}
}

// KeyArguments - a single event key
type KeyArguments struct {
	Key string `json:"key"`
}

// KeyReply - a key and its latest timestamp, zero if never emitted
type KeyReply struct {
	Key       string `json:"key"`
	Timestamp int64  `json:"timestamp"`
}

// Emit - stamp a key and its ancestors
func (e *Events) Emit(arguments *KeyArguments, reply *KeyReply) error {
	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	timestamp, err := e.bus.Emit(arguments.Key)
	if nil != err {
		return err
	}
	e.Log.Debugf("emit: %q  timestamp: %d", arguments.Key, timestamp)

	reply.Key = arguments.Key
	reply.Timestamp = timestamp
	return nil
}

// Read - latest timestamp of one key
func (e *Events) Read(arguments *KeyArguments, reply *KeyReply) error {
	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	reply.Key = arguments.Key
	reply.Timestamp = e.bus.Read(arguments.Key)
	return nil
}

// ReadManyArguments - several event keys
type ReadManyArguments struct {
	Keys []string `json:"keys"`
}

// ReadManyReply - timestamps by key
type ReadManyReply struct {
	Timestamps map[string]int64 `json:"timestamps"`
}

// ReadMany - latest timestamps of several keys
func (e *Events) ReadMany(arguments *ReadManyArguments, reply *ReadManyReply) error {
	if err := ratelimit.LimitN(e.Limiter, len(arguments.Keys), maximumKeys); nil != err {
		return err
	}

	reply.Timestamps = e.bus.ReadMany(arguments.Keys)
	return nil
}
