// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/demai-labs/demaid/demaiapi"
	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/rpc/ratelimit"
	"github.com/demai-labs/demaid/store"
)

const (
	rateLimitAssistant = 2
	rateBurstAssistant = 5

	// the assistant may run tools before answering
	requestTimeout = 120 * time.Second
)

// Assistant - type for RPC calls
type Assistant struct {
	Log     *logger.L
	Limiter *rate.Limiter
	store   *store.Store
}

// New - chat service
func New(log *logger.L, s *store.Store) *Assistant {
	return &Assistant{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAssistant, rateBurstAssistant),
		store:   s,
	}
}

// ChatArguments - one user message
type ChatArguments struct {
	Message string `json:"message"`
}

// Chat - send a message, windows named in the reply are opened on the bus
func (a *Assistant) Chat(arguments *ChatArguments, reply *demaiapi.ChatReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	message := strings.TrimSpace(arguments.Message)
	if "" == message {
		return fault.EmptyChatMessage
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	r, err := a.store.Chat(ctx, message)
	if nil != err {
		return err
	}
	*reply = *r
	return nil
}
