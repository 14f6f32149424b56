// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/demai-labs/demaid/counter"
	"github.com/demai-labs/demaid/rpc/assistant"
	"github.com/demai-labs/demaid/rpc/auth"
	"github.com/demai-labs/demaid/rpc/cards"
	"github.com/demai-labs/demaid/rpc/events"
	"github.com/demai-labs/demaid/rpc/node"
	"github.com/demai-labs/demaid/rpc/portfolio"
	"github.com/demai-labs/demaid/rpc/strategy"
	"github.com/demai-labs/demaid/rpc/tokens"
	"github.com/demai-labs/demaid/rpc/vault"
	"github.com/demai-labs/demaid/store"
)

// Create - an RPC server with every service registered over s
func Create(log *logger.L, version string, rpcCount *counter.Counter, s *store.Store) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(events.New(log, s.Bus()))
	_ = server.Register(cards.New(log, s.Surface()))
	_ = server.Register(vault.New(log, s))
	_ = server.Register(tokens.New(log, s))
	_ = server.Register(portfolio.New(log, s))
	_ = server.Register(auth.New(log, s))
	_ = server.Register(assistant.New(log, s))
	_ = server.Register(strategy.New(log, s))
	_ = server.Register(node.New(log, s, start, version, rpcCount))

	return server
}
