// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package portfolio

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/demai-labs/demaid/portfolio"
	"github.com/demai-labs/demaid/rpc/ratelimit"
	"github.com/demai-labs/demaid/store"
)

const (
	rateLimitPortfolio = 10
	rateBurstPortfolio = 20

	requestTimeout = 30 * time.Second
)

// Portfolio - type for RPC calls
type Portfolio struct {
	Log     *logger.L
	Limiter *rate.Limiter
	store   *store.Store
}

// New - portfolio service
func New(log *logger.L, s *store.Store) *Portfolio {
	return &Portfolio{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitPortfolio, rateBurstPortfolio),
		store:   s,
	}
}

// FetchArguments - a zero wallet selects the connected session
type FetchArguments struct {
	Wallet common.Address `json:"wallet"`
	Force  bool           `json:"force"`
}

// Fetch - the wallet's portfolio, backend failures are in the entry's error
func (p *Portfolio) Fetch(arguments *FetchArguments, reply *portfolio.Entry) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var e portfolio.Entry
	var err error
	if (common.Address{}) == arguments.Wallet {
		e, err = p.store.FetchPortfolio(ctx, arguments.Force)
	} else {
		e, err = p.store.Portfolio().Fetch(ctx, arguments.Wallet.Hex(), arguments.Force)
	}
	if nil != err {
		return err
	}
	*reply = e
	return nil
}

// ClearArguments - a zero wallet clears every cached portfolio
type ClearArguments struct {
	Wallet common.Address `json:"wallet"`
}

// ClearReply - entries remaining
type ClearReply struct {
	Size int `json:"size"`
}

// Clear - drop cached portfolios
func (p *Portfolio) Clear(arguments *ClearArguments, reply *ClearReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	cache := p.store.Portfolio().Cache()
	if (common.Address{}) == arguments.Wallet {
		cache.ClearAll()
	} else {
		cache.Clear(arguments.Wallet.Hex())
	}
	reply.Size = cache.Size()
	return nil
}
