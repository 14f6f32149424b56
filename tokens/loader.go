// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"context"
	"math/big"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/facebookgo/clock"
	"golang.org/x/sync/errgroup"

	"github.com/demai-labs/demaid/fault"
)

const (
	// DefaultStaleTime - age after which Load refreshes a cached list
	DefaultStaleTime = 30 * time.Second

	maximumParallelReads = 4
)

// Reader - ERC20 reads
type Reader interface {
	BalanceOf(ctx context.Context, chainID uint64, token common.Address, account common.Address) (*big.Int, error)
	Allowance(ctx context.Context, chainID uint64, token common.Address, owner common.Address, spender common.Address) (*big.Int, error)
}

// Loader - fills the cache from the chain
type Loader struct {
	log       *logger.L
	clock     clock.Clock
	registry  *Registry
	cache     *Cache
	reader    Reader
	staleTime time.Duration
}

// NewLoader - create a loader, staleTime of zero selects DefaultStaleTime
func NewLoader(clk clock.Clock, registry *Registry, cache *Cache, reader Reader, staleTime time.Duration) *Loader {
	if nil == clk {
		clk = clock.New()
	}
	if staleTime <= 0 {
		staleTime = DefaultStaleTime
	}
	return &Loader{
		log:       logger.New("loader"),
		clock:     clk,
		registry:  registry,
		cache:     cache,
		reader:    reader,
		staleTime: staleTime,
	}
}

// Cache - the underlying cache
func (l *Loader) Cache() *Cache {
	return l.cache
}

// Registry - the token registry
func (l *Loader) Registry() *Registry {
	return l.registry
}

// Load - cached list when fresh enough, otherwise Refresh
func (l *Loader) Load(ctx context.Context, chainID uint64, owner common.Address, spender common.Address) ([]Balance, error) {
	key := CacheKey(chainID, owner, spender)
	if list, ok := l.cache.Get(key); ok {
		age := l.clock.Now().UnixMilli() - l.cache.UpdatedAt(key)
		if age <= l.staleTime.Milliseconds() {
			return list, nil
		}
	}
	return l.Refresh(ctx, chainID, owner, spender)
}

// Refresh - read balance and allowance of every token on the chain and
// replace the cached list
//
// a failed read is recorded on its token and does not fail the refresh
func (l *Loader) Refresh(ctx context.Context, chainID uint64, owner common.Address, spender common.Address) ([]Balance, error) {
	if (common.Address{}) == owner || (common.Address{}) == spender {
		return nil, fault.InvalidAddress
	}

	tokens := l.registry.ForChain(chainID)
	list := make([]Balance, len(tokens))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maximumParallelReads)

	for i, token := range tokens {
		i, token := i, token
		g.Go(func() error {
			list[i] = l.read(gctx, chainID, token, owner, spender)
			return gctx.Err()
		})
	}
	if err := g.Wait(); nil != err {
		l.log.Warnf("refresh: chain: %d  owner: %s  error: %s", chainID, owner.Hex(), err)
		return nil, err
	}

	key := CacheKey(chainID, owner, spender)
	l.cache.Set(key, list)
	l.log.Infof("refreshed: %q  tokens: %d", key, len(list))

	return cloneList(list), nil
}

func (l *Loader) read(ctx context.Context, chainID uint64, token ChainToken, owner common.Address, spender common.Address) Balance {
	balance, balanceErr := l.reader.BalanceOf(ctx, chainID, token.Address, owner)
	if nil != balanceErr {
		balance = nil
	}
	allowance, allowanceErr := l.reader.Allowance(ctx, chainID, token.Address, owner, spender)
	if nil != allowanceErr {
		allowance = nil
	}

	b := NewBalance(token, balance, allowance)
	if nil != balanceErr {
		b.Error = "Balance error: " + balanceErr.Error()
	} else if nil != allowanceErr {
		b.Error = "Allowance error: " + allowanceErr.Error()
	}
	if "" != b.Error {
		l.log.Warnf("%s on chain: %d  %s", token.Symbol, chainID, b.Error)
	}
	return b
}

// Unavailable - placeholder entry for a token with no address on the chain
func Unavailable(token Token) Balance {
	return Balance{
		Symbol:       token.Symbol,
		Name:         token.Name,
		Decimals:     token.Decimals,
		Balance:      "0",
		BalanceRaw:   new(big.Int),
		Allowance:    "0",
		AllowanceRaw: new(big.Int),
		Error:        "Token not available on this chain",
	}
}
