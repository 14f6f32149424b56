// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"context"
	"errors"
	"strconv"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/singleflight"

	"github.com/demai-labs/demaid/fault"
)

// Reader - contract reads needed to resolve a vault
type Reader interface {
	GetUserVault(ctx context.Context, chainID uint64, owner common.Address) (common.Address, error)
	PredictVaultAddress(ctx context.Context, chainID uint64, owner common.Address) (common.Address, error)
}

// Lookup - result of a resolve
type Lookup struct {
	ChainID   uint64         `json:"chainId"`
	Owner     common.Address `json:"owner"`
	Address   common.Address `json:"address"`
	State     State          `json:"state"`
	Status    Status         `json:"status"`
	HasVault  bool           `json:"hasVault"`
	LastQuery int64          `json:"lastQuery"`
}

// Resolver - reads through the cache
type Resolver struct {
	log    *logger.L
	cache  *Cache
	reader Reader
	group  singleflight.Group
}

// NewResolver - create a resolver over a cache and a contract reader
func NewResolver(cache *Cache, reader Reader) *Resolver {
	return &Resolver{
		log:    logger.New("resolver"),
		cache:  cache,
		reader: reader,
	}
}

// Cache - the underlying cache
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// Resolve - return the vault for owner, reading the factory only when
// the cache admits a query
//
// concurrent callers for the same key share one flight, so a caller
// arriving during a read waits for its result.  A flight abandoned by
// its leader's context is retried under the waiter's own context.
func (r *Resolver) Resolve(ctx context.Context, chainID uint64, owner common.Address) (Lookup, error) {
	return r.do(ctx, flightKey(chainID, owner), func() (interface{}, error) {
		if !r.cache.Claim(chainID, owner) {
			return r.Lookup(chainID, owner), nil
		}
		return r.fetch(ctx, chainID, owner)
	}, chainID, owner)
}

// Refetch - discard any sticky state and read again regardless of TTL
func (r *Resolver) Refetch(ctx context.Context, chainID uint64, owner common.Address) (Lookup, error) {
	k := flightKey(chainID, owner)
	r.group.Forget(k)

	return r.do(ctx, k, func() (interface{}, error) {
		r.cache.SetStatus(chainID, owner, Idle)
		r.log.Infof("refetch: %d/%s", chainID, owner.Hex())

		r.cache.SetStatus(chainID, owner, Loading)
		return r.fetch(ctx, chainID, owner)
	}, chainID, owner)
}

// Lookup - current cached view without any read
func (r *Resolver) Lookup(chainID uint64, owner common.Address) Lookup {
	l := Lookup{
		ChainID: chainID,
		Owner:   owner,
	}
	e, ok := r.cache.Entry(chainID, owner)
	if !ok {
		l.State = Unresolved
		l.Status = Idle
		return l
	}
	l.Address = e.Address
	l.State = e.State
	l.Status = e.Status
	l.HasVault = Resolved == e.State
	l.LastQuery = e.LastQuery
	return l
}

func (r *Resolver) do(ctx context.Context, k string, fn func() (interface{}, error), chainID uint64, owner common.Address) (Lookup, error) {
	for {
		v, err, shared := r.group.Do(k, fn)
		if nil != err {
			if abandoned(err) && nil == ctx.Err() {
				r.log.Debugf("flight abandoned: %s  retrying", k)
				continue
			}
			return r.Lookup(chainID, owner), err
		}
		if shared {
			r.log.Debugf("shared flight: %s", k)
		}
		return v.(Lookup), nil
	}
}

// the read was cut short by its caller, not refused by the chain
func abandoned(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// caller must hold the loading claim
func (r *Resolver) fetch(ctx context.Context, chainID uint64, owner common.Address) (interface{}, error) {
	address, err := r.reader.GetUserVault(ctx, chainID, owner)
	if nil != err {
		if fault.VaultFactoryNotSet == err {
			// nothing to query on this chain
			r.cache.SetStatus(chainID, owner, Idle)
		} else if abandoned(err) {
			r.cache.SetStatus(chainID, owner, Idle)
			r.log.Warnf("getUserVault: %d/%s  abandoned: %s", chainID, owner.Hex(), err)
			return nil, err
		} else {
			r.cache.SetStatus(chainID, owner, Error)
		}
		r.log.Errorf("getUserVault: %d/%s  error: %s", chainID, owner.Hex(), err)
		return nil, err
	}

	r.cache.SetResult(chainID, owner, &address)
	return r.Lookup(chainID, owner), nil
}

func flightKey(chainID uint64, owner common.Address) string {
	return strconv.FormatUint(chainID, 10) + ":" + owner.Hex()
}
