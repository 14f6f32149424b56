// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package portfolio

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/demai-labs/demaid/auth"
	"github.com/demai-labs/demaid/demaiapi"
	"github.com/demai-labs/demaid/fault"
)

// Fetcher - the backend portfolio call
type Fetcher interface {
	Portfolio(ctx context.Context, credentials demaiapi.Credentials) (*demaiapi.Portfolio, error)
}

// Authenticator - the stored signature for a wallet, nil if none
type Authenticator interface {
	For(address string) *auth.Data
}

// Service - fetches portfolios into a cache
type Service struct {
	log     *logger.L
	cache   *Cache
	fetcher Fetcher
	auth    Authenticator
}

// NewService - a service writing into cache
func NewService(cache *Cache, fetcher Fetcher, authenticator Authenticator) *Service {
	return &Service{
		log:     logger.New("portfolio"),
		cache:   cache,
		fetcher: fetcher,
		auth:    authenticator,
	}
}

// Cache - the underlying cache
func (s *Service) Cache() *Cache {
	return s.cache
}

// Fetch - bring a wallet's portfolio up to date and return its entry
//
// without force the cached entry is returned while it is fresh or
// loading; backend failures are recorded in the entry, not returned
func (s *Service) Fetch(ctx context.Context, wallet string, force bool) (Entry, error) {
	if "" == wallet {
		return Entry{}, fault.InvalidAddress
	}

	credentials := s.auth.For(wallet)
	if nil == credentials {
		s.cache.SetError(wallet, fault.AuthenticationRequired.Error())
		return s.cache.Get(wallet), nil
	}

	if !force && !s.cache.ShouldQuery(wallet) {
		return s.cache.Get(wallet), nil
	}

	s.cache.SetLoading(wallet, true)

	data, err := s.fetcher.Portfolio(ctx, demaiapi.Credentials{
		WalletAddress: wallet,
		Signature:     credentials.Signature,
		Message:       credentials.Message,
	})
	if nil != err {
		s.log.Warnf("fetch: %s  error: %s", wallet, err)
		s.cache.SetError(wallet, err.Error())
	} else if nil == data {
		s.cache.SetError(wallet, "Failed to fetch portfolio data")
	} else {
		s.log.Debugf("fetch: %s  total: %f", wallet, data.TotalValueUSD)
		s.cache.SetData(wallet, *data)
	}

	return s.cache.Get(wallet), nil
}
