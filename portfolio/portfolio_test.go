// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package portfolio_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/demai-labs/demaid/auth"
	"github.com/demai-labs/demaid/demaiapi"
	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/fixtures"
	"github.com/demai-labs/demaid/mocks"
	"github.com/demai-labs/demaid/portfolio"
)

const wallet = "0x52908400098527886E0F7030069857D2E4169EE7"

var signed = &auth.Data{
	Address:   wallet,
	Signature: "0xsig",
	Message:   auth.Message,
}

func TestCacheShouldQuery(t *testing.T) {
	clk := fixtures.NewClock()
	c := portfolio.NewCache(clk, 0)
	assert.Equal(t, portfolio.DefaultTTL, c.TTL(), "wrong default ttl")

	assert.True(t, c.ShouldQuery(wallet), "never fetched")

	c.SetLoading(wallet, true)
	assert.False(t, c.ShouldQuery(wallet), "loading suppresses")

	c.SetData(wallet, demaiapi.Portfolio{TotalValueUSD: 10})
	assert.False(t, c.Get(wallet).Loading, "data clears loading")
	assert.False(t, c.ShouldQuery(wallet), "fresh data")

	clk.Add(portfolio.DefaultTTL)
	assert.False(t, c.ShouldQuery(wallet), "exactly ttl is still fresh")
	clk.Add(time.Second)
	assert.True(t, c.ShouldQuery(wallet), "stale data")
}

func TestCacheErrorKeepsStamp(t *testing.T) {
	clk := fixtures.NewClock()
	c := portfolio.NewCache(clk, time.Minute)

	c.SetError(wallet, "boom")
	e := c.Get(wallet)
	assert.Equal(t, "boom", e.Error, "wrong error")
	assert.NotNil(t, e.Data.Chains, "error entry carries an empty portfolio")
	assert.True(t, c.ShouldQuery(wallet), "error without data retries")

	c.SetData(wallet, demaiapi.Portfolio{TotalValueUSD: 1})
	c.SetError(wallet, "later")
	assert.False(t, c.ShouldQuery(wallet), "error after data waits for the ttl")
}

func TestCacheMixedCaseAndClear(t *testing.T) {
	clk := fixtures.NewClock()
	c := portfolio.NewCache(clk, time.Minute)

	c.SetData(wallet, demaiapi.Portfolio{TotalValueUSD: 3})
	assert.Equal(t, 3.0, c.Get("0x52908400098527886e0f7030069857d2e4169ee7").Data.TotalValueUSD, "case must not matter")

	c.SetData("0x0000000000000000000000000000000000000001", demaiapi.Portfolio{})
	assert.Equal(t, 2, c.Size(), "wrong size")

	c.Clear(wallet)
	assert.Equal(t, 1, c.Size(), "wrong size after clear")
	assert.Equal(t, 0.0, c.Get(wallet).Data.TotalValueUSD, "cleared wallet is empty")

	c.ClearAll()
	assert.Equal(t, 0, c.Size(), "wrong size after clear all")
}

func TestFetchRequiresAuth(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	fetcher := mocks.NewMockPortfolioFetcher(ctl)
	authenticator := mocks.NewMockAuthenticator(ctl)
	authenticator.EXPECT().For(wallet).Return(nil).Times(1)

	s := portfolio.NewService(portfolio.NewCache(fixtures.NewClock(), 0), fetcher, authenticator)

	e, err := s.Fetch(context.Background(), wallet, false)
	assert.Nil(t, err, "auth failure is recorded, not returned")
	assert.Equal(t, "please authenticate to view your portfolio", e.Error, "wrong error text")
	assert.False(t, e.Loading, "not loading")

	_, err = s.Fetch(context.Background(), "", false)
	assert.Equal(t, fault.InvalidAddress, err, "wrong error for empty wallet")
}

func TestFetchCachesAndForces(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	fetcher := mocks.NewMockPortfolioFetcher(ctl)
	authenticator := mocks.NewMockAuthenticator(ctl)
	authenticator.EXPECT().For(wallet).Return(signed).AnyTimes()

	credentials := demaiapi.Credentials{
		WalletAddress: wallet,
		Signature:     signed.Signature,
		Message:       auth.Message,
	}
	gomock.InOrder(
		fetcher.EXPECT().Portfolio(gomock.Any(), credentials).Return(&demaiapi.Portfolio{TotalValueUSD: 100}, nil).Times(1),
		fetcher.EXPECT().Portfolio(gomock.Any(), credentials).Return(nil, &demaiapi.StatusError{Status: 500}).Times(1),
	)

	clk := fixtures.NewClock()
	s := portfolio.NewService(portfolio.NewCache(clk, 0), fetcher, authenticator)
	ctx := context.Background()

	e, err := s.Fetch(ctx, wallet, false)
	assert.Nil(t, err, "wrong fetch error")
	assert.Equal(t, 100.0, e.Data.TotalValueUSD, "wrong total")
	assert.Equal(t, clk.Now().UnixNano()/int64(time.Millisecond), e.LastUpdated, "wrong stamp")

	e, _ = s.Fetch(ctx, wallet, false)
	assert.Equal(t, 100.0, e.Data.TotalValueUSD, "fresh entry is served from cache")

	e, _ = s.Fetch(ctx, wallet, true)
	assert.Equal(t, "Server error! Status: 500", e.Error, "forced fetch records backend error")
	assert.Equal(t, 0.0, e.Data.TotalValueUSD, "error replaces data")
	assert.False(t, e.Loading, "loading cleared after error")
}
