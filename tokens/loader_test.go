// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/fixtures"
	"github.com/demai-labs/demaid/mocks"
	"github.com/demai-labs/demaid/tokens"
)

var (
	usdcArbitrum = common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831")
	usdtArbitrum = common.HexToAddress("0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9")
)

func TestLoaderRefresh(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockTokenReader(ctl)
	r.EXPECT().BalanceOf(gomock.Any(), tokens.Arbitrum, usdcArbitrum, owner).Return(big.NewInt(12500000), nil).Times(1)
	r.EXPECT().Allowance(gomock.Any(), tokens.Arbitrum, usdcArbitrum, owner, spender).Return(big.NewInt(1), nil).Times(1)
	r.EXPECT().BalanceOf(gomock.Any(), tokens.Arbitrum, usdtArbitrum, owner).Return(nil, errors.New("timeout")).Times(1)
	r.EXPECT().Allowance(gomock.Any(), tokens.Arbitrum, usdtArbitrum, owner, spender).Return(big.NewInt(0), nil).Times(1)

	clk := fixtures.NewClock()
	cache := tokens.NewCache(clk)
	l := tokens.NewLoader(clk, tokens.NewRegistry(nil, nil), cache, r, 0)

	list, err := l.Refresh(context.Background(), tokens.Arbitrum, owner, spender)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 2, len(list), "wrong token count")

	assert.Equal(t, "USDC", list[0].Symbol, "wrong order")
	assert.Equal(t, "12.5", list[0].Balance, "wrong balance")
	assert.True(t, list[0].HasAllowance, "wrong allowance flag")
	assert.Equal(t, "", list[0].Error, "unexpected error")

	assert.Equal(t, "USDT", list[1].Symbol, "wrong order")
	assert.Equal(t, "Balance error: timeout", list[1].Error, "wrong per token error")
	assert.Equal(t, "0", list[1].Balance, "failed balance should read zero")

	cached, ok := cache.Get(tokens.CacheKey(tokens.Arbitrum, owner, spender))
	assert.True(t, ok, "refresh not cached")
	assert.Equal(t, list, cached, "cached list differs")
}

func TestLoaderAllowanceError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockTokenReader(ctl)
	r.EXPECT().BalanceOf(gomock.Any(), tokens.Katana, gomock.Any(), owner).Return(big.NewInt(5), nil).Times(1)
	r.EXPECT().Allowance(gomock.Any(), tokens.Katana, gomock.Any(), owner, spender).Return(nil, errors.New("reverted")).Times(1)

	clk := fixtures.NewClock()
	l := tokens.NewLoader(clk, tokens.NewRegistry(nil, nil), tokens.NewCache(clk), r, 0)

	list, err := l.Refresh(context.Background(), tokens.Katana, owner, spender)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "Allowance error: reverted", list[0].Error, "wrong per token error")
	assert.False(t, list[0].HasAllowance, "failed allowance should be false")
}

func TestLoaderLoadUsesCache(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockTokenReader(ctl)
	r.EXPECT().BalanceOf(gomock.Any(), tokens.Katana, gomock.Any(), owner).Return(big.NewInt(5), nil).Times(2)
	r.EXPECT().Allowance(gomock.Any(), tokens.Katana, gomock.Any(), owner, spender).Return(big.NewInt(0), nil).Times(2)

	clk := fixtures.NewClock()
	l := tokens.NewLoader(clk, tokens.NewRegistry(nil, nil), tokens.NewCache(clk), r, 30*time.Second)

	_, err := l.Load(context.Background(), tokens.Katana, owner, spender)
	assert.Nil(t, err, "wrong first load error")

	clk.Add(10 * time.Second)
	_, err = l.Load(context.Background(), tokens.Katana, owner, spender)
	assert.Nil(t, err, "wrong cached load error")

	clk.Add(31 * time.Second)
	_, err = l.Load(context.Background(), tokens.Katana, owner, spender)
	assert.Nil(t, err, "wrong stale load error")
}

func TestLoaderInvalidAddress(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	clk := fixtures.NewClock()
	l := tokens.NewLoader(clk, tokens.NewRegistry(nil, nil), tokens.NewCache(clk), mocks.NewMockTokenReader(ctl), 0)

	_, err := l.Refresh(context.Background(), tokens.Arbitrum, common.Address{}, spender)
	assert.Equal(t, fault.InvalidAddress, err, "wrong error")
}

func TestLoaderUnknownChain(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	clk := fixtures.NewClock()
	l := tokens.NewLoader(clk, tokens.NewRegistry(nil, nil), tokens.NewCache(clk), mocks.NewMockTokenReader(ctl), 0)

	list, err := l.Refresh(context.Background(), 1, owner, spender)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 0, len(list), "unexpected tokens")
}

func TestUnavailable(t *testing.T) {
	token, _ := tokens.NewRegistry(nil, nil).BySymbol("AUSD")
	b := tokens.Unavailable(token)
	assert.Equal(t, "Token not available on this chain", b.Error, "wrong error text")
	assert.Equal(t, "0", b.Balance, "wrong balance")
	assert.False(t, b.HasAllowance, "wrong allowance flag")
}
