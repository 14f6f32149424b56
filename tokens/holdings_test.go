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

var vaultAddress = common.HexToAddress("0x1111111111111111111111111111111111111111")

func TestHoldings(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockVaultBalanceReader(ctl)
	r.EXPECT().VaultTokenBalance(gomock.Any(), tokens.Arbitrum, vaultAddress, usdcArbitrum).Return(big.NewInt(2500000000), nil).Times(1)
	r.EXPECT().VaultTokenBalance(gomock.Any(), tokens.Arbitrum, vaultAddress, usdtArbitrum).Return(nil, errors.New("reverted")).Times(1)

	clk := fixtures.NewClock()
	cache := tokens.NewCache(clk)
	l := tokens.NewLoader(clk, tokens.NewRegistry(nil, nil), cache, nil, 0)

	list, err := l.Holdings(context.Background(), tokens.Arbitrum, vaultAddress, r, false)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 5, len(list), "every registered token is listed")

	assert.Equal(t, "SOLVBTC", list[0].Symbol, "wrong order")
	assert.Equal(t, "Token not available on this chain", list[0].Error, "wrong unavailable error")

	assert.Equal(t, "USDC", list[2].Symbol, "wrong order")
	assert.Equal(t, "2,500", list[2].Balance, "wrong balance")
	assert.False(t, list[2].HasAllowance, "holdings carry no allowance")

	assert.Equal(t, "Vault balance error: reverted", list[3].Error, "wrong read error")

	// cached within the stale time
	again, err := l.Holdings(context.Background(), tokens.Arbitrum, vaultAddress, r, false)
	assert.Nil(t, err, "wrong cached error")
	assert.Equal(t, list, again, "wrong cached list")

	assert.Equal(t, 1, cache.ClearChain(tokens.Arbitrum), "holdings are cleared with the chain")
}

func TestHoldingsForceAndStale(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockVaultBalanceReader(ctl)
	r.EXPECT().VaultTokenBalance(gomock.Any(), tokens.Katana, vaultAddress, gomock.Any()).Return(big.NewInt(1), nil).Times(3)

	clk := fixtures.NewClock()
	l := tokens.NewLoader(clk, tokens.NewRegistry(nil, nil), tokens.NewCache(clk), nil, 10*time.Second)

	_, err := l.Holdings(context.Background(), tokens.Katana, vaultAddress, r, false)
	assert.Nil(t, err, "first read")
	_, err = l.Holdings(context.Background(), tokens.Katana, vaultAddress, r, true)
	assert.Nil(t, err, "forced read")
	clk.Add(11 * time.Second)
	_, err = l.Holdings(context.Background(), tokens.Katana, vaultAddress, r, false)
	assert.Nil(t, err, "stale read")

	_, err = l.Holdings(context.Background(), tokens.Katana, common.Address{}, r, false)
	assert.Equal(t, fault.InvalidAddress, err, "zero vault")
}
