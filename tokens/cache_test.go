// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/demai-labs/demaid/fixtures"
	"github.com/demai-labs/demaid/tokens"
)

var (
	owner   = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	spender = common.HexToAddress("0x5C97F0a08a1c8a3Ed6C1E1dB2f7Ce08a4BFE53C7")
)

func sampleList() []tokens.Balance {
	registry := tokens.NewRegistry(nil, nil)
	list := registry.ForChain(tokens.Arbitrum)
	return []tokens.Balance{
		tokens.NewBalance(list[0], big.NewInt(1500000), big.NewInt(0)),
		tokens.NewBalance(list[1], big.NewInt(2000000000), big.NewInt(7)),
	}
}

func TestCacheKey(t *testing.T) {
	upper := common.HexToAddress("0xABCDEF0000000000000000000000000000000001")
	k := tokens.CacheKey(42161, upper, spender)
	assert.Equal(t, "42161:0xabcdef0000000000000000000000000000000001:0x5c97f0a08a1c8a3ed6c1e1db2f7ce08a4bfe53c7", k, "wrong key")
}

func TestCacheSetGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	clk := fixtures.NewClock()
	c := tokens.NewCache(clk)
	key := tokens.CacheKey(tokens.Arbitrum, owner, spender)

	_, ok := c.Get(key)
	assert.False(t, ok, "empty cache returned a list")
	assert.Equal(t, int64(0), c.UpdatedAt(key), "wrong stamp for absent key")

	list := sampleList()
	c.Set(key, list)

	got, ok := c.Get(key)
	assert.True(t, ok, "list not cached")
	assert.Equal(t, list, got, "wrong cached list")
	assert.Equal(t, clk.Now().UnixMilli(), c.UpdatedAt(key), "wrong stamp")

	b := got[0]
	assert.Equal(t, "1.5", b.Balance, "wrong formatted balance")
	assert.False(t, b.HasAllowance, "zero allowance should be false")
	assert.True(t, got[1].HasAllowance, "non-zero allowance should be true")
	assert.Equal(t, "2,000", got[1].Balance, "wrong formatted large balance")
}

func TestCacheIsolation(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	c := tokens.NewCache(fixtures.NewClock())
	key := tokens.CacheKey(tokens.Arbitrum, owner, spender)

	list := sampleList()
	c.Set(key, list)

	// mutate the caller's copy after the write
	list[0].Symbol = "CHANGED"
	list[0].BalanceRaw.SetInt64(1)

	got, _ := c.Get(key)
	assert.Equal(t, "USDC", got[0].Symbol, "cache shares the caller's slice")
	assert.Equal(t, big.NewInt(1500000), got[0].BalanceRaw, "cache shares the caller's integer")

	// mutate a read copy
	got[1].AllowanceRaw.SetInt64(0)
	again, _ := c.Get(key)
	assert.Equal(t, big.NewInt(7), again[1].AllowanceRaw, "cache shares the reader's integer")
}

func TestCacheReplace(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	clk := fixtures.NewClock()
	c := tokens.NewCache(clk)
	key := tokens.CacheKey(tokens.Arbitrum, owner, spender)

	c.Set(key, sampleList())
	first := c.UpdatedAt(key)

	clk.Add(time.Second)
	c.Set(key, sampleList()[:1])

	got, _ := c.Get(key)
	assert.Equal(t, 1, len(got), "list not replaced")
	assert.True(t, c.UpdatedAt(key) > first, "stamp not advanced")

	c.Set(key, nil)
	got, ok := c.Get(key)
	assert.True(t, ok, "empty list not cached")
	assert.Equal(t, 0, len(got), "wrong empty list")
}

func TestCacheClear(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	c := tokens.NewCache(fixtures.NewClock())
	k1 := tokens.CacheKey(tokens.Arbitrum, owner, spender)
	k2 := tokens.CacheKey(tokens.Core, owner, spender)
	k3 := tokens.CacheKey(tokens.Core, spender, owner)

	for _, k := range []string{k1, k2, k3} {
		c.Set(k, sampleList())
	}

	c.Clear(k1)
	_, ok := c.Get(k1)
	assert.False(t, ok, "key not cleared")
	assert.Equal(t, 2, c.Size(), "wrong size after clear")

	c.Set(k1, sampleList())
	assert.Equal(t, 2, c.ClearChain(tokens.Core), "wrong chain clear count")
	_, ok = c.Get(k1)
	assert.True(t, ok, "other chain cleared")

	c.ClearAll()
	assert.Equal(t, 0, c.Size(), "cache not empty")
}
