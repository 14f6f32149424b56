// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package portfolio

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/facebookgo/clock"
	gocache "github.com/patrickmn/go-cache"

	"github.com/demai-labs/demaid/demaiapi"
)

// DefaultTTL - age after which a portfolio is fetched again
const DefaultTTL = 5 * time.Minute

// Entry - the cached state of one wallet
type Entry struct {
	Data        demaiapi.Portfolio `json:"data"`
	Loading     bool               `json:"isLoading"`
	Error       string             `json:"error,omitempty"`
	LastUpdated int64              `json:"lastUpdated,omitempty"`
}

// Empty - the portfolio shown before any data arrives
func Empty() demaiapi.Portfolio {
	return demaiapi.Portfolio{
		Chains:     map[string]json.RawMessage{},
		Strategies: map[string]json.RawMessage{},
		Summary: demaiapi.Summary{
			ActiveChains:     []string{},
			ActiveStrategies: []string{},
		},
	}
}

// Cache - wallet to Entry
type Cache struct {
	sync.Mutex
	clock clock.Clock
	ttl   time.Duration
	items *gocache.Cache
}

// NewCache - an empty cache, ttl <= 0 means DefaultTTL
func NewCache(clk clock.Clock, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		clock: clk,
		ttl:   ttl,
		items: gocache.New(gocache.NoExpiration, 0),
	}
}

// TTL - the configured time to live
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

func key(wallet string) string {
	return strings.ToLower(wallet)
}

func (c *Cache) now() int64 {
	return c.clock.Now().UnixNano() / int64(time.Millisecond)
}

// caller holds the lock
func (c *Cache) entry(wallet string) Entry {
	if v, ok := c.items.Get(key(wallet)); ok {
		return v.(Entry)
	}
	return Entry{
		Data: Empty(),
	}
}

// ShouldQuery - false while loading, true if never updated or older
// than the TTL
func (c *Cache) ShouldQuery(wallet string) bool {
	c.Lock()
	defer c.Unlock()

	v, ok := c.items.Get(key(wallet))
	if !ok {
		return true
	}
	e := v.(Entry)
	if e.Loading {
		return false
	}
	if 0 == e.LastUpdated {
		return true
	}
	return c.now()-e.LastUpdated > c.ttl.Milliseconds()
}

// Get - the entry for a wallet, an empty one if never fetched
func (c *Cache) Get(wallet string) Entry {
	c.Lock()
	defer c.Unlock()
	return c.entry(wallet)
}

// SetLoading - mark a fetch in progress
func (c *Cache) SetLoading(wallet string, loading bool) {
	c.Lock()
	defer c.Unlock()

	e := c.entry(wallet)
	e.Loading = loading
	c.items.Set(key(wallet), e, gocache.NoExpiration)
}

// SetData - store a fetched portfolio
func (c *Cache) SetData(wallet string, data demaiapi.Portfolio) {
	c.Lock()
	defer c.Unlock()

	c.items.Set(key(wallet), Entry{
		Data:        data,
		LastUpdated: c.now(),
	}, gocache.NoExpiration)
}

// SetError - replace the data by an empty portfolio carrying message
func (c *Cache) SetError(wallet string, message string) {
	c.Lock()
	defer c.Unlock()

	e := c.entry(wallet)
	c.items.Set(key(wallet), Entry{
		Data:        Empty(),
		Error:       message,
		LastUpdated: e.LastUpdated,
	}, gocache.NoExpiration)
}

// Clear - forget one wallet
func (c *Cache) Clear(wallet string) {
	c.Lock()
	defer c.Unlock()
	c.items.Delete(key(wallet))
}

// ClearAll - forget every wallet
func (c *Cache) ClearAll() {
	c.Lock()
	defer c.Unlock()
	c.items.Flush()
}

// Size - number of wallets held
func (c *Cache) Size() int {
	return c.items.ItemCount()
}
