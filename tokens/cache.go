// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/facebookgo/clock"
	gocache "github.com/patrickmn/go-cache"
)

const keySeparator = ":"

type snapshot struct {
	list      []Balance
	updatedAt int64
}

// Cache - balance lists by cache key
type Cache struct {
	log   *logger.L
	clock clock.Clock
	items *gocache.Cache
}

// CacheKey - key for one chain, owner and spender
func CacheKey(chainID uint64, owner common.Address, spender common.Address) string {
	return strings.Join([]string{
		strconv.FormatUint(chainID, 10),
		strings.ToLower(owner.Hex()),
		strings.ToLower(spender.Hex()),
	}, keySeparator)
}

// NewCache - create an empty cache
func NewCache(clk clock.Clock) *Cache {
	if nil == clk {
		clk = clock.New()
	}
	return &Cache{
		log:   logger.New("tokens"),
		clock: clk,
		items: gocache.New(gocache.NoExpiration, 0),
	}
}

// Set - replace the list stored under key and stamp the write time
func (c *Cache) Set(key string, list []Balance) {
	s := &snapshot{
		list:      cloneList(list),
		updatedAt: c.clock.Now().UnixMilli(),
	}
	if nil == s.list {
		s.list = []Balance{}
	}
	c.items.Set(key, s, gocache.NoExpiration)
	c.log.Debugf("set: %q  tokens: %d", key, len(list))
}

// Get - copy of the list, false if nothing is cached
func (c *Cache) Get(key string) ([]Balance, bool) {
	item, ok := c.items.Get(key)
	if !ok {
		return nil, false
	}
	return cloneList(item.(*snapshot).list), true
}

// UpdatedAt - millisecond write time, zero if absent
func (c *Cache) UpdatedAt(key string) int64 {
	item, ok := c.items.Get(key)
	if !ok {
		return 0
	}
	return item.(*snapshot).updatedAt
}

// Clear - remove one key
func (c *Cache) Clear(key string) {
	c.items.Delete(key)
	c.log.Debugf("clear: %q", key)
}

// ClearChain - remove every key for one chain
func (c *Cache) ClearChain(chainID uint64) int {
	prefix := strconv.FormatUint(chainID, 10) + keySeparator
	n := 0
	for key := range c.items.Items() {
		if strings.HasPrefix(key, prefix) {
			c.items.Delete(key)
			n += 1
		}
	}
	c.log.Debugf("clear chain: %d  removed: %d", chainID, n)
	return n
}

// ClearAll - empty the cache
func (c *Cache) ClearAll() {
	c.items.Flush()
	c.log.Debug("clear all")
}

// Size - number of cached keys
func (c *Cache) Size() int {
	return c.items.ItemCount()
}
