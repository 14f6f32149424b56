// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/facebookgo/clock"
)

// DefaultTTL - age after which a successful result may be queried again
const DefaultTTL = 5 * time.Minute

// Key - cache index
//
// common.Address is a byte array so mixed case hex input compares equal
type Key struct {
	ChainID uint64
	Owner   common.Address
}

// Entry - copy of a cache item
type Entry struct {
	Address   common.Address `json:"address"`
	State     State          `json:"state"`
	Status    Status         `json:"status"`
	LastQuery int64          `json:"lastQuery"`
}

// Cache - vault addresses by chain and owner
type Cache struct {
	sync.RWMutex

	log     *logger.L
	clock   clock.Clock
	ttl     int64 // milliseconds
	entries map[Key]*Entry
}

// NewCache - create an empty cache, ttl of zero selects DefaultTTL
func NewCache(clk clock.Clock, ttl time.Duration) *Cache {
	if nil == clk {
		clk = clock.New()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		log:     logger.New("vault"),
		clock:   clk,
		ttl:     ttl.Milliseconds(),
		entries: make(map[Key]*Entry),
	}
}

// TTL - the configured re-query interval
func (c *Cache) TTL() time.Duration {
	return time.Duration(c.ttl) * time.Millisecond
}

// ShouldQuery - true if a contract read for this key is worthwhile
func (c *Cache) ShouldQuery(chainID uint64, owner common.Address) bool {
	c.RLock()
	defer c.RUnlock()
	return c.shouldQuery(Key{ChainID: chainID, Owner: owner})
}

// caller must hold the lock
func (c *Cache) shouldQuery(key Key) bool {
	e, ok := c.entries[key]
	if !ok {
		return true
	}
	if Loading == e.Status {
		return false
	}
	if 0 == e.LastQuery {
		return true
	}
	return c.clock.Now().UnixMilli()-e.LastQuery > c.ttl
}

// Claim - ShouldQuery and, if true, mark the key loading
//
// both happen under one lock so only one caller can win
func (c *Cache) Claim(chainID uint64, owner common.Address) bool {
	key := Key{ChainID: chainID, Owner: owner}

	c.Lock()
	defer c.Unlock()

	if !c.shouldQuery(key) {
		return false
	}
	c.entry(key).Status = Loading
	return true
}

// SetStatus - change only the status, creating the entry if needed
func (c *Cache) SetStatus(chainID uint64, owner common.Address, status Status) {
	key := Key{ChainID: chainID, Owner: owner}

	c.Lock()
	c.entry(key).Status = status
	c.Unlock()

	c.log.Debugf("status: %d/%s → %s", chainID, owner.Hex(), status)
}

// SetResult - store a query result, nil or the zero address means no vault
//
// stamps the query time and marks the entry successful
func (c *Cache) SetResult(chainID uint64, owner common.Address, address *common.Address) {
	key := Key{ChainID: chainID, Owner: owner}

	c.Lock()
	e := c.entry(key)
	if nil == address || (common.Address{}) == *address {
		e.Address = common.Address{}
		e.State = NoVault
	} else {
		e.Address = *address
		e.State = Resolved
	}
	e.Status = Success
	e.LastQuery = c.clock.Now().UnixMilli()
	state := e.State
	c.Unlock()

	c.log.Debugf("result: %d/%s → %s", chainID, owner.Hex(), state)
}

// Get - the cached address and what it means
func (c *Cache) Get(chainID uint64, owner common.Address) (common.Address, State) {
	c.RLock()
	defer c.RUnlock()

	e, ok := c.entries[Key{ChainID: chainID, Owner: owner}]
	if !ok {
		return common.Address{}, Unresolved
	}
	return e.Address, e.State
}

// Status - current status, Idle if never seen
func (c *Cache) Status(chainID uint64, owner common.Address) Status {
	c.RLock()
	defer c.RUnlock()

	e, ok := c.entries[Key{ChainID: chainID, Owner: owner}]
	if !ok {
		return Idle
	}
	return e.Status
}

// Entry - copy of the full entry, false if absent
func (c *Cache) Entry(chainID uint64, owner common.Address) (Entry, bool) {
	c.RLock()
	defer c.RUnlock()

	e, ok := c.entries[Key{ChainID: chainID, Owner: owner}]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Clear - remove a single entry
func (c *Cache) Clear(chainID uint64, owner common.Address) {
	c.Lock()
	delete(c.entries, Key{ChainID: chainID, Owner: owner})
	c.Unlock()

	c.log.Debugf("clear: %d/%s", chainID, owner.Hex())
}

// ClearChain - remove every entry for one chain
func (c *Cache) ClearChain(chainID uint64) int {
	c.Lock()
	n := 0
	for key := range c.entries {
		if key.ChainID == chainID {
			delete(c.entries, key)
			n += 1
		}
	}
	c.Unlock()

	c.log.Debugf("clear chain: %d  removed: %d", chainID, n)
	return n
}

// ClearAll - empty the cache
func (c *Cache) ClearAll() {
	c.Lock()
	c.entries = make(map[Key]*Entry)
	c.Unlock()

	c.log.Debug("clear all")
}

// Size - number of entries
func (c *Cache) Size() int {
	c.RLock()
	defer c.RUnlock()
	return len(c.entries)
}

// caller must hold the write lock
func (c *Cache) entry(key Key) *Entry {
	e, ok := c.entries[key]
	if !ok {
		e = &Entry{}
		c.entries[key] = e
	}
	return e
}
