// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/demai-labs/demaid/fault"
)

// Handle - the operations on one pool
type Handle interface {
	Get(key []byte) ([]byte, error)
	Put(key []byte, value []byte) error
	Delete(key []byte) error
	Has(key []byte) (bool, error)
	Keys() ([][]byte, error)
}

// PoolHandle - a prefixed view of the database
type PoolHandle struct {
	prefix   byte
	database *Database
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - value for key, nil with no error if absent
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	p.database.RLock()
	defer p.database.RUnlock()

	if nil == p.database.db {
		return nil, fault.DatabaseIsNotSet
	}
	value, err := p.database.db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// Put - store a key/value pair
func (p *PoolHandle) Put(key []byte, value []byte) error {
	p.database.RLock()
	defer p.database.RUnlock()

	if nil == p.database.db {
		return fault.DatabaseIsNotSet
	}
	return p.database.db.Put(p.prefixKey(key), value, nil)
}

// Delete - remove a key, absent keys are not an error
func (p *PoolHandle) Delete(key []byte) error {
	p.database.RLock()
	defer p.database.RUnlock()

	if nil == p.database.db {
		return fault.DatabaseIsNotSet
	}
	return p.database.db.Delete(p.prefixKey(key), nil)
}

// Has - true if the key is present
func (p *PoolHandle) Has(key []byte) (bool, error) {
	p.database.RLock()
	defer p.database.RUnlock()

	if nil == p.database.db {
		return false, fault.DatabaseIsNotSet
	}
	return p.database.db.Has(p.prefixKey(key), nil)
}

// Keys - every key in the pool, prefix removed
func (p *PoolHandle) Keys() ([][]byte, error) {
	p.database.RLock()
	defer p.database.RUnlock()

	if nil == p.database.db {
		return nil, fault.DatabaseIsNotSet
	}

	iter := p.database.db.NewIterator(ldb_util.BytesPrefix([]byte{p.prefix}), nil)
	defer iter.Release()

	keys := make([][]byte, 0, 16)
	for iter.Next() {
		k := iter.Key()
		key := make([]byte, len(k)-1)
		copy(key, k[1:])
		keys = append(keys, key)
	}
	return keys, iter.Error()
}
