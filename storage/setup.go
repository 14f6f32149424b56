// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/demai-labs/demaid/fault"
)

// Pools - the exported pools
//
// every field must be exported and tagged or Open will fail
type Pools struct {
	Auth    *PoolHandle `prefix:"A"`
	Session *PoolHandle `prefix:"S"`
}

// Database - an open database and its pools
type Database struct {
	sync.RWMutex
	Pools

	log *logger.L
	db  *leveldb.DB
}

var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Open - open (creating if needed) the database at path
func Open(path string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}
	db, err := leveldb.OpenFile(path, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, readOnly)
}

// OpenMemory - a database that lives only in memory
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

func setup(db *leveldb.DB, readOnly bool) (*Database, error) {
	d := &Database{
		log: logger.New("storage"),
		db:  db,
	}

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}
	if version > currentVersion {
		db.Close()
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentVersion)
	}
	if 0 == version && !readOnly {
		if err := putVersion(db, currentVersion); nil != err {
			db.Close()
			return nil, err
		}
	}

	poolsType := reflect.TypeOf(d.Pools)
	poolsValue := reflect.ValueOf(&d.Pools).Elem()

	for i := 0; i < poolsType.NumField(); i += 1 {
		field := poolsType.Field(i)
		prefixTag := field.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			db.Close()
			return nil, fmt.Errorf("pool: %s has invalid prefix: %q", field.Name, prefixTag)
		}
		p := &PoolHandle{
			prefix:   prefixTag[0],
			database: d,
		}
		poolsValue.Field(i).Set(reflect.ValueOf(p))
	}

	d.log.Infof("opened, version: %d", currentVersion)
	return d, nil
}

// Close - close the database, pools return fault.DatabaseIsNotSet afterwards
func (d *Database) Close() error {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return fault.NotInitialised
	}
	err := d.db.Close()
	d.db = nil
	d.log.Info("closed")
	return err
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}
	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}
	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	v := make([]byte, 4)
	binary.BigEndian.PutUint32(v, uint32(version))
	return db.Put(versionKey, v, nil)
}
