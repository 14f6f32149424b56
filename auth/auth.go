// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/storage"
)

// Message - the text every wallet signs
const Message = `Welcome to demAI!

This signature will be used to authenticate your interactions with the demAI platform.

This signature will not trigger any blockchain transactions or grant any token approvals.`

// Key - storage key of the record
const Key = "demai_auth_data"

// Data - the stored signature record
type Data struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
	Message   string `json:"message"`
}

// Keeper - reads and writes the record in one storage pool
type Keeper struct {
	sync.Mutex
	log  *logger.L
	pool storage.Handle
}

// New - keeper over a storage pool
func New(pool storage.Handle) *Keeper {
	return &Keeper{
		log:  logger.New("auth"),
		pool: pool,
	}
}

// Load - the stored record, nil if absent or unparseable
func (k *Keeper) Load() *Data {
	k.Lock()
	defer k.Unlock()
	return k.load()
}

func (k *Keeper) load() *Data {
	buffer, err := k.pool.Get([]byte(Key))
	if nil != err {
		k.log.Errorf("read: error: %s", err)
		return nil
	}
	if nil == buffer {
		return nil
	}

	var d Data
	if err := json.Unmarshal(buffer, &d); nil != err {
		k.log.Warnf("unparseable record: %s", err)
		return nil
	}
	return &d
}

// Valid - true if the stored record authenticates address
func (k *Keeper) Valid(address string) bool {
	return nil != k.For(address)
}

// For - the stored record if it authenticates address, else nil
func (k *Keeper) For(address string) *Data {
	if "" == address {
		return nil
	}
	d := k.Load()
	if nil == d {
		return nil
	}
	if "" == d.Signature || Message != d.Message {
		return nil
	}
	if !strings.EqualFold(d.Address, address) {
		return nil
	}
	return d
}

// Save - store a signature, replacing any previous one
//
// the backend validates the signature, contract wallets sign with
// EIP-1271 so a local recovery failure is only logged
func (k *Keeper) Save(d Data) error {
	if "" == d.Message {
		return fault.EmptyAuthMessage
	}
	if !common.IsHexAddress(d.Address) {
		return fault.InvalidAddress
	}
	if "" == strings.TrimSpace(d.Signature) {
		return fault.InvalidSignature
	}
	if err := Verify(d); nil != err {
		k.log.Debugf("signature for: %s  not recoverable locally: %s", d.Address, err)
	}

	buffer, err := json.Marshal(d)
	if nil != err {
		return err
	}

	k.Lock()
	defer k.Unlock()

	if err := k.pool.Put([]byte(Key), buffer); nil != err {
		return err
	}
	k.log.Infof("saved signature for: %s", d.Address)
	return nil
}

// Clear - forget the stored record
func (k *Keeper) Clear() error {
	k.Lock()
	defer k.Unlock()

	k.log.Info("cleared")
	return k.pool.Delete([]byte(Key))
}

// Verify - check that the signature is the address's personal_sign of
// the message
func Verify(d Data) error {
	sig, err := hexutil.Decode(d.Signature)
	if nil != err || crypto.SignatureLength != len(sig) {
		return fault.InvalidSignature
	}

	// wallets produce v as 27/28
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(d.Message)), sig)
	if nil != err {
		return fault.InvalidSignature
	}
	if crypto.PubkeyToAddress(*pub) != common.HexToAddress(d.Address) {
		return fault.InvalidSignature
	}
	return nil
}
