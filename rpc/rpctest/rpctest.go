// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpctest - a store over mocked boundaries for the RPC service tests
package rpctest

import (
	"crypto/ecdsa"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/facebookgo/clock"
	"github.com/golang/mock/gomock"

	"github.com/demai-labs/demaid/auth"
	"github.com/demai-labs/demaid/fixtures"
	"github.com/demai-labs/demaid/mocks"
	"github.com/demai-labs/demaid/storage"
	"github.com/demai-labs/demaid/store"
	"github.com/demai-labs/demaid/tokens"
	"github.com/demai-labs/demaid/vault"
)

// addresses used across the service tests
var (
	Factory = common.HexToAddress("0xF000000000000000000000000000000000000001")
	Vault   = common.HexToAddress("0x1111111111111111111111111111111111111111")
)

// Harness - a store and the mocks behind it
type Harness struct {
	Vaults   *mocks.MockVaultReader
	Tokens   *mocks.MockTokenReader
	Holdings *mocks.MockVaultBalanceReader
	Backend  *mocks.MockBackend
	DB       *storage.Database
	Clock    *clock.Mock
	Store    *store.Store
	Key      *ecdsa.PrivateKey
	Wallet   common.Address
}

// New - a fresh store with a vault factory on Arbitrum
func New(t *testing.T, ctl *gomock.Controller) *Harness {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open database: %s", err)
	}

	key, err := crypto.GenerateKey()
	if nil != err {
		t.Fatalf("generate key: %s", err)
	}

	h := &Harness{
		Vaults:   mocks.NewMockVaultReader(ctl),
		Tokens:   mocks.NewMockTokenReader(ctl),
		Holdings: mocks.NewMockVaultBalanceReader(ctl),
		Backend:  mocks.NewMockBackend(ctl),
		DB:       db,
		Clock:    fixtures.NewClock(),
		Key:      key,
		Wallet:   crypto.PubkeyToAddress(key.PublicKey),
	}

	configuration := store.Configuration{
		Deployments: map[uint64]vault.Deployment{
			tokens.Arbitrum: {Factory: Factory},
		},
	}
	readers := store.Readers{
		Vault:    h.Vaults,
		Tokens:   h.Tokens,
		Holdings: h.Holdings,
	}
	h.Store, err = store.New(configuration, readers, h.Backend, db, h.Clock)
	if nil != err {
		t.Fatalf("new store: %s", err)
	}
	return h
}

// Close - stop the store and release the database
func (h *Harness) Close() {
	h.Store.Stop()
	_ = h.DB.Close()
}

// Sign - a valid signature of the welcome message by the harness wallet
func (h *Harness) Sign(t *testing.T) auth.Data {
	sig, err := crypto.Sign(accounts.TextHash([]byte(auth.Message)), h.Key)
	if nil != err {
		t.Fatalf("sign: %s", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return auth.Data{
		Address:   h.Wallet.Hex(),
		Signature: hexutil.Encode(sig),
		Message:   auth.Message,
	}
}

// Connect - connect the harness wallet on Arbitrum
func (h *Harness) Connect(t *testing.T) {
	if err := h.Store.Connect(h.Wallet, tokens.Arbitrum); nil != err {
		t.Fatalf("connect: %s", err)
	}
}

// SignIn - connect and store a valid signature
func (h *Harness) SignIn(t *testing.T) auth.Data {
	h.Connect(t)
	d := h.Sign(t)
	if err := h.Store.Auth().Save(d); nil != err {
		t.Fatalf("save signature: %s", err)
	}
	return d
}
