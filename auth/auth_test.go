// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth_test

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/demai-labs/demaid/auth"
	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/fixtures"
	"github.com/demai-labs/demaid/mocks"
	"github.com/demai-labs/demaid/storage"
)

// sign the message the way a browser wallet does
func sign(t *testing.T, message string) auth.Data {
	key, err := crypto.GenerateKey()
	assert.Nil(t, err, "key generation")

	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	assert.Nil(t, err, "signing")
	sig[crypto.RecoveryIDOffset] += 27

	return auth.Data{
		Address:   crypto.PubkeyToAddress(key.PublicKey).Hex(),
		Signature: hexutil.Encode(sig),
		Message:   message,
	}
}

func setup(t *testing.T) (*storage.Database, *auth.Keeper) {
	db, err := storage.OpenMemory()
	assert.Nil(t, err, "wrong open error")
	return db, auth.New(db.Auth)
}

func TestSaveAndValid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, k := setup(t)
	defer db.Close()

	d := sign(t, auth.Message)
	assert.False(t, k.Valid(d.Address), "valid before save")

	err := k.Save(d)
	assert.Nil(t, err, "wrong save error")

	assert.True(t, k.Valid(d.Address), "checksummed address")
	assert.True(t, k.Valid(strings.ToLower(d.Address)), "address match must ignore case")
	assert.False(t, k.Valid("0x0000000000000000000000000000000000000001"), "another wallet")
	assert.False(t, k.Valid(""), "empty wallet")

	assert.Nil(t, k.Clear(), "wrong clear error")
	assert.False(t, k.Valid(d.Address), "valid after clear")
	assert.Nil(t, k.Load(), "record after clear")
}

func TestSaveRejectsMalformed(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, k := setup(t)
	defer db.Close()

	d := sign(t, auth.Message)

	d.Signature = " "
	assert.Equal(t, fault.InvalidSignature, k.Save(d), "wrong error for missing signature")

	d.Signature = "0x1234"
	d.Message = ""
	assert.Equal(t, fault.EmptyAuthMessage, k.Save(d), "wrong error for empty message")

	d.Message = auth.Message
	d.Address = "not-an-address"
	assert.Equal(t, fault.InvalidAddress, k.Save(d), "wrong error for bad address")
	assert.False(t, k.Valid("not-an-address"), "malformed record stored")
}

func TestSaveKeepsContractWalletSignature(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, k := setup(t)
	defer db.Close()

	// an EIP-1271 signature is not an ECDSA recovery, only the
	// backend can check it
	address := "0x4444444444444444444444444444444444444444"
	d := auth.Data{
		Address:   address,
		Signature: "0x" + strings.Repeat("ab", 130),
		Message:   auth.Message,
	}
	assert.NotNil(t, auth.Verify(d), "contract signature recovered locally")

	assert.Nil(t, k.Save(d), "wrong error")
	assert.True(t, k.Valid(address), "contract wallet not authenticated")
	assert.True(t, k.Valid("0x"+strings.ToUpper(address[2:])), "address case matters")

	// a signature by another key is stored the same way, the
	// backend rejects it later
	other := sign(t, auth.Message)
	foreign := sign(t, auth.Message)
	other.Signature = foreign.Signature
	assert.Nil(t, k.Save(other), "wrong error for foreign signature")
	assert.True(t, k.Valid(other.Address), "string checks decide validity")
	assert.False(t, k.Valid(address), "previous record still valid")
}

func TestOtherMessageIsNotValid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, k := setup(t)
	defer db.Close()

	d := sign(t, "some other text")
	assert.Nil(t, k.Save(d), "signature itself is fine")
	assert.False(t, k.Valid(d.Address), "only the welcome message authenticates")
}

func TestUnparseableRecord(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, k := setup(t)
	defer db.Close()

	_ = db.Auth.Put([]byte(auth.Key), []byte("{not json"))
	assert.Nil(t, k.Load(), "unparseable record must read as none")
	assert.False(t, k.Valid("0x0000000000000000000000000000000000000001"), "unparseable record")
}

func TestReadErrorIsNoAuth(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	pool := mocks.NewMockHandle(ctl)
	pool.EXPECT().Get([]byte(auth.Key)).Return(nil, fault.DatabaseIsNotSet).Times(1)

	k := auth.New(pool)
	assert.False(t, k.Valid("0x0000000000000000000000000000000000000001"), "read failure must fail closed")
}
