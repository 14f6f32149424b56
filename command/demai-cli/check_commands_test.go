// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"

	"github.com/demai-labs/demaid/fault"
)

func TestCheckOptionalAddress(t *testing.T) {
	a, err := checkOptionalAddress("  ")
	assert.Nil(t, err, "blank should be accepted")
	assert.Equal(t, common.Address{}, a, "blank should be zero")

	a, err = checkOptionalAddress("0x1111111111111111111111111111111111111111")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), a, "wrong address")

	_, err = checkOptionalAddress("0x1234")
	assert.Equal(t, fault.InvalidAddress, err, "short address accepted")
}

func TestCheckAddress(t *testing.T) {
	_, err := checkAddress("", ErrRequiredWallet)
	assert.Equal(t, ErrRequiredWallet, err, "blank address accepted")
}

func TestCheckPrivateKey(t *testing.T) {
	_, err := checkPrivateKey("")
	assert.Equal(t, ErrRequiredKey, err, "blank key accepted")

	key, err := crypto.GenerateKey()
	assert.Nil(t, err, "generate key")

	hex := common.Bytes2Hex(crypto.FromECDSA(key))
	for _, k := range []string{hex, "0x" + hex} {
		parsed, err := checkPrivateKey(k)
		assert.Nil(t, err, "wrong error")
		assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), crypto.PubkeyToAddress(parsed.PublicKey), "wrong key")
	}

	_, err = checkPrivateKey("zz")
	assert.NotNil(t, err, "bad hex accepted")
}

func TestCheckConnect(t *testing.T) {
	_, err := checkConnect(" ")
	assert.Equal(t, ErrRequiredConnect, err, "blank connect accepted")

	c, err := checkConnect(defaultConnect)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, defaultConnect, c, "wrong connect")
}
