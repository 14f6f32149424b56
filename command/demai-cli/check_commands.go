// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/demai-labs/demaid/fault"
)

var (
	ErrRequiredCardID    = fault.InvalidError("card id is required")
	ErrRequiredConnect   = fault.InvalidError("connect is required")
	ErrRequiredEventKey  = fault.InvalidError("event key is required")
	ErrRequiredMessage   = fault.InvalidError("message is required")
	ErrRequiredKey       = fault.InvalidError("private key is required")
	ErrRequiredStrategy  = fault.InvalidError("strategy id is required")
	ErrRequiredSubscribe = fault.InvalidError("subscription id is required")
	ErrRequiredTask      = fault.InvalidError("task action and id are required")
	ErrRequiredWallet    = fault.InvalidError("wallet address is required")
	ErrUnknownVaultMode  = fault.InvalidError("vault mode must be resolve, refetch, lookup, deployed or predict")
)

// connect is required
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrRequiredConnect
	}
	return connect, nil
}

// blank selects the session wallet
func checkOptionalAddress(address string) (common.Address, error) {
	address = strings.TrimSpace(address)
	if "" == address {
		return common.Address{}, nil
	}
	if !common.IsHexAddress(address) {
		return common.Address{}, fault.InvalidAddress
	}
	return common.HexToAddress(address), nil
}

// non-blank valid address
func checkAddress(address string, missing error) (common.Address, error) {
	a, err := checkOptionalAddress(address)
	if nil != err {
		return a, err
	}
	if (common.Address{}) == a {
		return a, missing
	}
	return a, nil
}

// hex private key with or without 0x
func checkPrivateKey(key string) (*ecdsa.PrivateKey, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "0x")
	if "" == key {
		return nil, ErrRequiredKey
	}
	return crypto.HexToECDSA(key)
}
