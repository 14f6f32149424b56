// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/demai-labs/demaid/contract"
	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/fixtures"
	"github.com/demai-labs/demaid/mocks"
)

const chainID = 42161

var (
	factory = common.HexToAddress("0xF000000000000000000000000000000000000001")
	owner   = common.HexToAddress("0x52908400098527886E0F7030069857D2E4169EE7")
	spender = common.HexToAddress("0x5C97F0a08a1c8a3Ed6C1E1dB2f7Ce08a4BFE53C7")
	token   = common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831")
	vault   = common.HexToAddress("0x1111111111111111111111111111111111111111")
)

type callMatcher struct {
	to   common.Address
	data []byte
}

func (m callMatcher) Matches(x interface{}) bool {
	msg, ok := x.(ethereum.CallMsg)
	return ok && nil != msg.To && m.to == *msg.To && bytes.Equal(m.data, msg.Data)
}

func (m callMatcher) String() string {
	return fmt.Sprintf("call to: %s  data: %x", m.to.Hex(), m.data)
}

// matches a call to method on address to with the packed args
func callTo(t *testing.T, to common.Address, contractABI abi.ABI, method string, args ...interface{}) gomock.Matcher {
	data, err := contractABI.Pack(method, args...)
	assert.Nil(t, err, "pack")
	return callMatcher{to: to, data: data}
}

func result(t *testing.T, contractABI abi.ABI, method string, values ...interface{}) []byte {
	out, err := contractABI.Methods[method].Outputs.Pack(values...)
	assert.Nil(t, err, "pack result")
	return out
}

func TestFactoryCalls(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	caller := mocks.NewMockContractCaller(ctl)
	caller.EXPECT().
		CallContract(gomock.Any(), callTo(t, factory, contract.FactoryABI, "getUserVault", owner), gomock.Nil()).
		Return(result(t, contract.FactoryABI, "getUserVault", vault), nil).
		Times(1)
	caller.EXPECT().
		CallContract(gomock.Any(), callTo(t, factory, contract.FactoryABI, "predictVaultAddress", owner), gomock.Nil()).
		Return(result(t, contract.FactoryABI, "predictVaultAddress", vault), nil).
		Times(1)
	caller.EXPECT().
		CallContract(gomock.Any(), callTo(t, factory, contract.FactoryABI, "hasVault", owner), gomock.Nil()).
		Return(result(t, contract.FactoryABI, "hasVault", true), nil).
		Times(1)
	caller.EXPECT().
		CallContract(gomock.Any(), callTo(t, factory, contract.FactoryABI, "getBeacon"), gomock.Nil()).
		Return(result(t, contract.FactoryABI, "getBeacon", spender), nil).
		Times(1)

	r := contract.New([]contract.Chain{{ID: chainID, Caller: caller, Factory: factory}}, 0, 0)
	ctx := context.Background()

	v, err := r.GetUserVault(ctx, chainID, owner)
	assert.Nil(t, err, "getUserVault")
	assert.Equal(t, vault, v, "wrong vault")

	v, err = r.PredictVaultAddress(ctx, chainID, owner)
	assert.Nil(t, err, "predictVaultAddress")
	assert.Equal(t, vault, v, "wrong prediction")

	has, err := r.HasVault(ctx, chainID, owner)
	assert.Nil(t, err, "hasVault")
	assert.True(t, has, "wrong hasVault")

	b, err := r.Beacon(ctx, chainID)
	assert.Nil(t, err, "getBeacon")
	assert.Equal(t, spender, b, "wrong beacon")

	f, ok := r.Factory(chainID)
	assert.True(t, ok, "factory present")
	assert.Equal(t, factory, f, "wrong factory")
}

func TestTokenCalls(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	caller := mocks.NewMockContractCaller(ctl)
	caller.EXPECT().
		CallContract(gomock.Any(), callTo(t, token, contract.ERC20ABI, "balanceOf", owner), gomock.Nil()).
		Return(result(t, contract.ERC20ABI, "balanceOf", big.NewInt(12500000)), nil).
		Times(1)
	caller.EXPECT().
		CallContract(gomock.Any(), callTo(t, token, contract.ERC20ABI, "allowance", owner, spender), gomock.Nil()).
		Return(nil, errors.New("execution reverted")).
		Times(1)
	caller.EXPECT().
		CallContract(gomock.Any(), callTo(t, vault, contract.VaultABI, "getTokenBalance", token), gomock.Nil()).
		Return([]byte{}, nil).
		Times(1)

	// tokens are readable on a chain with no factory
	r := contract.New([]contract.Chain{{ID: chainID, Caller: caller}}, 0, 0)
	ctx := context.Background()

	balance, err := r.BalanceOf(ctx, chainID, token, owner)
	assert.Nil(t, err, "balanceOf")
	assert.Equal(t, big.NewInt(12500000), balance, "wrong balance")

	_, err = r.Allowance(ctx, chainID, token, owner, spender)
	assert.Equal(t, "execution reverted", err.Error(), "call error is passed through")

	_, err = r.VaultTokenBalance(ctx, chainID, vault, token)
	assert.Equal(t, fault.ContractCallFailed, err, "empty result")

	_, err = r.GetUserVault(ctx, chainID, owner)
	assert.Equal(t, fault.VaultFactoryNotSet, err, "no factory configured")
}

func TestUnknownChain(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	r := contract.New(nil, 0, 0)
	ctx := context.Background()

	_, err := r.BalanceOf(ctx, 1, token, owner)
	assert.Equal(t, fault.ChainNotSupported, err, "wrong token error")

	_, err = r.GetUserVault(ctx, 1, owner)
	assert.Equal(t, fault.VaultFactoryNotSet, err, "vault reads on an unknown chain stay idle")

	_, ok := r.Factory(1)
	assert.False(t, ok, "no factory")
	assert.Equal(t, 0, r.Chains(), "no chains")
}
