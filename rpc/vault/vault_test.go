// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"errors"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/demai-labs/demaid/events"
	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/fixtures"
	"github.com/demai-labs/demaid/rpc/rpctest"
	rpcvault "github.com/demai-labs/demaid/rpc/vault"
	"github.com/demai-labs/demaid/tokens"
	"github.com/demai-labs/demaid/vault"
)

func TestResolveUsesSession(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := rpctest.New(t, ctl)
	defer h.Close()

	v := rpcvault.New(logger.New(fixtures.LogCategory), h.Store)

	var reply rpcvault.LookupReply
	err := v.Resolve(&rpcvault.Arguments{}, &reply)
	assert.Equal(t, fault.NotConnected, err, "wrong disconnected")

	h.Connect(t)
	h.Vaults.EXPECT().GetUserVault(gomock.Any(), tokens.Arbitrum, h.Wallet).Return(rpctest.Vault, nil).Times(1)

	err = v.Resolve(&rpcvault.Arguments{}, &reply)
	assert.Nil(t, err, "wrong Resolve")
	assert.Equal(t, rpctest.Vault, reply.Address, "wrong address")
	assert.Equal(t, vault.Resolved, reply.State, "wrong state")
	assert.True(t, reply.HasVault, "wrong has vault")
	assert.Equal(t, "", reply.Error, "wrong error")

	// within the TTL the cache answers
	err = v.Resolve(&rpcvault.Arguments{ChainID: tokens.Arbitrum, Owner: h.Wallet}, &reply)
	assert.Nil(t, err, "wrong Resolve")
	assert.Equal(t, rpctest.Vault, reply.Address, "wrong cached address")
}

func TestResolveErrorInReply(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := rpctest.New(t, ctl)
	defer h.Close()
	h.Connect(t)

	v := rpcvault.New(logger.New(fixtures.LogCategory), h.Store)

	h.Vaults.EXPECT().GetUserVault(gomock.Any(), tokens.Arbitrum, h.Wallet).Return(common.Address{}, errors.New("node down")).Times(1)

	var reply rpcvault.LookupReply
	err := v.Resolve(&rpcvault.Arguments{}, &reply)
	assert.Nil(t, err, "read failure is not a transport error")
	assert.Equal(t, "node down", reply.Error, "wrong error")
	assert.Equal(t, vault.Error, reply.Status, "wrong status")

	err = v.Lookup(&rpcvault.Arguments{}, &reply)
	assert.Nil(t, err, "wrong Lookup")
	assert.Equal(t, vault.Error, reply.Status, "wrong cached status")
}

func TestDeployedRefetches(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := rpctest.New(t, ctl)
	defer h.Close()
	h.Connect(t)

	v := rpcvault.New(logger.New(fixtures.LogCategory), h.Store)

	gomock.InOrder(
		h.Vaults.EXPECT().GetUserVault(gomock.Any(), tokens.Arbitrum, h.Wallet).Return(common.Address{}, nil),
		h.Vaults.EXPECT().GetUserVault(gomock.Any(), tokens.Arbitrum, h.Wallet).Return(rpctest.Vault, nil),
	)

	var reply rpcvault.LookupReply
	err := v.Resolve(&rpcvault.Arguments{}, &reply)
	assert.Nil(t, err, "wrong Resolve")
	assert.False(t, reply.HasVault, "no vault yet")

	err = v.Deployed(&rpcvault.Arguments{}, &reply)
	assert.Nil(t, err, "wrong Deployed")
	assert.Equal(t, rpctest.Vault, reply.Address, "wrong deployed address")
	assert.True(t, reply.HasVault, "wrong has vault")

	assert.NotEqual(t, int64(0), h.Store.Bus().Read(events.VaultDeployed), "deployment not announced")
}

func TestPredict(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := rpctest.New(t, ctl)
	defer h.Close()
	h.Connect(t)

	v := rpcvault.New(logger.New(fixtures.LogCategory), h.Store)

	predicted := common.HexToAddress("0x2222222222222222222222222222222222222222")
	h.Vaults.EXPECT().PredictVaultAddress(gomock.Any(), tokens.Arbitrum, h.Wallet).Return(predicted, nil).Times(1)

	var reply rpcvault.PredictReply
	err := v.Predict(&rpcvault.Arguments{}, &reply)
	assert.Nil(t, err, "wrong Predict")
	assert.Equal(t, predicted, reply.Address, "wrong predicted")
	assert.Equal(t, tokens.Arbitrum, reply.ChainID, "wrong chain")

	err = v.Predict(&rpcvault.Arguments{ChainID: tokens.Core}, &reply)
	assert.Equal(t, fault.VaultFactoryNotSet, err, "wrong chain without factory")
}
