// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package portfolio_test

import (
	"errors"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/demai-labs/demaid/demaiapi"
	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/fixtures"
	"github.com/demai-labs/demaid/portfolio"
	rpcportfolio "github.com/demai-labs/demaid/rpc/portfolio"
	"github.com/demai-labs/demaid/rpc/rpctest"
)

func TestFetchWithoutSignature(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := rpctest.New(t, ctl)
	defer h.Close()

	p := rpcportfolio.New(logger.New(fixtures.LogCategory), h.Store)

	var reply portfolio.Entry
	err := p.Fetch(&rpcportfolio.FetchArguments{}, &reply)
	assert.Equal(t, fault.NotConnected, err, "wrong disconnected")

	h.Connect(t)
	err = p.Fetch(&rpcportfolio.FetchArguments{}, &reply)
	assert.Nil(t, err, "missing signature is reported in the entry")
	assert.Equal(t, fault.AuthenticationRequired.Error(), reply.Error, "wrong entry error")
}

func TestFetchAndClear(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := rpctest.New(t, ctl)
	defer h.Close()
	d := h.SignIn(t)

	p := rpcportfolio.New(logger.New(fixtures.LogCategory), h.Store)

	credentials := demaiapi.Credentials{
		WalletAddress: h.Wallet.Hex(),
		Signature:     d.Signature,
		Message:       d.Message,
	}
	data := portfolio.Empty()
	data.TotalValueUSD = 1250.5

	gomock.InOrder(
		h.Backend.EXPECT().Portfolio(gomock.Any(), credentials).Return(&data, nil),
		h.Backend.EXPECT().Portfolio(gomock.Any(), credentials).Return(nil, errors.New("Server error! Status: 500")),
	)

	var reply portfolio.Entry
	err := p.Fetch(&rpcportfolio.FetchArguments{}, &reply)
	assert.Nil(t, err, "wrong Fetch")
	assert.Equal(t, 1250.5, reply.Data.TotalValueUSD, "wrong total")
	assert.Equal(t, "", reply.Error, "wrong error")

	// fresh entries are served from the cache
	err = p.Fetch(&rpcportfolio.FetchArguments{Wallet: h.Wallet}, &reply)
	assert.Nil(t, err, "wrong cached Fetch")
	assert.Equal(t, 1250.5, reply.Data.TotalValueUSD, "wrong cached total")

	err = p.Fetch(&rpcportfolio.FetchArguments{Force: true}, &reply)
	assert.Nil(t, err, "wrong forced Fetch")
	assert.Equal(t, "Server error! Status: 500", reply.Error, "wrong forced error")

	var cleared rpcportfolio.ClearReply
	err = p.Clear(&rpcportfolio.ClearArguments{Wallet: h.Wallet}, &cleared)
	assert.Nil(t, err, "wrong Clear")
	assert.Equal(t, 0, cleared.Size, "wrong remaining")
}
