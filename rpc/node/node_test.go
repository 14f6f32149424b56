// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/demai-labs/demaid/counter"
	"github.com/demai-labs/demaid/events"
	"github.com/demai-labs/demaid/fixtures"
	"github.com/demai-labs/demaid/rpc/node"
	"github.com/demai-labs/demaid/rpc/rpctest"
	"github.com/demai-labs/demaid/tokens"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := rpctest.New(t, ctl)
	defer h.Close()
	h.Connect(t)

	_, err := h.Store.Bus().Emit(events.PortfolioRefresh)
	assert.Nil(t, err, "wrong emit")

	c := counter.Counter(3)
	n := node.New(logger.New(fixtures.LogCategory), h.Store, time.Now(), "1.2", &c)

	var reply node.InfoReply
	err = n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "1.2", reply.Version, "wrong version")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong rpc count")
	assert.Equal(t, h.Wallet, reply.Session.Wallet, "wrong wallet")
	assert.True(t, reply.Session.Connected, "wrong connected")
	assert.False(t, reply.Session.Authenticated, "wrong authenticated")
	assert.Equal(t, 3, reply.Stats.Events, "wrong event count")
	assert.Equal(t, len(tokens.DefaultChains()), len(reply.Chains), "wrong chains")
}
