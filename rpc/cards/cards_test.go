// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cards_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/fixtures"
	"github.com/demai-labs/demaid/rpc/cards"
	"github.com/demai-labs/demaid/surface"
)

func TestSurfaceAndLatest(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	clk := fixtures.NewClock()
	c := cards.New(logger.New(fixtures.LogCategory), surface.New(clk))

	var latest cards.LatestReply
	err := c.Latest(&cards.CardArguments{CardID: "portfolio"}, &latest)
	assert.Nil(t, err, "wrong Latest")
	assert.Nil(t, latest.Request, "never surfaced")

	var r surface.Request
	err = c.Surface(&cards.CardArguments{CardID: "portfolio"}, &r)
	assert.Nil(t, err, "wrong Surface")
	assert.Equal(t, fixtures.Millis(0), r.Timestamp, "wrong timestamp")
	assert.Equal(t, uint64(1), r.Count, "wrong count")

	clk.Add(time.Second)
	err = c.Surface(&cards.CardArguments{CardID: "portfolio"}, &r)
	assert.Nil(t, err, "wrong Surface")

	err = c.Latest(&cards.CardArguments{CardID: "portfolio"}, &latest)
	assert.Nil(t, err, "wrong Latest")
	assert.Equal(t, fixtures.Millis(time.Second), latest.Request.Timestamp, "wrong latest timestamp")
	assert.Equal(t, uint64(2), latest.Request.Count, "wrong latest count")

	err = c.Surface(&cards.CardArguments{CardID: " "}, &r)
	assert.Equal(t, fault.InvalidCardID, err, "wrong blank card")
}

func TestBatchAndOrdered(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	clk := fixtures.NewClock()
	l := surface.New(clk)
	c := cards.New(logger.New(fixtures.LogCategory), l)

	_, _ = l.Surface("vault")
	clk.Add(time.Second)
	_, _ = l.Surface("strategies")

	var batch cards.BatchReply
	err := c.Batch(&cards.BatchArguments{CardIDs: []string{"vault", "chat"}}, &batch)
	assert.Nil(t, err, "wrong Batch")
	assert.Equal(t, 2, len(batch.Requests), "wrong batch size")
	assert.NotNil(t, batch.Requests["vault"], "missing vault")
	assert.Nil(t, batch.Requests["chat"], "chat never surfaced")

	var ordered cards.OrderedReply
	err = c.Ordered(&cards.BatchArguments{}, &ordered)
	assert.Nil(t, err, "wrong Ordered")
	assert.Equal(t, 2, len(ordered.Requests), "wrong ordered size")
	assert.Equal(t, "strategies", ordered.Requests[0].CardID, "wrong most recent")
	assert.Equal(t, "vault", ordered.Requests[1].CardID, "wrong oldest")

	err = c.Batch(&cards.BatchArguments{}, &batch)
	assert.Equal(t, fault.InvalidCount, err, "wrong empty batch")
}
