// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package demaiapi

import (
	"context"
	"encoding/json"
	"net/http"
)

// Holding - one token position
type Holding struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	ChainID  uint64  `json:"chain_id"`
	Balance  float64 `json:"balance"`
	PriceUSD float64 `json:"price_usd"`
	ValueUSD float64 `json:"value_usd"`
}

// Summary - portfolio totals
type Summary struct {
	ActiveChains     []string `json:"active_chains"`
	ActiveStrategies []string `json:"active_strategies"`
	TotalTokens      int      `json:"total_tokens"`
}

// Portfolio - the backend's view of a wallet
//
// chains and strategies are passed through without interpretation
type Portfolio struct {
	WalletAddress string                     `json:"wallet_address,omitempty"`
	TotalValueUSD float64                    `json:"total_value_usd"`
	Chains        map[string]json.RawMessage `json:"chains"`
	Strategies    map[string]json.RawMessage `json:"strategies"`
	Summary       Summary                    `json:"summary"`
	Holdings      []Holding                  `json:"holdings,omitempty"`
}

type portfolioRequest struct {
	WalletAddress string `json:"wallet_address"`
	Signature     string `json:"signature"`
	AuthMessage   string `json:"auth_message"`
}

// Portfolio - fetch the portfolio of a wallet
func (c *Client) Portfolio(ctx context.Context, credentials Credentials) (*Portfolio, error) {
	request := portfolioRequest{
		WalletAddress: credentials.WalletAddress,
		Signature:     credentials.Signature,
		AuthMessage:   credentials.Message,
	}

	var reply Portfolio
	if err := c.do(ctx, http.MethodPost, "/portfolio/", nil, request, &reply); nil != err {
		return nil, err
	}

	if nil == reply.Chains {
		reply.Chains = map[string]json.RawMessage{}
	}
	if nil == reply.Strategies {
		reply.Strategies = map[string]json.RawMessage{}
	}
	if nil == reply.Summary.ActiveChains {
		reply.Summary.ActiveChains = []string{}
	}
	if nil == reply.Summary.ActiveStrategies {
		reply.Summary.ActiveStrategies = []string{}
	}
	return &reply, nil
}
