// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package demaiapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/demai-labs/demaid/fault"
)

// Strategy - one entry of the strategy catalogue
type Strategy struct {
	ID                   string   `json:"id"`
	StrategyID           string   `json:"strategy_id,omitempty"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	DetailedDescription  string   `json:"detailedDescription"`
	ChainID              uint64   `json:"chain_id,omitempty"`
	ChainName            string   `json:"chain_name,omitempty"`
	PrimaryToken         string   `json:"primaryToken"`
	SecondaryTokens      []string `json:"secondaryTokens"`
	APY                  float64  `json:"apy"`
	RiskLevel            string   `json:"riskLevel"`
	UpdateFrequency      string   `json:"updateFrequency"`
	Protocol             string   `json:"protocol"`
	ThresholdInfo        string   `json:"thresholdInfo,omitempty"`
	DefaultIntervalHours int      `json:"default_interval_hours,omitempty"`
	RequiredParams       []string `json:"required_params,omitempty"`
}

// fill the defaults the catalogue may omit
func (s *Strategy) normalise() {
	if "" == s.ID {
		s.ID = s.StrategyID
	}
	if "" == s.DetailedDescription {
		s.DetailedDescription = s.Description
	}
	if "" == s.PrimaryToken {
		s.PrimaryToken = "ETH"
	}
	if nil == s.SecondaryTokens {
		s.SecondaryTokens = []string{}
	}
	if "" == s.RiskLevel {
		s.RiskLevel = "medium"
	}
	if "" == s.UpdateFrequency {
		s.UpdateFrequency = "Daily"
	}
	if "" == s.Protocol {
		s.Protocol = "Unknown"
	}
}

// Subscription - a wallet's allocation to a strategy
type Subscription struct {
	ID                  string    `json:"_id"`
	UserAddress         string    `json:"user_address"`
	StrategyID          string    `json:"strategy_id"`
	Chain               string    `json:"chain"`
	Percentage          int       `json:"percentage"`
	Enabled             bool      `json:"enabled"`
	CreatedAt           string    `json:"created_at"`
	UpdatedAt           string    `json:"updated_at"`
	LastExecuted        *string   `json:"last_executed"`
	NextRunTime         *string   `json:"next_run_time"`
	ExecutionCount      int       `json:"execution_count"`
	LastExecutionMemo   *string   `json:"last_execution_memo"`
	LastExecutionStatus *string   `json:"last_execution_status"`
	Strategy            *Strategy `json:"strategy"`
}

// SubscribeRequest - a new subscription
type SubscribeRequest struct {
	WalletAddress string `json:"wallet_address"`
	VaultAddress  string `json:"vault_address"`
	StrategyID    string `json:"strategy_id"`
	Percentage    int    `json:"percentage"`
	Chain         string `json:"chain"`
	Enabled       bool   `json:"enabled"`
}

// SubscriptionUpdate - fields left nil are unchanged
type SubscriptionUpdate struct {
	WalletAddress string `json:"wallet_address"`
	Percentage    *int   `json:"percentage,omitempty"`
	Enabled       *bool  `json:"enabled,omitempty"`
}

// ValidPercentage - allocations are whole percentages from 1 to 100
func ValidPercentage(p int) error {
	if p < 1 || p > 100 {
		return fault.InvalidPercentage
	}
	return nil
}

// Strategies - the strategy catalogue
func (c *Client) Strategies(ctx context.Context) ([]Strategy, error) {
	var reply struct {
		Strategies []Strategy `json:"strategies"`
	}
	if err := c.do(ctx, http.MethodGet, "/strategies/", nil, nil, &reply); nil != err {
		return nil, err
	}
	if nil == reply.Strategies {
		return []Strategy{}, nil
	}
	for i := range reply.Strategies {
		reply.Strategies[i].normalise()
	}
	return reply.Strategies, nil
}

// Subscriptions - the subscriptions of a wallet
func (c *Client) Subscriptions(ctx context.Context, wallet string) ([]Subscription, error) {
	if "" == wallet {
		return nil, fault.InvalidAddress
	}
	var reply struct {
		Subscriptions []Subscription `json:"subscriptions"`
	}
	if err := c.do(ctx, http.MethodGet, "/strategies/subscriptions/"+url.PathEscape(wallet), nil, nil, &reply); nil != err {
		return nil, err
	}
	if nil == reply.Subscriptions {
		return []Subscription{}, nil
	}
	return reply.Subscriptions, nil
}

// Subscribe - allocate a percentage of a vault to a strategy
func (c *Client) Subscribe(ctx context.Context, request SubscribeRequest) error {
	if "" == request.WalletAddress || "" == request.VaultAddress {
		return fault.InvalidAddress
	}
	if "" == request.StrategyID || "" == request.Chain {
		return fault.MissingParameters
	}
	if err := ValidPercentage(request.Percentage); nil != err {
		return err
	}
	return c.do(ctx, http.MethodPost, "/strategies/subscriptions/", nil, request, nil)
}

// UpdateSubscription - change percentage or enabled state
func (c *Client) UpdateSubscription(ctx context.Context, id string, update SubscriptionUpdate) error {
	if "" == id {
		return fault.MissingParameters
	}
	if "" == update.WalletAddress {
		return fault.InvalidAddress
	}
	if nil != update.Percentage {
		if err := ValidPercentage(*update.Percentage); nil != err {
			return err
		}
	}
	return c.do(ctx, http.MethodPut, "/strategies/subscriptions/"+url.PathEscape(id), nil, update, nil)
}

// DeleteSubscription - remove a subscription
func (c *Client) DeleteSubscription(ctx context.Context, wallet string, id string) error {
	if "" == id {
		return fault.MissingParameters
	}
	if "" == wallet {
		return fault.InvalidAddress
	}
	query := url.Values{}
	query.Set("wallet_address", wallet)
	return c.do(ctx, http.MethodDelete, "/strategies/subscriptions/"+url.PathEscape(id), query, nil, nil)
}
