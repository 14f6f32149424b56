// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package strategy

import (
	"context"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/demai-labs/demaid/demaiapi"
	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/rpc/ratelimit"
	"github.com/demai-labs/demaid/store"
	"github.com/demai-labs/demaid/vault"
)

const (
	rateLimitStrategy = 10
	rateBurstStrategy = 20

	requestTimeout = 30 * time.Second
)

// Strategy - type for RPC calls
type Strategy struct {
	Log     *logger.L
	Limiter *rate.Limiter
	store   *store.Store
}

// New - strategy and task service
func New(log *logger.L, s *store.Store) *Strategy {
	return &Strategy{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitStrategy, rateBurstStrategy),
		store:   s,
	}
}

func (s *Strategy) begin() (context.Context, context.CancelFunc, error) {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	return ctx, cancel, nil
}

// ListArguments - empty arguments
type ListArguments struct{}

// ListReply - the catalogue
type ListReply struct {
	Strategies []demaiapi.Strategy `json:"strategies"`
}

// List - every strategy offered by the backend
func (s *Strategy) List(_ *ListArguments, reply *ListReply) error {
	ctx, cancel, err := s.begin()
	if nil != err {
		return err
	}
	defer cancel()

	reply.Strategies, err = s.store.Strategies(ctx)
	return err
}

// SubscriptionsReply - the wallet's subscriptions
type SubscriptionsReply struct {
	Subscriptions []demaiapi.Subscription `json:"subscriptions"`
}

// Subscriptions - subscriptions of the connected wallet
func (s *Strategy) Subscriptions(_ *ListArguments, reply *SubscriptionsReply) error {
	ctx, cancel, err := s.begin()
	if nil != err {
		return err
	}
	defer cancel()

	reply.Subscriptions, err = s.store.Subscriptions(ctx)
	return err
}

// SubscribeArguments - a zero vault selects the session wallet's vault
type SubscribeArguments struct {
	StrategyID string         `json:"strategyId"`
	Percentage int            `json:"percentage"`
	Chain      string         `json:"chain"`
	Vault      common.Address `json:"vault"`
}

// ChangeReply - empty reply, the change is announced on app.strategy.update
type ChangeReply struct{}

// Subscribe - allocate a percentage of the vault to a strategy
func (s *Strategy) Subscribe(arguments *SubscribeArguments, _ *ChangeReply) error {
	if "" == strings.TrimSpace(arguments.StrategyID) || "" == strings.TrimSpace(arguments.Chain) {
		return fault.MissingParameters
	}
	if err := demaiapi.ValidPercentage(arguments.Percentage); nil != err {
		return err
	}

	ctx, cancel, err := s.begin()
	if nil != err {
		return err
	}
	defer cancel()

	address := arguments.Vault
	if (common.Address{}) == address {
		session := s.store.Session()
		if !session.Connected {
			return fault.NotConnected
		}
		l, err := s.store.Vaults().Resolve(ctx, session.ChainID, session.Wallet)
		if nil != err {
			return err
		}
		if vault.Resolved != l.State {
			return fault.VaultNotDeployed
		}
		address = l.Address
	}

	err = s.store.Subscribe(ctx, arguments.StrategyID, arguments.Percentage, arguments.Chain, address)
	if nil != err {
		return err
	}
	s.Log.Infof("subscribed: %s  percentage: %d", arguments.StrategyID, arguments.Percentage)
	return nil
}

// UpdateArguments - nil fields are left unchanged
type UpdateArguments struct {
	ID         string `json:"id"`
	Percentage *int   `json:"percentage,omitempty"`
	Enabled    *bool  `json:"enabled,omitempty"`
}

// Update - change a subscription's percentage or enabled state
func (s *Strategy) Update(arguments *UpdateArguments, _ *ChangeReply) error {
	if "" == arguments.ID {
		return fault.MissingParameters
	}
	if nil != arguments.Percentage {
		if err := demaiapi.ValidPercentage(*arguments.Percentage); nil != err {
			return err
		}
	}

	ctx, cancel, err := s.begin()
	if nil != err {
		return err
	}
	defer cancel()

	return s.store.UpdateSubscription(ctx, arguments.ID, arguments.Percentage, arguments.Enabled)
}

// IDArguments - a subscription id
type IDArguments struct {
	ID string `json:"id"`
}

// Delete - remove a subscription
func (s *Strategy) Delete(arguments *IDArguments, _ *ChangeReply) error {
	if "" == arguments.ID {
		return fault.MissingParameters
	}

	ctx, cancel, err := s.begin()
	if nil != err {
		return err
	}
	defer cancel()

	return s.store.DeleteSubscription(ctx, arguments.ID)
}

// TasksReply - scheduled tasks of the wallet
type TasksReply struct {
	Tasks []demaiapi.UserTask `json:"tasks"`
}

// Tasks - the connected wallet's tasks, needs a stored signature
func (s *Strategy) Tasks(_ *ListArguments, reply *TasksReply) error {
	ctx, cancel, err := s.begin()
	if nil != err {
		return err
	}
	defer cancel()

	reply.Tasks, err = s.store.Tasks(ctx)
	return err
}

// TaskArguments - pause, resume or delete
type TaskArguments struct {
	Action string `json:"action"`
	TaskID string `json:"taskId"`
}

// Task - act on one task
func (s *Strategy) Task(arguments *TaskArguments, _ *ChangeReply) error {
	action := demaiapi.TaskAction(strings.ToLower(arguments.Action))
	switch action {
	case demaiapi.PauseTask, demaiapi.ResumeTask, demaiapi.DeleteTask:
	default:
		return fault.InvalidTaskAction
	}
	if "" == arguments.TaskID {
		return fault.MissingParameters
	}

	ctx, cancel, err := s.begin()
	if nil != err {
		return err
	}
	defer cancel()

	return s.store.Task(ctx, action, arguments.TaskID)
}
