// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/demai-labs/demaid/demaiapi"
	"github.com/demai-labs/demaid/events"
	"github.com/demai-labs/demaid/fault"
)

// Strategies - the strategy catalogue
func (s *Store) Strategies(ctx context.Context) ([]demaiapi.Strategy, error) {
	return s.backend.Strategies(ctx)
}

func (s *Store) connected() (common.Address, error) {
	wallet, _ := s.current()
	if (common.Address{}) == wallet {
		return common.Address{}, fault.NotConnected
	}
	return wallet, nil
}

// strategy changes are announced so clients refetch their task lists
func (s *Store) changed(err error) error {
	if nil != err {
		return err
	}
	_, err = s.bus.Emit(events.StrategyUpdate)
	return err
}

// Subscriptions - the connected wallet's subscriptions
func (s *Store) Subscriptions(ctx context.Context) ([]demaiapi.Subscription, error) {
	wallet, err := s.connected()
	if nil != err {
		return nil, err
	}
	return s.backend.Subscriptions(ctx, wallet.Hex())
}

// Subscribe - allocate a percentage of the vault to a strategy
func (s *Store) Subscribe(ctx context.Context, strategyID string, percentage int, chain string, vaultAddress common.Address) error {
	wallet, err := s.connected()
	if nil != err {
		return err
	}
	if (common.Address{}) == vaultAddress {
		return fault.InvalidAddress
	}
	return s.changed(s.backend.Subscribe(ctx, demaiapi.SubscribeRequest{
		WalletAddress: wallet.Hex(),
		VaultAddress:  vaultAddress.Hex(),
		StrategyID:    strategyID,
		Percentage:    percentage,
		Chain:         chain,
		Enabled:       true,
	}))
}

// UpdateSubscription - change percentage and/or enabled state
func (s *Store) UpdateSubscription(ctx context.Context, id string, percentage *int, enabled *bool) error {
	wallet, err := s.connected()
	if nil != err {
		return err
	}
	if nil == percentage && nil == enabled {
		return fault.MissingParameters
	}
	return s.changed(s.backend.UpdateSubscription(ctx, id, demaiapi.SubscriptionUpdate{
		WalletAddress: wallet.Hex(),
		Percentage:    percentage,
		Enabled:       enabled,
	}))
}

// DeleteSubscription - remove a subscription
func (s *Store) DeleteSubscription(ctx context.Context, id string) error {
	wallet, err := s.connected()
	if nil != err {
		return err
	}
	return s.changed(s.backend.DeleteSubscription(ctx, wallet.Hex(), id))
}

// Tasks - the connected wallet's scheduled tasks, a signature is
// required
func (s *Store) Tasks(ctx context.Context) ([]demaiapi.UserTask, error) {
	if _, err := s.connected(); nil != err {
		return nil, err
	}
	return s.backend.Tasks(ctx, s.Credentials())
}

// Task - pause, resume or delete one of the wallet's tasks
func (s *Store) Task(ctx context.Context, action demaiapi.TaskAction, taskID string) error {
	if _, err := s.connected(); nil != err {
		return err
	}
	return s.changed(s.backend.Task(ctx, action, taskID, s.Credentials()))
}
