// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/demai-labs/demaid/demaiapi"
	"github.com/demai-labs/demaid/portfolio"
	"github.com/demai-labs/demaid/rpc/assistant"
	"github.com/demai-labs/demaid/rpc/auth"
	rpcportfolio "github.com/demai-labs/demaid/rpc/portfolio"
	"github.com/demai-labs/demaid/rpc/strategy"
	"github.com/demai-labs/demaid/store"
)

// Connect - set the session wallet and chain
func (client *Client) Connect(wallet common.Address, chainID uint64) (*store.Session, error) {
	var reply store.Session
	if err := client.call("Auth.Connect", auth.ConnectArguments{Wallet: wallet, ChainID: chainID}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Disconnect - forget the session wallet
func (client *Client) Disconnect() (*store.Session, error) {
	var reply store.Session
	if err := client.call("Auth.Disconnect", auth.SessionArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Session - the current session
func (client *Client) Session() (*store.Session, error) {
	var reply store.Session
	if err := client.call("Auth.Session", auth.SessionArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SignIn - sign the daemon's welcome text with key and store the signature
func (client *Client) SignIn(key *ecdsa.PrivateKey) (*store.Session, error) {
	var message auth.MessageReply
	if err := client.call("Auth.Message", auth.MessageArguments{}, &message); nil != err {
		return nil, err
	}

	sig, err := crypto.Sign(accounts.TextHash([]byte(message.Message)), key)
	if nil != err {
		return nil, err
	}
	sig[crypto.RecoveryIDOffset] += 27

	arguments := auth.SaveArguments{
		Address:   crypto.PubkeyToAddress(key.PublicKey).Hex(),
		Signature: hexutil.Encode(sig),
		Message:   message.Message,
	}
	var reply store.Session
	if err := client.call("Auth.Save", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Portfolio - the wallet's portfolio, zero wallet selects the session
func (client *Client) Portfolio(wallet common.Address, force bool) (*portfolio.Entry, error) {
	var reply portfolio.Entry
	if err := client.call("Portfolio.Fetch", rpcportfolio.FetchArguments{Wallet: wallet, Force: force}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Chat - one assistant exchange
func (client *Client) Chat(message string) (*demaiapi.ChatReply, error) {
	var reply demaiapi.ChatReply
	if err := client.call("Assistant.Chat", assistant.ChatArguments{Message: message}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Strategies - the catalogue
func (client *Client) Strategies() ([]demaiapi.Strategy, error) {
	var reply strategy.ListReply
	if err := client.call("Strategy.List", strategy.ListArguments{}, &reply); nil != err {
		return nil, err
	}
	return reply.Strategies, nil
}

// Subscriptions - the session wallet's subscriptions
func (client *Client) Subscriptions() ([]demaiapi.Subscription, error) {
	var reply strategy.SubscriptionsReply
	if err := client.call("Strategy.Subscriptions", strategy.ListArguments{}, &reply); nil != err {
		return nil, err
	}
	return reply.Subscriptions, nil
}

// Subscribe - subscribe the session vault to a strategy
func (client *Client) Subscribe(strategyID string, percentage int, chain string) error {
	arguments := strategy.SubscribeArguments{
		StrategyID: strategyID,
		Percentage: percentage,
		Chain:      chain,
	}
	return client.call("Strategy.Subscribe", arguments, &strategy.ChangeReply{})
}

// Unsubscribe - delete a subscription
func (client *Client) Unsubscribe(id string) error {
	return client.call("Strategy.Delete", strategy.IDArguments{ID: id}, &strategy.ChangeReply{})
}

// Tasks - the session wallet's scheduled tasks
func (client *Client) Tasks() ([]demaiapi.UserTask, error) {
	var reply strategy.TasksReply
	if err := client.call("Strategy.Tasks", strategy.ListArguments{}, &reply); nil != err {
		return nil, err
	}
	return reply.Tasks, nil
}

// Task - pause, resume or delete a task
func (client *Client) Task(action string, taskID string) error {
	return client.call("Strategy.Task", strategy.TaskArguments{Action: action, TaskID: taskID}, &strategy.ChangeReply{})
}
