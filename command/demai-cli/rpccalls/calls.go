// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/demai-labs/demaid/rpc/cards"
	"github.com/demai-labs/demaid/rpc/events"
	"github.com/demai-labs/demaid/rpc/node"
	"github.com/demai-labs/demaid/rpc/tokens"
	"github.com/demai-labs/demaid/rpc/vault"
	"github.com/demai-labs/demaid/surface"
)

// vault methods accepted by Vault
const (
	VaultResolve  = "Vault.Resolve"
	VaultRefetch  = "Vault.Refetch"
	VaultLookup   = "Vault.Lookup"
	VaultDeployed = "Vault.Deployed"
)

// Info - daemon status
func (client *Client) Info() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Node.Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Emit - stamp a key and its ancestors
func (client *Client) Emit(key string) (*events.KeyReply, error) {
	var reply events.KeyReply
	if err := client.call("Events.Emit", events.KeyArguments{Key: key}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Read - last stamp of each key, zero if never emitted
func (client *Client) Read(keys []string) (map[string]int64, error) {
	var reply events.ReadManyReply
	if err := client.call("Events.ReadMany", events.ReadManyArguments{Keys: keys}, &reply); nil != err {
		return nil, err
	}
	return reply.Timestamps, nil
}

// Surface - ask the client to show a card
func (client *Client) Surface(cardID string) (*surface.Request, error) {
	var reply surface.Request
	if err := client.call("Cards.Surface", cards.CardArguments{CardID: cardID}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Ordered - surfaced cards most recent first
func (client *Client) Ordered(cardIDs []string) ([]surface.Request, error) {
	var reply cards.OrderedReply
	if err := client.call("Cards.Ordered", cards.BatchArguments{CardIDs: cardIDs}, &reply); nil != err {
		return nil, err
	}
	return reply.Requests, nil
}

// Vault - one of the Vault lookups, zero values select the session
func (client *Client) Vault(method string, chainID uint64, owner common.Address) (*vault.LookupReply, error) {
	var reply vault.LookupReply
	if err := client.call(method, vault.Arguments{ChainID: chainID, Owner: owner}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Predict - the address the factory would deploy
func (client *Client) Predict(chainID uint64, owner common.Address) (*vault.PredictReply, error) {
	var reply vault.PredictReply
	if err := client.call("Vault.Predict", vault.Arguments{ChainID: chainID, Owner: owner}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Balances - wallet balances and approvals
func (client *Client) Balances(chainID uint64, owner common.Address, force bool) (*tokens.BalancesReply, error) {
	var reply tokens.BalancesReply
	arguments := tokens.BalancesArguments{
		ChainID: chainID,
		Owner:   owner,
		Force:   force,
	}
	if err := client.call("Tokens.Balances", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Holdings - balances held inside a vault
func (client *Client) Holdings(chainID uint64, vaultAddress common.Address, force bool) (*tokens.HoldingsReply, error) {
	var reply tokens.HoldingsReply
	arguments := tokens.HoldingsArguments{
		ChainID: chainID,
		Vault:   vaultAddress,
		Force:   force,
	}
	if err := client.call("Tokens.Holdings", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Chains - the token registry
func (client *Client) Chains() ([]tokens.ChainTokens, error) {
	var reply tokens.ChainsReply
	if err := client.call("Tokens.Chains", tokens.ChainsArguments{}, &reply); nil != err {
		return nil, err
	}
	return reply.Chains, nil
}
