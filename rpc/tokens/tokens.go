// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/rpc/ratelimit"
	"github.com/demai-labs/demaid/store"
	"github.com/demai-labs/demaid/tokens"
	"github.com/demai-labs/demaid/vault"
)

const (
	rateLimitTokens = 20
	rateBurstTokens = 40

	requestTimeout = 60 * time.Second
)

// Tokens - type for RPC calls
type Tokens struct {
	Log     *logger.L
	Limiter *rate.Limiter
	store   *store.Store
}

// New - token balance service
func New(log *logger.L, s *store.Store) *Tokens {
	return &Tokens{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTokens, rateBurstTokens),
		store:   s,
	}
}

// BalancesArguments - a zero owner selects the connected session
type BalancesArguments struct {
	ChainID uint64         `json:"chainId"`
	Owner   common.Address `json:"owner"`
	Force   bool           `json:"force"`
}

// BalancesReply - one entry per token registered on the chain
type BalancesReply struct {
	ChainID  uint64           `json:"chainId"`
	Owner    common.Address   `json:"owner"`
	Balances []tokens.Balance `json:"balances"`
}

// Balances - wallet balances and approvals towards its vault
func (t *Tokens) Balances(arguments *BalancesArguments, reply *BalancesReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	session := t.store.Session()
	owner := arguments.Owner
	chainID := arguments.ChainID
	if (common.Address{}) == owner {
		if !session.Connected {
			return fault.NotConnected
		}
		owner = session.Wallet
	}
	if 0 == chainID {
		chainID = session.ChainID
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	list, err := t.store.BalancesFor(ctx, chainID, owner, arguments.Force)
	if nil != err {
		return err
	}

	reply.ChainID = chainID
	reply.Owner = owner
	reply.Balances = list
	return nil
}

// HoldingsArguments - a zero vault selects the session wallet's vault
type HoldingsArguments struct {
	ChainID uint64         `json:"chainId"`
	Vault   common.Address `json:"vault"`
	Force   bool           `json:"force"`
}

// HoldingsReply - token balances held by the vault
type HoldingsReply struct {
	ChainID  uint64           `json:"chainId"`
	Vault    common.Address   `json:"vault"`
	Balances []tokens.Balance `json:"balances"`
}

// Holdings - balances held inside a vault
func (t *Tokens) Holdings(arguments *HoldingsArguments, reply *HoldingsReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	session := t.store.Session()
	chainID := arguments.ChainID
	if 0 == chainID {
		chainID = session.ChainID
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	address := arguments.Vault
	if (common.Address{}) == address {
		if !session.Connected {
			return fault.NotConnected
		}
		l, err := t.store.Vaults().Resolve(ctx, chainID, session.Wallet)
		if nil != err {
			return err
		}
		if vault.Resolved != l.State {
			return fault.VaultNotDeployed
		}
		address = l.Address
	}

	list, err := t.store.Holdings(ctx, chainID, address, arguments.Force)
	if nil != err {
		return err
	}

	reply.ChainID = chainID
	reply.Vault = address
	reply.Balances = list
	return nil
}

// ChainsArguments - empty arguments
type ChainsArguments struct{}

// ChainTokens - a chain and its registered tokens
type ChainTokens struct {
	tokens.Chain
	Tokens []tokens.ChainToken `json:"tokens"`
}

// ChainsReply - the registry
type ChainsReply struct {
	Chains []ChainTokens `json:"chains"`
}

// Chains - supported chains with the tokens registered on each
func (t *Tokens) Chains(_ *ChainsArguments, reply *ChainsReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	registry := t.store.Tokens().Registry()
	chains := registry.Chains()
	reply.Chains = make([]ChainTokens, 0, len(chains))
	for _, c := range chains {
		reply.Chains = append(reply.Chains, ChainTokens{
			Chain:  c,
			Tokens: registry.ForChain(c.ID),
		})
	}
	return nil
}
