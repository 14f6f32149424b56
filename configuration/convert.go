// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/store"
	"github.com/demai-labs/demaid/tokens"
	"github.com/demai-labs/demaid/vault"
)

// check the chain and token lists and the cache lifetimes
func (c *Configuration) validate() error {
	if c.Cache.VaultTTL < 0 || c.Cache.TokenStaleTime < 0 || c.Cache.PortfolioTTL < 0 || c.Backend.Timeout < 0 {
		return fmt.Errorf("cache: negative duration: %w", fault.MissingParameters)
	}

	seen := make(map[uint64]struct{}, len(c.Chains))
	for _, chain := range c.Chains {
		if 0 == chain.ID {
			return fmt.Errorf("chain: %q: %w", chain.Name, fault.ChainNotSupported)
		}
		if _, ok := seen[chain.ID]; ok {
			return fmt.Errorf("chain: %d is duplicated: %w", chain.ID, fault.ChainNotSupported)
		}
		seen[chain.ID] = struct{}{}

		for _, a := range []string{chain.Factory, chain.Beacon} {
			if "" != a && !common.IsHexAddress(a) {
				return fmt.Errorf("chain: %d: %q: %w", chain.ID, a, fault.InvalidAddress)
			}
		}
		if _, err := vault.ParseCreationCode(chain.CreationCode); nil != err {
			return fmt.Errorf("chain: %d creation code: %w", chain.ID, err)
		}
	}

	_, err := c.TokenList()
	return err
}

// ChainList - the configured chains, nil selects the built in list
func (c *Configuration) ChainList() []tokens.Chain {
	if 0 == len(c.Chains) {
		return nil
	}
	chains := make([]tokens.Chain, 0, len(c.Chains))
	for _, chain := range c.Chains {
		chains = append(chains, tokens.Chain{
			ID:             chain.ID,
			Name:           chain.Name,
			NativeCurrency: chain.NativeCurrency,
			ExplorerURL:    chain.ExplorerURL,
		})
	}
	return chains
}

// TokenList - the configured tokens, nil selects the built in list
func (c *Configuration) TokenList() ([]tokens.Token, error) {
	if 0 == len(c.Tokens) {
		return nil, nil
	}
	list := make([]tokens.Token, 0, len(c.Tokens))
	for _, token := range c.Tokens {
		if "" == token.Symbol {
			return nil, fmt.Errorf("token: %q: %w", token.Name, fault.MissingParameters)
		}
		addresses := make(map[uint64]common.Address, len(token.Addresses))
		for id, a := range token.Addresses {
			chainID, err := strconv.ParseUint(id, 10, 64)
			if nil != err || 0 == chainID {
				return nil, fmt.Errorf("token: %s chain: %q: %w", token.Symbol, id, fault.ChainNotSupported)
			}
			if !common.IsHexAddress(a) {
				return nil, fmt.Errorf("token: %s address: %q: %w", token.Symbol, a, fault.InvalidAddress)
			}
			addresses[chainID] = common.HexToAddress(a)
		}
		list = append(list, tokens.Token{
			Symbol:    token.Symbol,
			Name:      token.Name,
			Decimals:  token.Decimals,
			Addresses: addresses,
		})
	}
	return list, nil
}

// Deployments - vault factory parameters of every chain with a factory
func (c *Configuration) Deployments() map[uint64]vault.Deployment {
	deployments := make(map[uint64]vault.Deployment)
	for _, chain := range c.Chains {
		if "" == chain.Factory {
			continue
		}
		code, _ := vault.ParseCreationCode(chain.CreationCode) // checked by validate
		d := vault.Deployment{
			Factory:      common.HexToAddress(chain.Factory),
			CreationCode: code,
		}
		if "" != chain.Beacon {
			d.Beacon = common.HexToAddress(chain.Beacon)
		}
		deployments[chain.ID] = d
	}
	return deployments
}

// Store - the cache configuration for store.New
func (c *Configuration) Store() (store.Configuration, error) {
	list, err := c.TokenList()
	if nil != err {
		return store.Configuration{}, err
	}
	return store.Configuration{
		VaultTTL:       seconds(c.Cache.VaultTTL),
		TokenStaleTime: seconds(c.Cache.TokenStaleTime),
		PortfolioTTL:   seconds(c.Cache.PortfolioTTL),
		Deployments:    c.Deployments(),
		Tokens:         list,
		Chains:         c.ChainList(),
	}, nil
}

// BackendTimeout - the demAI request timeout
func (c *Configuration) BackendTimeout() time.Duration {
	return seconds(c.Backend.Timeout)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
