// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Token - a supported ERC20 and its address on each chain
type Token struct {
	Symbol    string                    `json:"symbol"`
	Name      string                    `json:"name"`
	Decimals  uint8                     `json:"decimals"`
	Addresses map[uint64]common.Address `json:"addresses"`
}

// Chain - a supported network
type Chain struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	NativeCurrency string `json:"nativeCurrency"`
	ExplorerURL    string `json:"explorerUrl"`
}

// ChainToken - a token resolved for one chain
type ChainToken struct {
	Token
	Address common.Address `json:"address"`
}

// Registry - the current token and chain lists
//
// Replace swaps both lists when configuration is reloaded
type Registry struct {
	sync.RWMutex
	tokens []Token
	chains map[uint64]Chain
}

// well known chains
const (
	Arbitrum = uint64(42161)
	Core     = uint64(1116)
	Katana   = uint64(747474)
)

// DefaultChains - built in networks
func DefaultChains() []Chain {
	return []Chain{
		{ID: Arbitrum, Name: "Arbitrum", NativeCurrency: "ETH", ExplorerURL: "https://arbiscan.io"},
		{ID: Core, Name: "Core", NativeCurrency: "CORE", ExplorerURL: "https://scan.coredao.org"},
		{ID: Katana, Name: "Katana", NativeCurrency: "ETH", ExplorerURL: "https://explorer.katanarpc.com"},
	}
}

// DefaultTokens - built in token list, in display order
func DefaultTokens() []Token {
	return []Token{
		{
			Symbol:   "SOLVBTC",
			Name:     "SolvBTC",
			Decimals: 18,
			Addresses: map[uint64]common.Address{
				Core: common.HexToAddress("0xe04d21d999FaEDf1e72AdE6629e20A11a1ed14FA"),
			},
		},
		{
			Symbol:   "BTCB",
			Name:     "Bitcoin",
			Decimals: 18,
			Addresses: map[uint64]common.Address{
				Core: common.HexToAddress("0x7a6888c85edba8e38f6c7e0485212da602761c08"),
			},
		},
		{
			Symbol:   "USDC",
			Name:     "USD Coin",
			Decimals: 6,
			Addresses: map[uint64]common.Address{
				Arbitrum: common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831"),
				Core:     common.HexToAddress("0xa4151B2B3e269645181dCcF2D426cE75fcbDeca9"),
			},
		},
		{
			Symbol:   "USDT",
			Name:     "Tether USD",
			Decimals: 6,
			Addresses: map[uint64]common.Address{
				Arbitrum: common.HexToAddress("0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9"),
				Core:     common.HexToAddress("0x900101d06A7426441Ae63e9AB3B9b0F63Be145F1"),
			},
		},
		{
			Symbol:   "AUSD",
			Name:     "AUSD Stablecoin",
			Decimals: 6,
			Addresses: map[uint64]common.Address{
				Katana: common.HexToAddress("0x00000000eFE302BEAA2b3e6e1b18d08D69a9012a"),
			},
		},
	}
}

// NewRegistry - create a registry, nil lists select the defaults
func NewRegistry(tokens []Token, chains []Chain) *Registry {
	r := &Registry{}
	r.Replace(tokens, chains)
	return r
}

// Replace - install new lists
func (r *Registry) Replace(tokens []Token, chains []Chain) {
	if nil == tokens {
		tokens = DefaultTokens()
	}
	if nil == chains {
		chains = DefaultChains()
	}

	t := make([]Token, len(tokens))
	for i, token := range tokens {
		t[i] = token.clone()
	}
	c := make(map[uint64]Chain, len(chains))
	for _, chain := range chains {
		c[chain.ID] = chain
	}

	r.Lock()
	r.tokens = t
	r.chains = c
	r.Unlock()
}

// ForChain - tokens with a non-zero address on chainID, in registry order
func (r *Registry) ForChain(chainID uint64) []ChainToken {
	r.RLock()
	defer r.RUnlock()

	result := make([]ChainToken, 0, len(r.tokens))
	for _, token := range r.tokens {
		address, ok := token.Addresses[chainID]
		if !ok || (common.Address{}) == address {
			continue
		}
		result = append(result, ChainToken{
			Token:   token.clone(),
			Address: address,
		})
	}
	return result
}

// Tokens - every registered token, in registry order
func (r *Registry) Tokens() []Token {
	r.RLock()
	defer r.RUnlock()

	result := make([]Token, len(r.tokens))
	for i, token := range r.tokens {
		result[i] = token.clone()
	}
	return result
}

// BySymbol - case insensitive symbol lookup
func (r *Registry) BySymbol(symbol string) (Token, bool) {
	r.RLock()
	defer r.RUnlock()

	for _, token := range r.tokens {
		if strings.EqualFold(token.Symbol, symbol) {
			return token.clone(), true
		}
	}
	return Token{}, false
}

// ByAddress - find the token deployed at address on chainID
func (r *Registry) ByAddress(chainID uint64, address common.Address) (Token, bool) {
	if (common.Address{}) == address {
		return Token{}, false
	}

	r.RLock()
	defer r.RUnlock()

	for _, token := range r.tokens {
		if a, ok := token.Addresses[chainID]; ok && a == address {
			return token.clone(), true
		}
	}
	return Token{}, false
}

// Chain - details of a supported chain
func (r *Registry) Chain(chainID uint64) (Chain, bool) {
	r.RLock()
	defer r.RUnlock()
	c, ok := r.chains[chainID]
	return c, ok
}

// Chains - all supported chains ordered by id
func (r *Registry) Chains() []Chain {
	r.RLock()
	defer r.RUnlock()

	result := make([]Chain, 0, len(r.chains))
	for _, c := range r.chains {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

func (t Token) clone() Token {
	a := make(map[uint64]common.Address, len(t.Addresses))
	for k, v := range t.Addresses {
		a[k] = v
	}
	t.Addresses = a
	return t
}
