// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"context"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/demai-labs/demaid/fault"
)

// VaultReader - the vault's own token accounting
type VaultReader interface {
	VaultTokenBalance(ctx context.Context, chainID uint64, vault common.Address, token common.Address) (*big.Int, error)
}

// HoldingsKey - cache key for the token list held by a vault
func HoldingsKey(chainID uint64, vault common.Address) string {
	return strings.Join([]string{
		strconv.FormatUint(chainID, 10),
		strings.ToLower(vault.Hex()),
		"vault",
	}, keySeparator)
}

// Holdings - balance of every registered token inside a vault
//
// tokens with no address on the chain are listed as unavailable;
// allowance fields are always zero
func (l *Loader) Holdings(ctx context.Context, chainID uint64, vault common.Address, reader VaultReader, force bool) ([]Balance, error) {
	if (common.Address{}) == vault {
		return nil, fault.InvalidAddress
	}

	key := HoldingsKey(chainID, vault)
	if !force {
		if list, ok := l.cache.Get(key); ok {
			age := l.clock.Now().UnixMilli() - l.cache.UpdatedAt(key)
			if age <= l.staleTime.Milliseconds() {
				return list, nil
			}
		}
	}

	tokens := l.registry.Tokens()
	list := make([]Balance, len(tokens))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maximumParallelReads)

	for i, token := range tokens {
		address := token.Addresses[chainID]
		if (common.Address{}) == address {
			list[i] = Unavailable(token)
			continue
		}

		i, ct := i, ChainToken{Token: token, Address: address}
		g.Go(func() error {
			balance, err := reader.VaultTokenBalance(gctx, chainID, vault, ct.Address)
			if nil != err {
				balance = nil
			}
			b := NewBalance(ct, balance, nil)
			if nil != err {
				b.Error = "Vault balance error: " + err.Error()
				l.log.Warnf("%s in vault: %s  %s", ct.Symbol, vault.Hex(), b.Error)
			}
			list[i] = b
			return gctx.Err()
		})
	}
	if err := g.Wait(); nil != err {
		return nil, err
	}

	l.cache.Set(key, list)
	l.log.Infof("holdings: %q  tokens: %d", key, len(list))

	return cloneList(list), nil
}
