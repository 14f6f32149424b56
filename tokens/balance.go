// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Balance - one token's balance and approval for an owner/spender pair
type Balance struct {
	Symbol       string         `json:"symbol"`
	Name         string         `json:"name"`
	Decimals     uint8          `json:"decimals"`
	Address      common.Address `json:"address"`
	Balance      string         `json:"balance"`
	BalanceRaw   *big.Int       `json:"balanceRaw"`
	Allowance    string         `json:"allowance"`
	AllowanceRaw *big.Int       `json:"allowanceRaw"`
	HasAllowance bool           `json:"hasAllowance"`
	Error        string         `json:"error,omitempty"`
}

// Clone - deep copy including the big integers
func (b Balance) Clone() Balance {
	if nil != b.BalanceRaw {
		b.BalanceRaw = new(big.Int).Set(b.BalanceRaw)
	}
	if nil != b.AllowanceRaw {
		b.AllowanceRaw = new(big.Int).Set(b.AllowanceRaw)
	}
	return b
}

// NewBalance - fill the derived fields from raw values
func NewBalance(token ChainToken, balance *big.Int, allowance *big.Int) Balance {
	if nil == balance {
		balance = new(big.Int)
	}
	if nil == allowance {
		allowance = new(big.Int)
	}
	return Balance{
		Symbol:       token.Symbol,
		Name:         token.Name,
		Decimals:     token.Decimals,
		Address:      token.Address,
		Balance:      FormatBalance(FormatUnits(balance, token.Decimals)),
		BalanceRaw:   new(big.Int).Set(balance),
		Allowance:    FormatBalance(FormatUnits(allowance, token.Decimals)),
		AllowanceRaw: new(big.Int).Set(allowance),
		HasAllowance: allowance.Sign() > 0,
	}
}

func cloneList(list []Balance) []Balance {
	if nil == list {
		return nil
	}
	c := make([]Balance, len(list))
	for i, b := range list {
		c[i] = b.Clone()
	}
	return c
}
