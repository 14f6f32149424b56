// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// the view functions used from the vault factory
const factoryABI = `[
  {"type":"function","name":"getUserVault","stateMutability":"view",
   "inputs":[{"name":"user","type":"address"}],
   "outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"predictVaultAddress","stateMutability":"view",
   "inputs":[{"name":"vaultOwner","type":"address"}],
   "outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"hasVault","stateMutability":"view",
   "inputs":[{"name":"user","type":"address"}],
   "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"getBeacon","stateMutability":"view",
   "inputs":[],
   "outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"getImplementation","stateMutability":"view",
   "inputs":[],
   "outputs":[{"name":"","type":"address"}]}
]`

const vaultABI = `[
  {"type":"function","name":"getTokenBalance","stateMutability":"view",
   "inputs":[{"name":"token","type":"address"}],
   "outputs":[{"name":"","type":"uint256"}]}
]`

const erc20ABI = `[
  {"type":"function","name":"balanceOf","stateMutability":"view",
   "inputs":[{"name":"account","type":"address"}],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"allowance","stateMutability":"view",
   "inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],
   "outputs":[{"name":"","type":"uint256"}]}
]`

var (
	// FactoryABI - vault factory
	FactoryABI = mustParse(factoryABI)
	// VaultABI - vault
	VaultABI = mustParse(vaultABI)
	// ERC20ABI - token
	ERC20ABI = mustParse(erc20ABI)
)

func mustParse(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if nil != err {
		panic("contract: invalid ABI: " + err.Error())
	}
	return parsed
}
