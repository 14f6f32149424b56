// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"context"
	"math/big"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/time/rate"

	"github.com/demai-labs/demaid/fault"
)

const (
	defaultCallRate  = 20
	defaultCallBurst = 40
)

// Chain - one chain's connection
//
// a zero Factory means vaults are not deployed on this chain
type Chain struct {
	ID      uint64
	Caller  ethereum.ContractCaller
	Factory common.Address
}

type chainCaller struct {
	caller  ethereum.ContractCaller
	factory common.Address
	limiter *rate.Limiter
}

// Reader - contract reads across chains
type Reader struct {
	sync.RWMutex
	log    *logger.L
	chains map[uint64]*chainCaller
}

// Dial - connect a chain's JSON-RPC endpoint
func Dial(ctx context.Context, chainID uint64, url string, factory common.Address) (Chain, error) {
	client, err := ethclient.DialContext(ctx, url)
	if nil != err {
		return Chain{}, err
	}
	return Chain{
		ID:      chainID,
		Caller:  client,
		Factory: factory,
	}, nil
}

// New - reader over chains, callRate <= 0 selects the default calls
// per second per chain
func New(chains []Chain, callRate float64, callBurst int) *Reader {
	if callRate <= 0 {
		callRate = defaultCallRate
	}
	if callBurst <= 0 {
		callBurst = defaultCallBurst
	}

	r := &Reader{
		log:    logger.New("contract"),
		chains: make(map[uint64]*chainCaller, len(chains)),
	}
	for _, c := range chains {
		r.chains[c.ID] = &chainCaller{
			caller:  c.Caller,
			factory: c.Factory,
			limiter: rate.NewLimiter(rate.Limit(callRate), callBurst),
		}
		r.log.Infof("chain: %d  factory: %s", c.ID, c.Factory.Hex())
	}
	return r
}

// Factory - the vault factory of a chain, false if none
func (r *Reader) Factory(chainID uint64) (common.Address, bool) {
	r.RLock()
	defer r.RUnlock()
	c, ok := r.chains[chainID]
	if !ok || (common.Address{}) == c.factory {
		return common.Address{}, false
	}
	return c.factory, true
}

// Chains - the number of connected chains
func (r *Reader) Chains() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.chains)
}

func (r *Reader) chain(chainID uint64) (*chainCaller, error) {
	r.RLock()
	defer r.RUnlock()
	c, ok := r.chains[chainID]
	if !ok {
		return nil, fault.ChainNotSupported
	}
	return c, nil
}

func (r *Reader) factory(chainID uint64) (*chainCaller, error) {
	c, err := r.chain(chainID)
	if nil != err {
		if fault.ChainNotSupported == err {
			return nil, fault.VaultFactoryNotSet
		}
		return nil, err
	}
	if (common.Address{}) == c.factory {
		return nil, fault.VaultFactoryNotSet
	}
	return c, nil
}

// call a view function and unpack its single result into out
func (r *Reader) call(ctx context.Context, c *chainCaller, to common.Address, contract abi.ABI, method string, out interface{}, args ...interface{}) error {
	data, err := contract.Pack(method, args...)
	if nil != err {
		return err
	}

	if err := c.limiter.Wait(ctx); nil != err {
		return err
	}

	result, err := c.caller.CallContract(ctx, ethereum.CallMsg{
		To:   &to,
		Data: data,
	}, nil)
	if nil != err {
		r.log.Warnf("%s at: %s  error: %s", method, to.Hex(), err)
		return err
	}
	if 0 == len(result) {
		r.log.Warnf("%s at: %s  empty result", method, to.Hex())
		return fault.ContractCallFailed
	}

	values, err := contract.Unpack(method, result)
	if nil != err || 1 != len(values) {
		r.log.Warnf("%s at: %s  undecodable result: %x", method, to.Hex(), result)
		return fault.ContractCallFailed
	}

	switch o := out.(type) {
	case *common.Address:
		v, ok := values[0].(common.Address)
		if !ok {
			return fault.ContractCallFailed
		}
		*o = v
	case **big.Int:
		v, ok := values[0].(*big.Int)
		if !ok {
			return fault.ContractCallFailed
		}
		*o = v
	case *bool:
		v, ok := values[0].(bool)
		if !ok {
			return fault.ContractCallFailed
		}
		*o = v
	default:
		return fault.InvalidStructPointer
	}
	return nil
}

// GetUserVault - the owner's deployed vault, zero if none
func (r *Reader) GetUserVault(ctx context.Context, chainID uint64, owner common.Address) (common.Address, error) {
	c, err := r.factory(chainID)
	if nil != err {
		return common.Address{}, err
	}
	var vault common.Address
	err = r.call(ctx, c, c.factory, FactoryABI, "getUserVault", &vault, owner)
	return vault, err
}

// PredictVaultAddress - the factory's own prediction
func (r *Reader) PredictVaultAddress(ctx context.Context, chainID uint64, owner common.Address) (common.Address, error) {
	c, err := r.factory(chainID)
	if nil != err {
		return common.Address{}, err
	}
	var vault common.Address
	err = r.call(ctx, c, c.factory, FactoryABI, "predictVaultAddress", &vault, owner)
	return vault, err
}

// HasVault - true if the owner has deployed a vault
func (r *Reader) HasVault(ctx context.Context, chainID uint64, owner common.Address) (bool, error) {
	c, err := r.factory(chainID)
	if nil != err {
		return false, err
	}
	var has bool
	err = r.call(ctx, c, c.factory, FactoryABI, "hasVault", &has, owner)
	return has, err
}

// Beacon - the factory's upgrade beacon
func (r *Reader) Beacon(ctx context.Context, chainID uint64) (common.Address, error) {
	c, err := r.factory(chainID)
	if nil != err {
		return common.Address{}, err
	}
	var beacon common.Address
	err = r.call(ctx, c, c.factory, FactoryABI, "getBeacon", &beacon)
	return beacon, err
}

// BalanceOf - ERC20 balance
func (r *Reader) BalanceOf(ctx context.Context, chainID uint64, token common.Address, account common.Address) (*big.Int, error) {
	c, err := r.chain(chainID)
	if nil != err {
		return nil, err
	}
	var balance *big.Int
	err = r.call(ctx, c, token, ERC20ABI, "balanceOf", &balance, account)
	return balance, err
}

// Allowance - ERC20 approval of spender by owner
func (r *Reader) Allowance(ctx context.Context, chainID uint64, token common.Address, owner common.Address, spender common.Address) (*big.Int, error) {
	c, err := r.chain(chainID)
	if nil != err {
		return nil, err
	}
	var allowance *big.Int
	err = r.call(ctx, c, token, ERC20ABI, "allowance", &allowance, owner, spender)
	return allowance, err
}

// VaultTokenBalance - the vault's accounted balance of token
func (r *Reader) VaultTokenBalance(ctx context.Context, chainID uint64, vault common.Address, token common.Address) (*big.Int, error) {
	c, err := r.chain(chainID)
	if nil != err {
		return nil, err
	}
	var balance *big.Int
	err = r.call(ctx, c, vault, VaultABI, "getTokenBalance", &balance, token)
	return balance, err
}
