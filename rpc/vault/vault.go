// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/rpc/ratelimit"
	"github.com/demai-labs/demaid/store"
	"github.com/demai-labs/demaid/vault"
)

const (
	rateLimitVault = 20
	rateBurstVault = 40

	requestTimeout = 30 * time.Second
)

// Vault - type for RPC calls
type Vault struct {
	Log     *logger.L
	Limiter *rate.Limiter
	store   *store.Store
}

// New - vault resolution service
func New(log *logger.L, s *store.Store) *Vault {
	return &Vault{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitVault, rateBurstVault),
		store:   s,
	}
}

// Arguments - a zero chain or owner selects the connected session's
type Arguments struct {
	ChainID uint64         `json:"chainId"`
	Owner   common.Address `json:"owner"`
}

// LookupReply - the cached view; a failed read is reported in Error
type LookupReply struct {
	vault.Lookup
	Error string `json:"error,omitempty"`
}

// PredictReply - the address the factory would deploy
type PredictReply struct {
	ChainID uint64         `json:"chainId"`
	Owner   common.Address `json:"owner"`
	Address common.Address `json:"address"`
}

func (v *Vault) target(arguments *Arguments) (uint64, common.Address, error) {
	session := v.store.Session()
	chainID := arguments.ChainID
	if 0 == chainID {
		chainID = session.ChainID
	}
	owner := arguments.Owner
	if (common.Address{}) == owner {
		if !session.Connected {
			return 0, common.Address{}, fault.NotConnected
		}
		owner = session.Wallet
	}
	if 0 == chainID {
		return 0, common.Address{}, fault.ChainNotSupported
	}
	return chainID, owner, nil
}

func (v *Vault) lookup(arguments *Arguments, reply *LookupReply, read func(context.Context, uint64, common.Address) (vault.Lookup, error)) error {
	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	chainID, owner, err := v.target(arguments)
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	l, err := read(ctx, chainID, owner)
	reply.Lookup = l
	if nil != err {
		reply.Error = err.Error()
	}
	return nil
}

// Resolve - the owner's vault, reading the factory when the cache admits it
func (v *Vault) Resolve(arguments *Arguments, reply *LookupReply) error {
	return v.lookup(arguments, reply, v.store.Vaults().Resolve)
}

// Refetch - read the factory again regardless of the cache
func (v *Vault) Refetch(arguments *Arguments, reply *LookupReply) error {
	return v.lookup(arguments, reply, v.store.Vaults().Refetch)
}

// Lookup - the cached view without any read
func (v *Vault) Lookup(arguments *Arguments, reply *LookupReply) error {
	return v.lookup(arguments, reply, func(_ context.Context, chainID uint64, owner common.Address) (vault.Lookup, error) {
		return v.store.Vaults().Lookup(chainID, owner), nil
	})
}

// Predict - deterministic vault address before deployment
func (v *Vault) Predict(arguments *Arguments, reply *PredictReply) error {
	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	chainID, owner, err := v.target(arguments)
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	address, err := v.store.Predictor().Predict(ctx, chainID, owner)
	if nil != err {
		return err
	}

	reply.ChainID = chainID
	reply.Owner = owner
	reply.Address = address
	return nil
}

// Deployed - announce a freshly deployed vault and read it back
func (v *Vault) Deployed(arguments *Arguments, reply *LookupReply) error {
	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	chainID, owner, err := v.target(arguments)
	if nil != err {
		return err
	}

	if err := v.store.VaultDeployed(chainID, owner); nil != err {
		return err
	}
	v.Log.Infof("deployed: %d/%s", chainID, owner.Hex())

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	l, err := v.store.Vaults().Refetch(ctx, chainID, owner)
	reply.Lookup = l
	if nil != err {
		reply.Error = err.Error()
	}
	return nil
}
