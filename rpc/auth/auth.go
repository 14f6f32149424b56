// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth

import (
	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/demai-labs/demaid/auth"
	"github.com/demai-labs/demaid/rpc/ratelimit"
	"github.com/demai-labs/demaid/store"
)

const (
	rateLimitAuth = 10
	rateBurstAuth = 20
)

// Auth - type for RPC calls
type Auth struct {
	Log     *logger.L
	Limiter *rate.Limiter
	store   *store.Store
}

// New - wallet session and signature service
func New(log *logger.L, s *store.Store) *Auth {
	return &Auth{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAuth, rateBurstAuth),
		store:   s,
	}
}

// MessageArguments - empty arguments
type MessageArguments struct{}

// MessageReply - the text a wallet must sign
type MessageReply struct {
	Message string `json:"message"`
}

// Message - the welcome text to be signed with personal_sign
func (a *Auth) Message(_ *MessageArguments, reply *MessageReply) error {
	reply.Message = auth.Message
	return nil
}

// SaveArguments - a personal_sign signature of the welcome text
type SaveArguments struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
	Message   string `json:"message"`
}

// Save - verify and keep a wallet signature
func (a *Auth) Save(arguments *SaveArguments, reply *store.Session) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	err := a.store.Auth().Save(auth.Data{
		Address:   arguments.Address,
		Signature: arguments.Signature,
		Message:   arguments.Message,
	})
	if nil != err {
		a.Log.Warnf("save: %s  error: %s", arguments.Address, err)
		return err
	}

	*reply = a.store.Session()
	return nil
}

// StatusArguments - a zero address selects the connected session
type StatusArguments struct {
	Address common.Address `json:"address"`
}

// StatusReply - whether a usable signature is stored
type StatusReply struct {
	Address       common.Address `json:"address"`
	Authenticated bool           `json:"authenticated"`
}

// Status - signature state of an address
func (a *Auth) Status(arguments *StatusArguments, reply *StatusReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	address := arguments.Address
	if (common.Address{}) == address {
		address = a.store.Session().Wallet
	}
	reply.Address = address
	reply.Authenticated = (common.Address{}) != address && a.store.Auth().Valid(address.Hex())
	return nil
}

// ClearArguments - empty arguments
type ClearArguments struct{}

// Clear - forget the stored signature
func (a *Auth) Clear(_ *ClearArguments, reply *store.Session) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if err := a.store.Auth().Clear(); nil != err {
		return err
	}
	*reply = a.store.Session()
	return nil
}

// ConnectArguments - wallet and chain chosen by the client
type ConnectArguments struct {
	Wallet  common.Address `json:"wallet"`
	ChainID uint64         `json:"chainId"`
}

// Connect - set the session wallet and chain
func (a *Auth) Connect(arguments *ConnectArguments, reply *store.Session) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if err := a.store.Connect(arguments.Wallet, arguments.ChainID); nil != err {
		return err
	}
	*reply = a.store.Session()
	return nil
}

// SessionArguments - empty arguments
type SessionArguments struct{}

// Disconnect - forget the session wallet
func (a *Auth) Disconnect(_ *SessionArguments, reply *store.Session) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if err := a.store.Disconnect(); nil != err {
		return err
	}
	*reply = a.store.Session()
	return nil
}

// Session - the current session
func (a *Auth) Session(_ *SessionArguments, reply *store.Session) error {
	*reply = a.store.Session()
	return nil
}
