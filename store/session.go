// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/demai-labs/demaid/demaiapi"
	"github.com/demai-labs/demaid/events"
	"github.com/demai-labs/demaid/fault"
)

var (
	walletKey = []byte("wallet")
	chainKey  = []byte("chain")
)

// Session - the connected wallet
type Session struct {
	Wallet        common.Address `json:"wallet"`
	ChainID       uint64         `json:"chainId"`
	Connected     bool           `json:"connected"`
	Authenticated bool           `json:"authenticated"`
}

func (s *Store) current() (common.Address, uint64) {
	s.RLock()
	defer s.RUnlock()
	return s.wallet, s.chainID
}

// Session - the current session
func (s *Store) Session() Session {
	wallet, chainID := s.current()
	connected := (common.Address{}) != wallet
	return Session{
		Wallet:        wallet,
		ChainID:       chainID,
		Connected:     connected,
		Authenticated: connected && s.auth.Valid(wallet.Hex()),
	}
}

// Credentials - the stored signature of the connected wallet, empty
// fields if it has not signed
func (s *Store) Credentials() demaiapi.Credentials {
	wallet, _ := s.current()
	if (common.Address{}) == wallet {
		return demaiapi.Credentials{}
	}
	c := demaiapi.Credentials{
		WalletAddress: wallet.Hex(),
	}
	if d := s.auth.For(wallet.Hex()); nil != d {
		c.Signature = d.Signature
		c.Message = d.Message
	}
	return c
}

// Connect - set the wallet and chain
//
// moving to a different chain emits app.chain.switch.<chain>
func (s *Store) Connect(wallet common.Address, chainID uint64) error {
	if (common.Address{}) == wallet {
		return fault.InvalidAddress
	}
	if _, ok := s.loader.Registry().Chain(chainID); !ok {
		return fault.ChainNotSupported
	}

	s.Lock()
	previous := s.chainID
	s.wallet = wallet
	s.chainID = chainID
	err := s.saveSession()
	s.Unlock()

	if nil != err {
		return err
	}

	s.log.Infof("connected: %s  chain: %d", wallet.Hex(), chainID)

	if 0 != previous && previous != chainID {
		_, err := s.bus.Emit(events.Join(events.ChainSwitch, strconv.FormatUint(chainID, 10)))
		return err
	}
	return nil
}

// Disconnect - forget the wallet, keep the chain, drop every cached
// portfolio
func (s *Store) Disconnect() error {
	s.Lock()
	s.wallet = common.Address{}
	err := s.saveSession()
	s.Unlock()

	s.portfolio.Cache().ClearAll()
	s.log.Info("disconnected")
	return err
}

// caller holds the lock
func (s *Store) saveSession() error {
	if (common.Address{}) == s.wallet {
		if err := s.session.Delete(walletKey); nil != err {
			return err
		}
	} else if err := s.session.Put(walletKey, []byte(s.wallet.Hex())); nil != err {
		return err
	}
	return s.session.Put(chainKey, []byte(strconv.FormatUint(s.chainID, 10)))
}

func (s *Store) restoreSession() error {
	w, err := s.session.Get(walletKey)
	if nil != err {
		return err
	}
	if nil != w && common.IsHexAddress(string(w)) {
		s.wallet = common.HexToAddress(string(w))
	}

	c, err := s.session.Get(chainKey)
	if nil != err {
		return err
	}
	if nil != c {
		id, err := strconv.ParseUint(string(c), 10, 64)
		if nil == err {
			s.chainID = id
		} else {
			s.log.Warnf("ignoring stored chain: %q", c)
		}
	}

	if (common.Address{}) != s.wallet {
		s.log.Infof("restored: %s  chain: %d", s.wallet.Hex(), s.chainID)
	}
	return nil
}
