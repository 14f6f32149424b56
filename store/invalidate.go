// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/demai-labs/demaid/events"
	"github.com/demai-labs/demaid/fault"
)

const (
	refreshQueueSize = 4
	refreshTimeout   = 30 * time.Second
)

// Invalidate - apply the cache effect of one emitted key
//
// keys outside the invalidating namespaces are ignored
func (s *Store) Invalidate(ctx context.Context, key string) error {
	if events.PortfolioRefresh == key {
		return s.refreshPortfolio(ctx)
	}
	_, err := s.clear(key)
	return err
}

// drop the cache entries a chain switch or deployment makes stale,
// reports whether key was one of those
func (s *Store) clear(key string) (bool, error) {
	switch {
	case strings.HasPrefix(key, events.ChainSwitch+events.Separator):
		chainID, err := strconv.ParseUint(strings.TrimPrefix(key, events.ChainSwitch+events.Separator), 10, 64)
		if nil != err {
			return true, fault.InvalidEventKey
		}
		v := s.resolver.Cache().ClearChain(chainID)
		t := s.loader.Cache().ClearChain(chainID)
		s.log.Infof("chain switch: %d  vaults cleared: %d  token lists cleared: %d", chainID, v, t)
		return true, nil

	case strings.HasPrefix(key, events.VaultDeployed+events.Separator):
		parts := strings.Split(strings.TrimPrefix(key, events.VaultDeployed+events.Separator), events.Separator)
		if 2 != len(parts) || !common.IsHexAddress(parts[1]) {
			return true, fault.InvalidEventKey
		}
		chainID, err := strconv.ParseUint(parts[0], 10, 64)
		if nil != err {
			return true, fault.InvalidEventKey
		}
		owner := common.HexToAddress(parts[1])
		s.resolver.Cache().Clear(chainID, owner)
		s.log.Infof("vault deployed: %d/%s", chainID, owner.Hex())
		return true, nil
	}
	return false, nil
}

// runs inside Emit so the caches are clear before Emit returns
func (s *Store) clearHook(emitted string) {
	if _, err := s.clear(emitted); nil != err {
		s.log.Warnf("clear: %q  error: %s", emitted, err)
	}
}

func (s *Store) refreshPortfolio(ctx context.Context) error {
	wallet, _ := s.current()
	if (common.Address{}) == wallet {
		return nil
	}
	e, err := s.portfolio.Fetch(ctx, wallet.Hex(), true)
	if nil != err {
		return err
	}
	if "" == e.Error {
		_, err = s.bus.Emit(events.PortfolioUpdate)
	}
	return err
}

// VaultDeployed - announce a new vault, clearing its cached absence
func (s *Store) VaultDeployed(chainID uint64, owner common.Address) error {
	if (common.Address{}) == owner {
		return fault.InvalidAddress
	}
	_, err := s.bus.Emit(events.Join(events.VaultDeployed, strconv.FormatUint(chainID, 10), strings.ToLower(owner.Hex())))
	return err
}

// background portfolio refresh
//
// requests arriving while a refresh runs collapse into the queued
// ones, a full queue drops the extra request
type refresher struct {
	store    *Store
	listener *events.Listener
}

func newRefresher(s *Store) (*refresher, error) {
	l, err := s.bus.Listen(events.PortfolioRefresh, refreshQueueSize)
	if nil != err {
		return nil, err
	}
	return &refresher{
		store:    s,
		listener: l,
	}, nil
}

// Run - refresh the portfolio on request until shutdown
func (r *refresher) Run(args interface{}, shutdown <-chan struct{}) {
	log := r.store.log
	defer r.listener.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// cancel an in-flight refresh at shutdown
	go func() {
		<-shutdown
		cancel()
	}()

	log.Info("refresher: starting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case n, ok := <-r.listener.C:
			if !ok {
				break loop
			}
			log.Debugf("refresher: %q", n.Emitted)
			c, done := context.WithTimeout(ctx, refreshTimeout)
			err := r.store.refreshPortfolio(c)
			done()
			if nil != err {
				log.Warnf("refresher: %q  error: %s", n.Emitted, err)
			}
		}
	}
	log.Info("refresher: stopped")
}
