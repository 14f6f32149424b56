// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/facebookgo/clock"

	"github.com/demai-labs/demaid/auth"
	"github.com/demai-labs/demaid/background"
	"github.com/demai-labs/demaid/demaiapi"
	"github.com/demai-labs/demaid/events"
	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/portfolio"
	"github.com/demai-labs/demaid/storage"
	"github.com/demai-labs/demaid/surface"
	"github.com/demai-labs/demaid/tokens"
	"github.com/demai-labs/demaid/vault"
)

// Configuration - tuning of the caches
//
// zero durations select each package's default; nil token or chain
// lists select the built in registry
type Configuration struct {
	VaultTTL       time.Duration
	TokenStaleTime time.Duration
	PortfolioTTL   time.Duration
	Deployments    map[uint64]vault.Deployment
	Tokens         []tokens.Token
	Chains         []tokens.Chain
}

// Readers - the chain read boundaries
type Readers struct {
	Vault    vault.Reader
	Tokens   tokens.Reader
	Holdings tokens.VaultReader
}

// Backend - the demAI service
type Backend interface {
	Chat(ctx context.Context, message string, credentials demaiapi.Credentials) (*demaiapi.ChatReply, error)
	Portfolio(ctx context.Context, credentials demaiapi.Credentials) (*demaiapi.Portfolio, error)
	Strategies(ctx context.Context) ([]demaiapi.Strategy, error)
	Subscriptions(ctx context.Context, wallet string) ([]demaiapi.Subscription, error)
	Subscribe(ctx context.Context, request demaiapi.SubscribeRequest) error
	UpdateSubscription(ctx context.Context, id string, update demaiapi.SubscriptionUpdate) error
	DeleteSubscription(ctx context.Context, wallet string, id string) error
	Tasks(ctx context.Context, credentials demaiapi.Credentials) ([]demaiapi.UserTask, error)
	Task(ctx context.Context, action demaiapi.TaskAction, taskID string, credentials demaiapi.Credentials) error
}

// Store - every component of the daemon's state
type Store struct {
	sync.RWMutex

	log   *logger.L
	clock clock.Clock

	bus       *events.Bus
	surface   *surface.Log
	resolver  *vault.Resolver
	predictor *vault.Predictor
	loader    *tokens.Loader
	holdings  tokens.VaultReader
	portfolio *portfolio.Service
	auth      *auth.Keeper
	backend   Backend
	session   storage.Handle

	wallet  common.Address
	chainID uint64

	processes *background.T
}

// New - build a store, db supplies the auth and session pools
func New(configuration Configuration, readers Readers, backend Backend, db *storage.Database, clk clock.Clock) (*Store, error) {
	if nil == db {
		return nil, fault.DatabaseIsNotSet
	}
	if nil == readers.Vault || nil == readers.Tokens || nil == readers.Holdings || nil == backend {
		return nil, fault.MissingParameters
	}
	if nil == clk {
		clk = clock.New()
	}

	registry := tokens.NewRegistry(configuration.Tokens, configuration.Chains)
	keeper := auth.New(db.Auth)

	s := &Store{
		log:       logger.New("store"),
		clock:     clk,
		bus:       events.New(clk),
		surface:   surface.New(clk),
		resolver:  vault.NewResolver(vault.NewCache(clk, configuration.VaultTTL), readers.Vault),
		predictor: vault.NewPredictor(configuration.Deployments, readers.Vault),
		loader:    tokens.NewLoader(clk, registry, tokens.NewCache(clk), readers.Tokens, configuration.TokenStaleTime),
		holdings:  readers.Holdings,
		portfolio: portfolio.NewService(portfolio.NewCache(clk, configuration.PortfolioTTL), backend, keeper),
		auth:      keeper,
		backend:   backend,
		session:   db.Session,
	}

	if err := s.restoreSession(); nil != err {
		return nil, err
	}
	s.bus.Hook(s.clearHook)

	s.log.Infof("chains: %d  tokens: %d", len(registry.Chains()), len(registry.Tokens()))
	return s, nil
}

// Start - run the portfolio refresh process
func (s *Store) Start() error {
	s.Lock()
	defer s.Unlock()

	if nil != s.processes {
		return fault.AlreadyInitialised
	}
	r, err := newRefresher(s)
	if nil != err {
		return err
	}
	s.processes = background.Start(background.Processes{r}, s)
	s.log.Info("started")
	return nil
}

// Stop - halt the refresh process, safe if never started
func (s *Store) Stop() {
	s.Lock()
	p := s.processes
	s.processes = nil
	s.Unlock()

	p.Stop()
	s.log.Info("stopped")
}

// Bus - the event bus
func (s *Store) Bus() *events.Bus {
	return s.bus
}

// Surface - the card surfacing log
func (s *Store) Surface() *surface.Log {
	return s.surface
}

// Vaults - the vault resolver
func (s *Store) Vaults() *vault.Resolver {
	return s.resolver
}

// Predictor - the vault address predictor
func (s *Store) Predictor() *vault.Predictor {
	return s.predictor
}

// Tokens - the token loader
func (s *Store) Tokens() *tokens.Loader {
	return s.loader
}

// Portfolio - the portfolio service
func (s *Store) Portfolio() *portfolio.Service {
	return s.portfolio
}

// Auth - the signature keeper
func (s *Store) Auth() *auth.Keeper {
	return s.auth
}

// Holdings - token balances held by a vault
func (s *Store) Holdings(ctx context.Context, chainID uint64, vaultAddress common.Address, force bool) ([]tokens.Balance, error) {
	return s.loader.Holdings(ctx, chainID, vaultAddress, s.holdings, force)
}

// Spender - the vault that token approvals are checked against:
// the deployed vault, or its predicted address before deployment
func (s *Store) Spender(ctx context.Context, chainID uint64, owner common.Address) (common.Address, error) {
	l, err := s.resolver.Resolve(ctx, chainID, owner)
	if nil != err {
		return common.Address{}, err
	}
	if vault.Resolved == l.State {
		return l.Address, nil
	}
	return s.predictor.Predict(ctx, chainID, owner)
}

// Balances - balances and approvals of the connected wallet towards
// its vault on the current chain
func (s *Store) Balances(ctx context.Context, force bool) ([]tokens.Balance, error) {
	wallet, chainID := s.current()
	if (common.Address{}) == wallet {
		return nil, fault.NotConnected
	}
	return s.BalancesFor(ctx, chainID, wallet, force)
}

// BalancesFor - balances and approvals of owner towards its vault
func (s *Store) BalancesFor(ctx context.Context, chainID uint64, owner common.Address, force bool) ([]tokens.Balance, error) {
	spender, err := s.Spender(ctx, chainID, owner)
	if nil != err {
		return nil, err
	}
	if force {
		return s.loader.Refresh(ctx, chainID, owner, spender)
	}
	return s.loader.Load(ctx, chainID, owner, spender)
}

// FetchPortfolio - the connected wallet's portfolio
func (s *Store) FetchPortfolio(ctx context.Context, force bool) (portfolio.Entry, error) {
	wallet, _ := s.current()
	if (common.Address{}) == wallet {
		return portfolio.Entry{}, fault.NotConnected
	}
	return s.portfolio.Fetch(ctx, wallet.Hex(), force)
}

// Stats - sizes of the in-memory state
type Stats struct {
	Events        int    `json:"events"`
	DroppedEvents uint64 `json:"droppedEvents"`
	Cards         int    `json:"cards"`
	Vaults        int    `json:"vaults"`
	Balances      int    `json:"balances"`
	Portfolios    int    `json:"portfolios"`
}

// Stats - current sizes
func (s *Store) Stats() Stats {
	return Stats{
		Events:        s.bus.Size(),
		DroppedEvents: s.bus.Dropped(),
		Cards:         s.surface.Size(),
		Vaults:        s.resolver.Cache().Size(),
		Balances:      s.loader.Cache().Size(),
		Portfolios:    s.portfolio.Cache().Size(),
	}
}
