// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/demai-labs/demaid/counter"
	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/rpc/certificate"
	"github.com/demai-labs/demaid/rpc/handler"
	"github.com/demai-labs/demaid/rpc/listeners"
	"github.com/demai-labs/demaid/rpc/server"
	"github.com/demai-labs/demaid/store"
)

const (
	tlsName   = "client_rpc"
	httpsName = "http_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connection counter shared by both listeners
var connectionCountRPC counter.Counter

// Initialise - start the JSON-RPC and HTTPS listeners over s
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, s *store.Store) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC, s),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	if err := rpcListener.Serve(); nil != err {
		return err
	}
	started := []listeners.Listener{rpcListener}

	httpsListener, err := initialiseHTTPS(httpsConfiguration, version, s)
	if nil != err {
		rpcListener.Close()
		return err
	}
	if nil != httpsListener {
		started = append(started, httpsListener)
	}

	globalData.listeners = started

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - close every listener
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	for _, l := range globalData.listeners {
		if err := l.Close(); nil != err {
			globalData.log.Errorf("close error: %s", err)
		}
	}
	globalData.listeners = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

func initialiseHTTPS(configuration *listeners.HTTPSConfiguration, version string, s *store.Store) (listeners.Listener, error) {
	log := globalData.log

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil, nil
	}

	tlsConfiguration, fingerprint, err := certificate.Get(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	hdlr := handler.New(log, server.Create(log, version, &connectionCountRPC, s), s, time.Now(), version, configuration.MaximumConnections)

	l, err := listeners.NewHTTPS(configuration, log, tlsConfiguration, hdlr)
	if nil != err || nil == l {
		return nil, err
	}
	if err := l.Serve(); nil != err {
		return nil, err
	}
	return l, nil
}
