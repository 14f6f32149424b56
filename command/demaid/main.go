// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/demai-labs/demaid/background"
	"github.com/demai-labs/demaid/configuration"
	"github.com/demai-labs/demaid/contract"
	"github.com/demai-labs/demaid/demaiapi"
	"github.com/demai-labs/demaid/rpc"
	"github.com/demai-labs/demaid/storage"
	"github.com/demai-labs/demaid/store"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
		{Long: "profile-http", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.Get(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// start a profiling http server
	// this uses the default builtin HTTP handler
	// and is not associated with the normal ClientRPC HTTPS server
	if 1 == len(options["profile-http"]) {
		profileHTTP := options["profile-http"][0]
		go func() {
			log.Warnf("profile listener on: %s", profileHTTP)
			err := http.ListenAndServe(profileHTTP, nil)
			exitwithstatus.Message("profile error: %s", err)
		}()
	}

	// general info
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Infof("backend: %q", theConfiguration.Backend.URL)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC.Listen)
	log.Debugf("%s = %#v", "HttpsRPC", theConfiguration.HttpsRPC.Listen)

	// start the data storage
	log.Info("initialise storage")
	db, err := storage.Open(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer db.Close()

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, db) {
		return
	}

	// chain connections
	log.Info("initialise chains")
	chains, err := dialChains(log, theConfiguration.Chains)
	if nil != err {
		log.Criticalf("chain initialise error: %s", err)
		exitwithstatus.Message("chain initialise error: %s", err)
	}
	reader := contract.New(chains, theConfiguration.Contract.CallRate, theConfiguration.Contract.CallBurst)

	// demAI service
	backend, err := demaiapi.New(theConfiguration.Backend.URL, &http.Client{
		Timeout: theConfiguration.BackendTimeout(),
	})
	if nil != err {
		log.Criticalf("backend initialise error: %s", err)
		exitwithstatus.Message("backend initialise error: %s", err)
	}

	// the caches
	storeConfiguration, err := theConfiguration.Store()
	if nil != err {
		log.Criticalf("store configuration error: %s", err)
		exitwithstatus.Message("store configuration error: %s", err)
	}
	readers := store.Readers{
		Vault:    reader,
		Tokens:   reader,
		Holdings: reader,
	}
	theStore, err := store.New(storeConfiguration, readers, backend, db, nil)
	if nil != err {
		log.Criticalf("store initialise error: %s", err)
		exitwithstatus.Message("store initialise error: %s", err)
	}
	if err := theStore.Start(); nil != err {
		log.Criticalf("store start error: %s", err)
		exitwithstatus.Message("store start error: %s", err)
	}
	defer theStore.Stop()

	// token and chain lists follow the configuration file
	watcher, err := configuration.NewWatcher(configurationFile, 0, reloader(log, theStore))
	if nil != err {
		log.Criticalf("configuration watcher error: %s", err)
		exitwithstatus.Message("configuration watcher error: %s", err)
	}
	processes := background.Processes{watcher}

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		processes = append(processes, background.ProcessFunc(memstats))
	}

	bg := background.Start(processes, nil)
	defer bg.Stop()

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, &theConfiguration.HttpsRPC, version, theStore)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// apply a reloaded configuration to the token registry
func reloader(log *logger.L, s *store.Store) func(*configuration.Configuration) {
	return func(c *configuration.Configuration) {
		list, err := c.TokenList()
		if nil != err {
			log.Errorf("token list error: %s", err)
			return
		}
		s.Tokens().Registry().Replace(list, c.ChainList())
		s.Tokens().Cache().ClearAll()
		log.Info("token registry replaced")
	}
}
