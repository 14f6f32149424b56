// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/demai-labs/demaid/auth"
	"github.com/demai-labs/demaid/configuration"
	"github.com/demai-labs/demaid/rpc/certificate"
	"github.com/demai-labs/demaid/storage"
)

const (
	rpcCertificateKeyFilename = "demaid.crt"
	rpcPrivateKeyFilename     = "demaid.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.Create("rpc", certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg", "fingerprint", "fp", "chains":
		return false // defer processing until configuration is read

	case "auth", "clear-auth", "clear-session":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] (rpc)   - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                (fp)     - display the SHA3-256 fingerprint of the RPC certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  chains                              - list the configured chains and vault factories\n")
		fmt.Printf("\n")

		fmt.Printf("  auth                                - display the stored wallet signature\n")
		fmt.Printf("\n")

		fmt.Printf("  clear-auth                          - forget the stored wallet signature\n")
		fmt.Printf("\n")

		fmt.Printf("  clear-session                       - forget the connected wallet and chain\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		// never print the private keys
		safe := *options
		safe.ClientRPC.PrivateKey = ""
		safe.HttpsRPC.PrivateKey = ""

		b, err := json.Marshal(safe)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	case "fingerprint", "fp":
		rpc := options.ClientRPC
		_, fingerprint, err := certificate.Get(logger.New("main"), "client_rpc", rpc.Certificate, rpc.PrivateKey)
		if nil != err {
			exitwithstatus.Message("error: cannot decode certificate  error: %s", err)
		}
		fmt.Printf("rpc fingerprint: %x\n", fingerprint)

	case "chains":
		storeConfiguration, err := options.Store()
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		for _, c := range options.Chains {
			d, ok := storeConfiguration.Deployments[c.ID]
			factory := "none"
			if ok {
				factory = d.Factory.Hex()
			}
			fmt.Printf("%8d  %-12s  rpc: %q  factory: %s\n", c.ID, c.Name, c.RPC, factory)
		}

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the database is open so these commands can inspect or reset the
// stored signature and session
func processDataCommand(log *logger.L, arguments []string, db *storage.Database) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "auth":
		d := auth.New(db.Auth).Load()
		if nil == d {
			fmt.Printf("no stored signature\n")
			break
		}
		fmt.Printf("address: %s\n", d.Address)
		fmt.Printf("message: %q\n", d.Message)

	case "clear-auth":
		if err := auth.New(db.Auth).Clear(); nil != err {
			exitwithstatus.Message("clear signature error: %s", err)
		}
		log.Info("signature cleared")
		fmt.Printf("signature cleared\n")

	case "clear-session":
		keys, err := db.Session.Keys()
		if nil != err {
			exitwithstatus.Message("read session error: %s", err)
		}
		for _, k := range keys {
			if err := db.Session.Delete(k); nil != err {
				exitwithstatus.Message("clear session error: %s", err)
			}
		}
		log.Info("session cleared")
		fmt.Printf("session cleared\n")

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
