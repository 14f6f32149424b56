// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/demai-labs/demaid/command/demai-cli/rpccalls"
)

func runVault(c *cli.Context) error {
	owner, err := checkOptionalAddress(c.String("owner"))
	if nil != err {
		return err
	}
	chainID := c.Uint64("chain")

	method := ""
	switch strings.ToLower(c.String("mode")) {
	case "", "resolve":
		method = rpccalls.VaultResolve
	case "refetch":
		method = rpccalls.VaultRefetch
	case "lookup":
		method = rpccalls.VaultLookup
	case "deployed":
		method = rpccalls.VaultDeployed
	case "predict":
	default:
		return ErrUnknownVaultMode
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if "" == method {
		reply, err := client.Predict(chainID, owner)
		if nil != err {
			return err
		}
		return m.output(reply)
	}

	reply, err := client.Vault(method, chainID, owner)
	if nil != err {
		return err
	}
	return m.output(reply)
}

func runBalances(c *cli.Context) error {
	owner, err := checkOptionalAddress(c.String("owner"))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Balances(c.Uint64("chain"), owner, c.Bool("force"))
	if nil != err {
		return err
	}
	return m.output(reply)
}

func runHoldings(c *cli.Context) error {
	vaultAddress, err := checkOptionalAddress(c.String("vault"))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Holdings(c.Uint64("chain"), vaultAddress, c.Bool("force"))
	if nil != err {
		return err
	}
	return m.output(reply)
}

func runChains(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	chains, err := client.Chains()
	if nil != err {
		return err
	}
	return m.output(chains)
}
