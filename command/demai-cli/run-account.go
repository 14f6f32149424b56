// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"
)

func runConnect(c *cli.Context) error {
	wallet, err := checkAddress(c.String("wallet"), ErrRequiredWallet)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	session, err := client.Connect(wallet, c.Uint64("chain"))
	if nil != err {
		return err
	}
	return m.output(session)
}

func runDisconnect(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	session, err := client.Disconnect()
	if nil != err {
		return err
	}
	return m.output(session)
}

func runSession(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	session, err := client.Session()
	if nil != err {
		return err
	}
	return m.output(session)
}

func runSign(c *cli.Context) error {
	key, err := checkPrivateKey(c.String("key"))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	session, err := client.SignIn(key)
	if nil != err {
		return err
	}
	return m.output(session)
}

func runPortfolio(c *cli.Context) error {
	owner, err := checkOptionalAddress(c.String("owner"))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	entry, err := client.Portfolio(owner, c.Bool("force"))
	if nil != err {
		return err
	}
	return m.output(entry)
}

func runChat(c *cli.Context) error {
	message := strings.TrimSpace(strings.Join(c.Args(), " "))
	if "" == message {
		return ErrRequiredMessage
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Chat(message)
	if nil != err {
		return err
	}
	return m.output(reply)
}
