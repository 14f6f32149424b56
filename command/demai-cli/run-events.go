// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/demai-labs/demaid/command/demai-cli/rpccalls"
)

// open a client from the stored global flags
func connect(c *cli.Context) (*metadata, *rpccalls.Client, error) {
	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return m, client, nil
}

func runInfo(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Info()
	if nil != err {
		return err
	}
	return m.output(reply)
}

func runEmit(c *cli.Context) error {
	key := c.Args().First()
	if "" == key {
		return ErrRequiredEventKey
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Emit(key)
	if nil != err {
		return err
	}
	return m.output(reply)
}

func runRead(c *cli.Context) error {
	if 0 == c.NArg() {
		return ErrRequiredEventKey
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	stamps, err := client.Read(c.Args())
	if nil != err {
		return err
	}
	return m.output(stamps)
}

func runSurface(c *cli.Context) error {
	cardID := c.Args().First()
	if "" == cardID {
		return ErrRequiredCardID
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Surface(cardID)
	if nil != err {
		return err
	}
	return m.output(reply)
}

func runCards(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	list, err := client.Ordered(c.Args())
	if nil != err {
		return err
	}
	return m.output(list)
}
