// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runStrategies(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	list, err := client.Strategies()
	if nil != err {
		return err
	}
	return m.output(list)
}

func runSubscriptions(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	list, err := client.Subscriptions()
	if nil != err {
		return err
	}
	return m.output(list)
}

func runSubscribe(c *cli.Context) error {
	strategyID := c.String("strategy")
	if "" == strategyID {
		return ErrRequiredStrategy
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.Subscribe(strategyID, c.Int("percentage"), c.String("chain")); nil != err {
		return err
	}
	fmt.Fprintf(m.w, "subscribed: %s\n", strategyID)
	return nil
}

func runUnsubscribe(c *cli.Context) error {
	id := c.Args().First()
	if "" == id {
		return ErrRequiredSubscribe
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.Unsubscribe(id); nil != err {
		return err
	}
	fmt.Fprintf(m.w, "unsubscribed: %s\n", id)
	return nil
}

func runTasks(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	list, err := client.Tasks()
	if nil != err {
		return err
	}
	return m.output(list)
}

func runTask(c *cli.Context) error {
	if 2 != c.NArg() {
		return ErrRequiredTask
	}
	action := c.Args().Get(0)
	taskID := c.Args().Get(1)

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.Task(action, taskID); nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%s: %s\n", action, taskID)
	return nil
}
