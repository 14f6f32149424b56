// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	compact bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConnect = "127.0.0.1:2130"

func main() {

	app := cli.NewApp()
	app.Name = "demai-cli"
	app.Usage = "query and drive a running demaid"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	chainFlag := cli.Uint64Flag{
		Name:  "chain, n",
		Usage: " chain `ID` [default: session chain]",
	}
	ownerFlag := cli.StringFlag{
		Name:  "owner, o",
		Value: "",
		Usage: " wallet `ADDRESS` [default: session wallet]",
	}
	forceFlag := cli.BoolFlag{
		Name:  "force, f",
		Usage: " bypass the cache",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "compact, j",
			Usage: " one line of JSON per result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " demaid client_rpc `HOST:PORT`",
			EnvVar: "DEMAID_CONNECT",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display demaid status",
			Action: runInfo,
		},
		{
			Name:      "emit",
			Usage:     "emit an event, stamping it and its ancestors",
			ArgsUsage: "KEY",
			Action:    runEmit,
		},
		{
			Name:      "read",
			Usage:     "last timestamp of each event key",
			ArgsUsage: "KEY...",
			Action:    runRead,
		},
		{
			Name:      "surface",
			Usage:     "ask the client to show a card",
			ArgsUsage: "CARD",
			Action:    runSurface,
		},
		{
			Name:      "cards",
			Usage:     "surfaced cards, most recent first",
			ArgsUsage: "[CARD...]",
			Action:    runCards,
		},
		{
			Name:      "vault",
			Usage:     "vault address of a wallet",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				chainFlag,
				ownerFlag,
				cli.StringFlag{
					Name:  "mode, m",
					Value: "resolve",
					Usage: "+lookup `MODE` [resolve|refetch|lookup|deployed|predict]",
				},
			},
			Action: runVault,
		},
		{
			Name:   "balances",
			Usage:  "wallet token balances and vault approvals",
			Flags:  []cli.Flag{chainFlag, ownerFlag, forceFlag},
			Action: runBalances,
		},
		{
			Name:  "holdings",
			Usage: "tokens held inside a vault",
			Flags: []cli.Flag{
				chainFlag,
				forceFlag,
				cli.StringFlag{
					Name:  "vault, a",
					Value: "",
					Usage: " vault `ADDRESS` [default: session vault]",
				},
			},
			Action: runHoldings,
		},
		{
			Name:   "chains",
			Usage:  "supported chains and their tokens",
			Action: runChains,
		},
		{
			Name:      "connect",
			Usage:     "set the session wallet and chain",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "wallet, w",
					Value: "",
					Usage: "*wallet `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "chain, n",
					Usage: "*chain `ID`",
				},
			},
			Action: runConnect,
		},
		{
			Name:   "disconnect",
			Usage:  "forget the session wallet",
			Action: runDisconnect,
		},
		{
			Name:   "session",
			Usage:  "display the current session",
			Action: runSession,
		},
		{
			Name:      "sign",
			Usage:     "sign the welcome message and store the signature",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "key, k",
					Value:  "",
					Usage:  "*wallet private key `HEX`",
					EnvVar: "DEMAI_PRIVATE_KEY",
				},
			},
			Action: runSign,
		},
		{
			Name:   "portfolio",
			Usage:  "portfolio of a wallet",
			Flags:  []cli.Flag{ownerFlag, forceFlag},
			Action: runPortfolio,
		},
		{
			Name:      "chat",
			Usage:     "send a message to the assistant",
			ArgsUsage: "MESSAGE...",
			Action:    runChat,
		},
		{
			Name:   "strategies",
			Usage:  "list the available strategies",
			Action: runStrategies,
		},
		{
			Name:   "subscriptions",
			Usage:  "list the session wallet's subscriptions",
			Action: runSubscriptions,
		},
		{
			Name:      "subscribe",
			Usage:     "subscribe to a strategy",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "strategy, s",
					Value: "",
					Usage: "*strategy `ID`",
				},
				cli.IntFlag{
					Name:  "percentage, p",
					Value: 100,
					Usage: " share of the vault `PERCENT`",
				},
				cli.StringFlag{
					Name:  "chain, n",
					Value: "",
					Usage: " chain `NAME` [default: strategy chain]",
				},
			},
			Action: runSubscribe,
		},
		{
			Name:      "unsubscribe",
			Usage:     "cancel a subscription",
			ArgsUsage: "ID",
			Action:    runUnsubscribe,
		},
		{
			Name:   "tasks",
			Usage:  "list the session wallet's tasks",
			Action: runTasks,
		},
		{
			Name:      "task",
			Usage:     "pause, resume or delete a task",
			ArgsUsage: "ACTION ID",
			Action:    runTask,
		},
	}

	// read global flags and store them for the commands
	app.Before = func(c *cli.Context) error {

		connect, err := checkConnect(c.GlobalString("connect"))
		if nil != err {
			return err
		}

		verbose := c.GlobalBool("verbose")
		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "connect: %q\n", connect)
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			verbose: verbose,
			compact: c.GlobalBool("compact"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
