// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store - the daemon's state: event bus, card surfacing, vault
// addresses, token balances and the portfolio, together with the
// connected wallet session
//
// A Store is built once at start up; nothing in it is global. These
// events clear the caches before Emit returns:
//
//	app.chain.switch.<chain>            vault entries and token lists of the chain
//	app.vault.deployed.<chain>.<owner>  that vault entry
//
// and app.portfolio.refresh queues a forced fetch of the connected
// wallet's portfolio for the background refresher
package store
