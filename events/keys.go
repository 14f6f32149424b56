// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"strings"

	"github.com/demai-labs/demaid/fault"
)

// well known keys shared between the daemon and its clients
const (
	Separator = "."

	App              = "app"
	Portfolio        = "app.portfolio"
	PortfolioRefresh = "app.portfolio.refresh"
	PortfolioUpdate  = "app.portfolio.update"
	OpenWindow       = "app.openwindow"
	OpenWindowClose  = "app.openwindow.close-all"
	StrategyUpdate   = "app.strategy.update"
	ChainSwitch      = "app.chain.switch"
	VaultDeployed    = "app.vault.deployed"
	TokensRefresh    = "app.tokens.refresh"
	VaultOpen        = "vault.open"
)

// Join - build a key from segments
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}

// Prefixes - the key followed by each ancestor, longest first
//
// "a.b.c" gives ["a.b.c", "a.b", "a"]
func Prefixes(key string) ([]string, error) {
	if "" == key {
		return nil, fault.InvalidEventKey
	}
	segments := strings.Split(key, Separator)
	for _, s := range segments {
		if "" == s {
			return nil, fault.InvalidEventKey
		}
	}

	prefixes := make([]string, len(segments))
	end := len(key)
	for i := range segments {
		prefixes[i] = key[:end]
		end = strings.LastIndex(key[:end], Separator)
	}
	return prefixes, nil
}

// WindowKey - key that asks clients to open a window
func WindowKey(id string) string {
	return Join(OpenWindow, id)
}

// IsCloseAll - true for the window key that closes everything
func IsCloseAll(key string) bool {
	return key == OpenWindowClose
}
