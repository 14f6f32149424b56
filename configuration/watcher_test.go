// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/demai-labs/demaid/background"
	"github.com/demai-labs/demaid/configuration"
	"github.com/demai-labs/demaid/fixtures"
)

const (
	watchedBefore = `return { data_directory = ".", tokens = { { symbol = "OLD", addresses = {} } } }`
	watchedAfter  = `return { data_directory = ".", tokens = { { symbol = "NEW", addresses = {} } } }`
	watchedBroken = `return {`
)

func TestWatcherReloads(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	fileName := write(t, t.TempDir(), watchedBefore)

	reloaded := make(chan *configuration.Configuration, 4)
	w, err := configuration.NewWatcher(fileName, 50*time.Millisecond, func(c *configuration.Configuration) {
		reloaded <- c
	})
	assert.Nil(t, err, "wrong error")

	processes := background.Start(background.Processes{w}, nil)
	defer processes.Stop()

	// a broken file is logged and skipped
	err = os.WriteFile(fileName, []byte(watchedBroken), 0600)
	assert.Nil(t, err, "write broken")
	select {
	case c := <-reloaded:
		t.Fatalf("unexpected reload: %v", c.Tokens)
	case <-time.After(500 * time.Millisecond):
	}

	err = os.WriteFile(fileName, []byte(watchedAfter), 0600)
	assert.Nil(t, err, "write after")

	select {
	case c := <-reloaded:
		assert.Equal(t, 1, len(c.Tokens), "wrong token count")
		assert.Equal(t, "NEW", c.Tokens[0].Symbol, "wrong token")
	case <-time.After(5 * time.Second):
		t.Fatal("configuration was not reloaded")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir := t.TempDir()
	fileName := write(t, dir, watchedBefore)

	reloaded := make(chan *configuration.Configuration, 1)
	w, err := configuration.NewWatcher(fileName, 20*time.Millisecond, func(c *configuration.Configuration) {
		reloaded <- c
	})
	assert.Nil(t, err, "wrong error")

	processes := background.Start(background.Processes{w}, nil)
	defer processes.Stop()

	err = os.WriteFile(dir+"/other.conf", []byte("x"), 0600)
	assert.Nil(t, err, "write other")

	select {
	case <-reloaded:
		t.Fatal("reload from unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := configuration.NewWatcher("/nonexistent/demaid/demaid.conf", 0, func(*configuration.Configuration) {})
	assert.NotNil(t, err, "missing directory should fail")
}
