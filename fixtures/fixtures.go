// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/facebookgo/clock"
)

const (
	LogCategory = "testing"
)

// Epoch - the mock clock starts here, a non-zero millisecond time
// so that a stamped entry is never mistaken for "never queried"
var Epoch = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

var dir string

// SetupTestLogger - start logging into a temporary directory
func SetupTestLogger() {
	removeFiles()

	d, err := os.MkdirTemp("", "demaid-testing-")
	if nil != err {
		d = filepath.Join(os.TempDir(), "demaid-testing")
		_ = os.Mkdir(d, 0700)
	}
	dir = d

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	if "" == dir {
		return
	}
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
	dir = ""
}

// NewClock - a mock clock positioned at Epoch
func NewClock() *clock.Mock {
	c := clock.NewMock()
	c.Add(Epoch.Sub(c.Now()))
	return c
}

// Millis - Epoch plus an offset as milliseconds
func Millis(offset time.Duration) int64 {
	return Epoch.Add(offset).UnixMilli()
}
