// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse the demaid Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  The file must
// return a single table whose fields map onto Configuration.
//
// The chain and token lists may be edited while the daemon runs, a
// Watcher re-reads the file and hands each new Configuration to its
// callback.
package configuration
