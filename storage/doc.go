// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - persistent key/value pools
//
// One leveldb database holds every pool; a pool is a single byte key
// prefix.
//
//	Pool        Prefix   Key                 Value
//	|___ Auth      A     "demai_auth_data"   JSON {address, signature, message}
//	|___ Session   S     "wallet"/"chain"    connected wallet address / chain id
//
// The database carries a version record under a zero prefix so that a
// newer layout is never opened by an older daemon.
package storage
