// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package portfolio caches the backend portfolio of each wallet.
//
// Entries are keyed by the lower-cased wallet address. A fetch only
// happens for a wallet with a valid stored signature.
package portfolio
