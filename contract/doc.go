// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - read-only calls to the vault factory, the vaults
// and ERC20 tokens on each configured chain
//
// A Reader serves both the vault resolver and the token loader. Every
// call is rate limited per chain.
package contract
