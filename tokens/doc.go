// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tokens - supported token registry and the balance/approval cache
//
// The cache holds one list per "chain:owner:spender" key.  A list is
// written in one operation and copied on the way in and out, so a
// reader never sees a partially refreshed list.  The cache itself
// never expires anything; Loader decides when a list is stale.
package tokens
