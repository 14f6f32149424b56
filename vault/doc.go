// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - per user vault address resolution
//
//	***** Data Structure *****
//
//	Cache                   Key                       Value
//	|___ entries            (chain id, owner)         address, state, status, last query
//
//	***** States *****
//
//	Unresolved ---(loading)---> NoVault | Resolved
//
//	status:  idle -> loading -> success | error
//
//	A successful result is kept until the TTL expires or it is cleared.
//	Error is sticky: nothing retries automatically, Refetch resets the
//	entry and reads again.
//
//	***** Admission *****
//
//	ShouldQuery is false while loading, true for an entry that has never
//	held a successful result and otherwise true once the TTL has passed.
//	Resolver additionally collapses concurrent reads of the same key
//	into one contract call.
package vault
