// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auth keeps the wallet signature that unlocks the portfolio
// and strategy endpoints.
//
// A single record is kept under the key "demai_auth_data"; it is only
// honoured when it was signed over Message and belongs to the wallet
// asking.
package auth
