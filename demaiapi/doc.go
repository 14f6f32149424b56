// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package demaiapi is the HTTP client for the demAI backend: chat,
// portfolio, strategy catalogue, strategy subscriptions and scheduled
// user tasks.
//
// Every non-2xx reply is returned as a *StatusError carrying the
// backend's "detail" text.
package demaiapi
