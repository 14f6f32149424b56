// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package events - hierarchical event log
//
// Keys are dotted paths such as "app.openwindow.portfolio".  Emitting a
// key stamps the key and every ancestor ("app", "app.openwindow") with
// the same millisecond time so a reader of any prefix sees a change.
//
//	key                        stamp
//	app                        1714564800123
//	app.openwindow             1714564800123
//	app.openwindow.portfolio   1714564800123
//
// Two emits inside the same millisecond give the same stamp, a reader
// comparing stamps will see one change.  Entries are never removed.
//
// Listeners are registered against a single key and receive a
// notification whenever that key is stamped, either directly or as the
// ancestor of an emitted key.  Delivery never blocks the emitter: a
// full listener channel drops the notification.
package events
