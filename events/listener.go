// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

// Listener - a registered observer of one key
type Listener struct {
	C <-chan Notification

	c   chan Notification
	key string
	bus *Bus
}

// Key - the key this listener observes
func (l *Listener) Key() string {
	return l.key
}

// Close - unregister and close the channel, safe to call repeatedly
func (l *Listener) Close() {
	l.bus.remove(l)
}
