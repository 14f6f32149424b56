// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
)

// output - write a reply as JSON on the command's writer
//
// compact mode gives one line per reply for line-oriented tools; chat
// text and card ids are written without HTML escaping
func (m *metadata) output(message interface{}) error {
	encoder := json.NewEncoder(m.w)
	encoder.SetEscapeHTML(false)
	if !m.compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(message)
}
