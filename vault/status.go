// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"encoding/json"
	"strings"

	"github.com/demai-labs/demaid/fault"
)

// Status - query state machine
type Status int

// the query states
const (
	Idle Status = iota
	Loading
	Success
	Error
)

var statusNames = []string{"idle", "loading", "success", "error"}

// String - lower case name
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// ParseStatus - convert a name back to a Status
func ParseStatus(name string) (Status, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range statusNames {
		if s == n {
			return Status(i), nil
		}
	}
	return Idle, fault.MissingParameters
}

// MarshalJSON - status as a string
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON - status from a string
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); nil != err {
		return err
	}
	status, err := ParseStatus(name)
	if nil != err {
		return err
	}
	*s = status
	return nil
}

// State - what is known about the vault address
type State int

// the resolution states
const (
	Unresolved State = iota // never queried
	NoVault                 // queried, nothing deployed
	Resolved                // address known
)

// String - lower case name
func (s State) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case NoVault:
		return "none"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// MarshalJSON - state as a string
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
