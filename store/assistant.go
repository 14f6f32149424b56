// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"strings"

	"github.com/demai-labs/demaid/demaiapi"
	"github.com/demai-labs/demaid/events"
)

// Chat - ask the assistant and open the windows its reply names
func (s *Store) Chat(ctx context.Context, message string) (*demaiapi.ChatReply, error) {
	reply, err := s.backend.Chat(ctx, message, s.Credentials())
	if nil != err {
		s.log.Warnf("chat: error: %s", err)
		return nil, err
	}

	for _, id := range reply.Windows {
		id = strings.TrimSpace(id)
		if "" == id {
			continue
		}
		if _, err := s.bus.Emit(events.WindowKey(id)); nil != err {
			s.log.Warnf("chat: window: %q  error: %s", id, err)
		}
	}
	return reply, nil
}
