// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package demaiapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/demai-labs/demaid/fault"
)

// Credentials - the wallet signature sent with authenticated requests
type Credentials struct {
	WalletAddress string
	Signature     string
	Message       string
}

type chatRequest struct {
	Message       string `json:"message"`
	WalletAddress string `json:"wallet_address"`
	Signature     string `json:"signature"`
	AuthMessage   string `json:"auth_message"`
}

// ChatReply - assistant text and the windows it wants opened
type ChatReply struct {
	Text    string   `json:"text"`
	Windows []string `json:"windows,omitempty"`
}

// ErrInvalidResponse - a chat reply without a response string
const ErrInvalidResponse = fault.ProcessError("Invalid response format from server.")

// Chat - send a message to the assistant
//
// the backend's "response" is either plain text or a JSON object
// {text, windows}
func (c *Client) Chat(ctx context.Context, message string, credentials Credentials) (*ChatReply, error) {
	if "" == strings.TrimSpace(message) {
		return nil, fault.EmptyChatMessage
	}

	request := chatRequest{
		Message:       message,
		WalletAddress: credentials.WalletAddress,
		Signature:     credentials.Signature,
		AuthMessage:   credentials.Message,
	}

	var raw struct {
		Response *string `json:"response"`
	}
	if err := c.do(ctx, http.MethodPost, "/chat/", nil, request, &raw); nil != err {
		return nil, err
	}
	if nil == raw.Response {
		return nil, ErrInvalidResponse
	}

	return ParseChatResponse(*raw.Response), nil
}

// ParseChatResponse - decode the assistant's response string
func ParseChatResponse(response string) *ChatReply {
	var structured struct {
		Text    string   `json:"text"`
		Windows []string `json:"windows"`
	}
	if err := json.Unmarshal([]byte(response), &structured); nil != err {
		return &ChatReply{
			Text: response,
		}
	}

	reply := &ChatReply{
		Text:    structured.Text,
		Windows: structured.Windows,
	}
	if "" == reply.Text {
		reply.Text = response
	}
	return reply
}
