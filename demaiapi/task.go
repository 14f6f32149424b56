// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package demaiapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/demai-labs/demaid/fault"
)

// task states
const (
	TaskActive   = "active"
	TaskPaused   = "paused"
	TaskInactive = "inactive"
	TaskFailed   = "failed"
)

// TaskResult - outcome of the last run
type TaskResult struct {
	Success   bool                       `json:"success"`
	Data      map[string]json.RawMessage `json:"data,omitempty"`
	Error     string                     `json:"error,omitempty"`
	TxHash    string                     `json:"tx_hash,omitempty"`
	Timestamp string                     `json:"timestamp"`
}

// UserTask - a scheduled strategy run for a vault
type UserTask struct {
	ID            string                     `json:"_id"`
	UserAddress   string                     `json:"user_address"`
	VaultAddress  string                     `json:"vault_address"`
	StrategyID    string                     `json:"strategy_id"`
	Amount        string                     `json:"amount"`
	Params        map[string]json.RawMessage `json:"params"`
	ChainID       uint64                     `json:"chain_id"`
	IntervalHours int                        `json:"interval_hours"`
	Status        string                     `json:"status"`
	NextRun       string                     `json:"next_run"`
	LastRun       string                     `json:"last_run,omitempty"`
	LastResult    *TaskResult                `json:"last_result,omitempty"`
	CreatedAt     string                     `json:"created_at"`
	UpdatedAt     string                     `json:"updated_at"`
}

// TaskAction - the operations on one task
type TaskAction string

// task actions
const (
	PauseTask  = TaskAction("pause")
	ResumeTask = TaskAction("resume")
	DeleteTask = TaskAction("delete")
)

type taskRequest struct {
	WalletAddress string `json:"wallet_address"`
	Signature     string `json:"signature"`
	TaskID        string `json:"task_id"`
}

// Tasks - the scheduled tasks of a signed-in wallet
func (c *Client) Tasks(ctx context.Context, credentials Credentials) ([]UserTask, error) {
	if "" == credentials.WalletAddress || "" == credentials.Signature {
		return nil, fault.AuthenticationRequired
	}

	query := url.Values{}
	query.Set("wallet_address", credentials.WalletAddress)
	query.Set("signature", credentials.Signature)

	var reply struct {
		Tasks []UserTask `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "/strategies/tasks/", query, nil, &reply); nil != err {
		return nil, err
	}
	if nil == reply.Tasks {
		return []UserTask{}, nil
	}
	return reply.Tasks, nil
}

// Task - pause, resume or delete a task
func (c *Client) Task(ctx context.Context, action TaskAction, taskID string, credentials Credentials) error {
	switch action {
	case PauseTask, ResumeTask, DeleteTask:
	default:
		return fault.MissingParameters
	}
	if "" == taskID {
		return fault.MissingParameters
	}
	if "" == credentials.WalletAddress || "" == credentials.Signature {
		return fault.AuthenticationRequired
	}

	request := taskRequest{
		WalletAddress: credentials.WalletAddress,
		Signature:     credentials.Signature,
		TaskID:        taskID,
	}
	return c.do(ctx, http.MethodPost, "/strategies/tasks/"+string(action), nil, request, nil)
}
