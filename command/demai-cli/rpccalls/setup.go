// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - typed JSON-RPC calls to a demaid
package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a TLS RPC connection to a demaid
//
// the daemon uses a self-signed certificate, check its fingerprint
// with "demaid fingerprint"
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}
	return NewClientConn(conn, verbose, handle), nil
}

// NewClientConn - client over an established connection
func NewClientConn(conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the demaid connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// print request and reply then call
func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	client.printJson(method+" Request", arguments)
	if err := client.client.Call(method, arguments, reply); nil != err {
		return err
	}
	client.printJson(method+" Reply", reply)
	return nil
}

func (client *Client) printJson(title string, message interface{}) error {

	if !client.verbose {
		return nil
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
	return nil
}
