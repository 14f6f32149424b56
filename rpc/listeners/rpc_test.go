// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/demai-labs/demaid/counter"
	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/fixtures"
	"github.com/demai-labs/demaid/rpc/certificate"
	"github.com/demai-labs/demaid/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func tlsConfig(t *testing.T) (*tls.Config, [32]byte) {
	cer, key, err := certificate.Generate("test", []string{"127.0.0.1"})
	if nil != err {
		t.Error("generate certificate with error: ", err)
		t.FailNow()
	}
	c, fin, err := certificate.Get(logger.New(fixtures.LogCategory), "test", string(cer), string(key))
	if nil != err {
		t.Error("get certificate with error: ", err)
		t.FailNow()
	}
	return c, fin
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
	}

	count := counter.Counter(0)

	s := rpc.NewServer()
	err := s.Register(Add{})
	if nil != err {
		t.Error("register with error: ", err)
		t.FailNow()
	}

	c, fin := tlsConfig(t)

	l, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		s,
		c,
		fin,
	)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	conn, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Error("dial with error: ", err)
		t.FailNow()
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(conn)
	defer client.Close()
	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
}

func TestRpcListenerWhenMaxConnectionCountTooSmall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2130"},
	}
	count := counter.Counter(0)

	_, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		rpc.NewServer(),
		&tls.Config{},
		[32]byte{},
	)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestRpcListenerWhenEmptyListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{},
	}
	count := counter.Counter(0)

	_, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		rpc.NewServer(),
		&tls.Config{},
		[32]byte{},
	)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestRpcListenerWhenInvalidListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"localhost:2130"},
	}
	count := counter.Counter(0)

	_, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		rpc.NewServer(),
		&tls.Config{},
		[32]byte{},
	)
	assert.Equal(t, fault.InvalidIPAddress, err, "wrong error")
}
