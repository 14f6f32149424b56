// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/fixtures"
	"github.com/demai-labs/demaid/rpc"
	"github.com/demai-labs/demaid/rpc/certificate"
	"github.com/demai-labs/demaid/rpc/listeners"
	"github.com/demai-labs/demaid/rpc/node"
	"github.com/demai-labs/demaid/rpc/rpctest"
)

func TestInitialiseFinalise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := rpctest.New(t, ctl)
	defer h.Close()

	cer, key, err := certificate.Generate("test", []string{"127.0.0.1"})
	assert.Nil(t, err, "generate certificate")

	address := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	rpcConfiguration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{address},
		Certificate:        string(cer),
		PrivateKey:         string(key),
	}
	httpsConfiguration := listeners.HTTPSConfiguration{}

	err = rpc.Finalise()
	assert.Equal(t, fault.NotInitialised, err, "finalise before initialise")

	err = rpc.Initialise(&rpcConfiguration, &httpsConfiguration, "v1.0", h.Store)
	assert.Nil(t, err, "wrong initialise")

	err = rpc.Initialise(&rpcConfiguration, &httpsConfiguration, "v1.0", h.Store)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")

	conn, err := tls.Dial("tcp", address, &tls.Config{InsecureSkipVerify: true})
	assert.Nil(t, err, "dial")
	client := jsonrpc.NewClient(conn)

	var reply node.InfoReply
	err = client.Call("Node.Info", node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong call error")
	assert.Equal(t, "v1.0", reply.Version, "wrong version")
	client.Close()

	err = rpc.Finalise()
	assert.Nil(t, err, "wrong finalise")

	_, err = tls.Dial("tcp", address, &tls.Config{InsecureSkipVerify: true})
	assert.NotNil(t, err, "listener still open after finalise")
}

func TestInitialiseBadCertificate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := rpctest.New(t, ctl)
	defer h.Close()

	rpcConfiguration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{"127.0.0.1:0"},
	}
	err := rpc.Initialise(&rpcConfiguration, &listeners.HTTPSConfiguration{}, "v1.0", h.Store)
	assert.NotNil(t, err, "missing certificate should fail")

	err = rpc.Finalise()
	assert.Equal(t, fault.NotInitialised, err, "failed initialise should not be finalised")
}
