// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/rpc/handler"
)

const (
	httpsLogName     = "http_rpc"
	readWriteTimeout = 10 * time.Second
	shutdownTimeout  = 5 * time.Second
)

// HTTPS paths
const (
	RPCPath     = "/demaid/rpc"
	DetailsPath = "/demaid/details"
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	sync.Mutex

	log             *logger.L
	listenIPAndPort []string
	tlsConfig       *tls.Config
	mux             *http.ServeMux
	servers         []*http.Server
}

// NewHTTPS - HTTPS access to the handler, nil listener when no address is configured
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	h := httpsListener{
		log:             log,
		listenIPAndPort: configuration.Listen,
		tlsConfig:       tlsConfig,
	}

	// create access control and format strings to match http.Request.RemoteAddr
	local := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		local[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				log.Errorf("invalid %s allow: %q  error: %s", httpsLogName, ip, err)
				return nil, err
			}
			set[i] = cidr
		}
	}

	hdlr.SetAllow(local)

	h.mux = http.NewServeMux()
	h.mux.HandleFunc(RPCPath, hdlr.RPC)
	h.mux.HandleFunc(DetailsPath, hdlr.Details)
	h.mux.HandleFunc("/", hdlr.Root)

	return &h, nil
}

// Serve - open every listen address then serve in background
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	cfg := h.tlsConfig.Clone()
	cfg.NextProtos = []string{"http/1.1"}

	for _, listen := range h.listenIPAndPort {
		addr := wildcard(listen)
		h.log.Infof("starting server: %s on: %q", httpsLogName, addr)

		ln, err := net.Listen("tcp", addr)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			return err
		}

		s := &http.Server{
			Addr:           addr,
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)

		go func() {
			err := s.Serve(tls.NewListener(ln, cfg))
			if nil != err && http.ErrServerClosed != err {
				h.log.Errorf("%s terminated: %s", httpsLogName, err)
			}
		}()
	}

	return nil
}

// Close - graceful shutdown of every server
func (h *httpsListener) Close() error {
	h.Lock()
	defer h.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var err error
	for _, s := range h.servers {
		if e := s.Shutdown(ctx); nil != e && nil == err {
			err = e
		}
	}
	h.servers = nil
	return err
}
