// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/demai-labs/demaid/fault"
)

// Listener - a server started by Serve and halted by Close
type Listener interface {
	Serve() error
	Close() error
}

// change "*:PORT" to "[::]:PORT"
// on the assumption that this will listen on tcp4 and tcp6
func wildcard(listen string) string {
	if '*' == listen[0] {
		return "[::]" + ":" + strings.Split(listen, ":")[1]
	}
	return listen
}

func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Error("rpc server listen error: empty address")
			return nil, fault.InvalidIPAddress
		}
		if '*' == listen[0] {
			addrs[i] = wildcard(listen)
			listen = "::"
			parsed[i] = "tcp"
		} else if '[' == listen[0] {
			listen = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		} else {
			listen = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(listen); nil == ip {
			err := fault.InvalidIPAddress
			log.Errorf("rpc server listen error: %s", err)
			return nil, err
		}
	}

	return parsed, nil
}
