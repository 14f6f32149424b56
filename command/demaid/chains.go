// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"

	"github.com/demai-labs/demaid/configuration"
	"github.com/demai-labs/demaid/contract"
)

const dialTimeout = 15 * time.Second

// connect every chain that has an endpoint
func dialChains(log *logger.L, chains []configuration.ChainType) ([]contract.Chain, error) {
	connected := make([]contract.Chain, 0, len(chains))

	for _, c := range chains {
		if "" == c.RPC {
			log.Warnf("chain: %d %q has no rpc endpoint, reads will fail", c.ID, c.Name)
			continue
		}

		factory := common.Address{}
		if "" != c.Factory {
			factory = common.HexToAddress(c.Factory)
		}

		ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
		chain, err := contract.Dial(ctx, c.ID, c.RPC, factory)
		cancel()
		if nil != err {
			log.Errorf("chain: %d dial: %q  error: %s", c.ID, c.RPC, err)
			return nil, err
		}

		log.Infof("chain: %d %q factory: %s", c.ID, c.Name, factory.Hex())
		connected = append(connected, chain)
	}

	if 0 == len(connected) {
		log.Warn("no chains connected")
	}
	return connected, nil
}
