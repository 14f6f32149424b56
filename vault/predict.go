// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/demai-labs/demaid/fault"
)

// DeployerID - the factory's salt domain
const DeployerID = "DEMAI_VAULT_FACTORY_V1"

// Deployment - per chain factory parameters
//
// with no Beacon or CreationCode the prediction is delegated to the
// factory's predictVaultAddress call
type Deployment struct {
	Factory      common.Address
	Beacon       common.Address
	CreationCode []byte
}

// Predictor - deterministic vault address calculation
type Predictor struct {
	deployments map[uint64]Deployment
	reader      Reader
}

var (
	deployerID = crypto.Keccak256([]byte(DeployerID))

	addressType, _ = abi.NewType("address", "", nil)
	bytesType, _   = abi.NewType("bytes", "", nil)

	initializeArguments = abi.Arguments{
		{Name: "factoryAdmin", Type: addressType},
		{Name: "vaultOwner", Type: addressType},
	}
	constructorArguments = abi.Arguments{
		{Type: addressType},
		{Type: bytesType},
	}

	// initialize(address,address)
	initializeSelector = crypto.Keccak256([]byte("initialize(address,address)"))[:4]
)

// NewPredictor - create a predictor, reader may be nil when every
// deployment carries a creation code
func NewPredictor(deployments map[uint64]Deployment, reader Reader) *Predictor {
	d := make(map[uint64]Deployment, len(deployments))
	for k, v := range deployments {
		d[k] = v
	}
	return &Predictor{
		deployments: d,
		reader:      reader,
	}
}

// Salt - CREATE2 salt for an owner
func Salt(owner common.Address) [32]byte {
	var salt [32]byte
	copy(salt[:], crypto.Keccak256(deployerID, owner.Bytes()))
	return salt
}

// InitCode - proxy creation code followed by its constructor arguments
func InitCode(d Deployment, owner common.Address) ([]byte, error) {
	args, err := initializeArguments.Pack(d.Factory, owner)
	if nil != err {
		return nil, err
	}
	initData := append(append([]byte{}, initializeSelector...), args...)

	constructor, err := constructorArguments.Pack(d.Beacon, initData)
	if nil != err {
		return nil, err
	}

	code := make([]byte, 0, len(d.CreationCode)+len(constructor))
	code = append(code, d.CreationCode...)
	return append(code, constructor...), nil
}

// Predict - address the factory would deploy for owner
func (p *Predictor) Predict(ctx context.Context, chainID uint64, owner common.Address) (common.Address, error) {
	d, ok := p.deployments[chainID]
	if !ok {
		return common.Address{}, fault.VaultFactoryNotSet
	}

	if 0 == len(d.CreationCode) || (common.Address{}) == d.Beacon {
		if nil == p.reader {
			return common.Address{}, fault.VaultFactoryNotSet
		}
		return p.reader.PredictVaultAddress(ctx, chainID, owner)
	}

	code, err := InitCode(d, owner)
	if nil != err {
		return common.Address{}, err
	}
	salt := Salt(owner)
	return crypto.CreateAddress2(d.Factory, salt, crypto.Keccak256(code)), nil
}

// ParseCreationCode - decode hex creation code from configuration
func ParseCreationCode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, nil
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}
