// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - generated mocks for the external boundaries
//
//go:generate mockgen -destination=vault_reader.go -package=mocks -mock_names=Reader=MockVaultReader github.com/demai-labs/demaid/vault Reader
//go:generate mockgen -destination=token_reader.go -package=mocks -mock_names=Reader=MockTokenReader github.com/demai-labs/demaid/tokens Reader
//go:generate mockgen -destination=portfolio.go -package=mocks -mock_names=Fetcher=MockPortfolioFetcher github.com/demai-labs/demaid/portfolio Fetcher,Authenticator
//go:generate mockgen -destination=handle.go -package=mocks github.com/demai-labs/demaid/storage Handle
//go:generate mockgen -destination=vault_balance_reader.go -package=mocks -mock_names=VaultReader=MockVaultBalanceReader github.com/demai-labs/demaid/tokens VaultReader
//go:generate mockgen -destination=contract_caller.go -package=mocks github.com/ethereum/go-ethereum ContractCaller
//go:generate mockgen -destination=backend.go -package=mocks github.com/demai-labs/demaid/store Backend
package mocks
