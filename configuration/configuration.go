// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/demai-labs/demaid/fault"
	"github.com/demai-labs/demaid/rpc/listeners"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "demaid.key"
	defaultCertificateFile = "demaid.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "demaid.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "demaid.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10

	pemMarker = "-----BEGIN"

	defaultBackendURL     = "https://api.demai.xyz"
	defaultBackendTimeout = 30

	defaultVaultTTL       = 300
	defaultTokenStaleTime = 30
	defaultPortfolioTTL   = 300
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// a fresh map each time, the decoder merges into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		"main":            "info",
		"config":          "info",
		logger.DefaultTag: "critical",
	}
}

// DatabaseType - leveldb location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// BackendType - the demAI service, timeout in seconds
type BackendType struct {
	URL     string `gluamapper:"url" json:"url"`
	Timeout int    `gluamapper:"timeout" json:"timeout"`
}

// CacheType - cache lifetimes in seconds
type CacheType struct {
	VaultTTL       int `gluamapper:"vault_ttl" json:"vault_ttl"`
	TokenStaleTime int `gluamapper:"token_stale_time" json:"token_stale_time"`
	PortfolioTTL   int `gluamapper:"portfolio_ttl" json:"portfolio_ttl"`
}

// ContractType - per chain call limits
type ContractType struct {
	CallRate  float64 `gluamapper:"call_rate" json:"call_rate"`
	CallBurst int     `gluamapper:"call_burst" json:"call_burst"`
}

// ChainType - one network, its endpoint and its vault factory
//
// a chain without rpc is listed but never read, one without factory
// has no vaults
type ChainType struct {
	ID             uint64 `gluamapper:"id" json:"id"`
	Name           string `gluamapper:"name" json:"name"`
	NativeCurrency string `gluamapper:"native_currency" json:"native_currency"`
	ExplorerURL    string `gluamapper:"explorer_url" json:"explorer_url"`
	RPC            string `gluamapper:"rpc" json:"rpc"`
	Factory        string `gluamapper:"factory" json:"factory"`
	Beacon         string `gluamapper:"beacon" json:"beacon"`
	CreationCode   string `gluamapper:"creation_code" json:"creation_code"`
}

// TokenType - an ERC20, addresses keyed by decimal chain id
type TokenType struct {
	Symbol    string            `gluamapper:"symbol" json:"symbol"`
	Name      string            `gluamapper:"name" json:"name"`
	Decimals  uint8             `gluamapper:"decimals" json:"decimals"`
	Addresses map[string]string `gluamapper:"addresses" json:"addresses"`
}

// Configuration - the whole daemon configuration
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Backend  BackendType  `gluamapper:"backend" json:"backend"`
	Cache    CacheType    `gluamapper:"cache" json:"cache"`
	Contract ContractType `gluamapper:"contract" json:"contract"`
	Chains   []ChainType  `gluamapper:"chains" json:"chains"`
	Tokens   []TokenType  `gluamapper:"tokens" json:"tokens"`

	ClientRPC listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC  listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Logging   logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// Get - read, decode and verify the configuration
func Get(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}
	if _, err := os.Stat(configurationFileName); nil != err {
		if os.IsNotExist(err) {
			return nil, fault.ConfigurationFileMissing
		}
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Backend: BackendType{
			URL:     defaultBackendURL,
			Timeout: defaultBackendTimeout,
		},

		Cache: CacheType{
			VaultTTL:       defaultVaultTTL,
			TokenStaleTime: defaultTokenStaleTime,
			PortfolioTTL:   defaultPortfolioTTL,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share config with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// certificates and keys are PEM text, either inline or read
	// from a file; a missing file leaves the item blank
	pemItems := []*string{
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
	}
	for _, f := range pemItems {
		if err := loadPEM(options.DataDirectory, f); nil != err {
			return nil, err
		}
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = ensureAbsolute(options.DataDirectory, options.PidFile)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = ensureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("files: %q is not plain name: %w", *f[0], fault.InvalidPath)
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// replace a file name by the file's contents
func loadPEM(directory string, item *string) error {
	if "" == *item || strings.Contains(*item, pemMarker) {
		return nil
	}
	data, err := os.ReadFile(ensureAbsolute(directory, *item))
	if os.IsNotExist(err) {
		*item = ""
		return nil
	}
	if nil != err {
		return err
	}
	*item = string(data)
	return nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
