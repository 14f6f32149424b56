// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/demai-labs/demaid/fault"
)

const validity = 10 * 365 * 24 * time.Hour

// Get - verify that a PEM certificate and key pair are valid
// and return the TLS configuration with the certificate fingerprint
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Fingerprint - SHA3-256 of a DER certificate
//
//	openssl x509 -outform DER -in demaid-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// Generate - PEM encoded self-signed certificate and key
func Generate(name string, extraHosts []string) ([]byte, []byte, error) {
	org := "demaid self signed cert for: " + name
	validUntil := time.Now().Add(validity)
	return certgen.NewTLSCertPair(org, validUntil, false, extraHosts)
}

// Create - write a new self-signed pair, refusing to overwrite
func Create(name string, certificateFileName string, privateKeyFileName string, extraHosts []string) error {
	if exists(certificateFileName) {
		return fault.CertificateFileExists
	}
	if exists(privateKeyFileName) {
		return fault.KeyFileExists
	}

	cert, key, err := Generate(name, extraHosts)
	if nil != err {
		return err
	}

	if err = os.WriteFile(certificateFileName, cert, 0666); nil != err {
		return err
	}

	if err = os.WriteFile(privateKeyFileName, key, 0600); nil != err {
		_ = os.Remove(certificateFileName)
		return err
	}

	return nil
}

func exists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
