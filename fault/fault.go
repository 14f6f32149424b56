// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type AuthError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = ExistsError("already initialised")
	AuthenticationRequired   = AuthError("please authenticate to view your portfolio")
	AuthenticationRejected   = AuthError("authentication failed, please reconnect your wallet")
	CertificateFileExists    = ExistsError("certificate file already exists")
	ChainNotSupported        = NotFoundError("chain is not supported")
	ConfigurationFileMissing = NotFoundError("configuration file is not found")
	ContractCallFailed       = ProcessError("contract call failed")
	DatabaseIsNotSet         = NotFoundError("database is not set")
	EmptyAuthMessage         = InvalidError("auth message is empty")
	EmptyChatMessage         = InvalidError("chat message is empty")
	InvalidAddress           = InvalidError("invalid address")
	InvalidCardID            = InvalidError("invalid card id")
	InvalidConfiguration     = InvalidError("configuration must return a table")
	InvalidCount             = InvalidError("invalid count")
	InvalidEventKey          = InvalidError("invalid event key")
	InvalidIPAddress         = InvalidError("invalid IP address")
	InvalidPath              = InvalidError("invalid path")
	InvalidPercentage        = InvalidError("percentage must be between 1 and 100")
	InvalidSignature         = InvalidError("invalid signature")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	InvalidTaskAction        = InvalidError("task action must be pause, resume or delete")
	KeyFileExists            = ExistsError("key file already exists")
	MissingParameters        = InvalidError("missing parameters")
	NotConnected             = InvalidError("wallet not connected")
	NotInitialised           = NotFoundError("not initialised")
	RateLimiting             = InvalidError("rate limiting")
	RequestFailed            = ProcessError("backend request failed")
	TokenNotOnChain          = NotFoundError("token not available on this chain")
	VaultNotDeployed         = NotFoundError("vault is not deployed")
	VaultFactoryNotSet       = NotFoundError("vault factory is not configured for this chain")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e AuthError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrAuth(e error) bool     { _, ok := e.(AuthError); return ok }
