// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AuthorizationError GenericError
type CrossCallError GenericError
type CryptoError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type TimingError GenericError
type TransportError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised      = ProcessError("already initialised")
	CertificateFileExists   = ExistsError("certificate file exists")
	ContentIdNotFound       = NotFoundError("content id not found")
	DecryptionFailed        = CryptoError("decryption failed")
	DownloadFailed          = TransportError("download failed")
	InvalidContentId        = InvalidError("invalid content id")
	InvalidExecutionToken   = NotFoundError("invalid execution token")
	InvalidIPAddress        = InvalidError("invalid IP Address")
	InvalidKeyLength        = InvalidError("invalid key length")
	InvalidPortNumber       = InvalidError("invalid port number")
	InvalidStructPointer    = ProcessError("invalid struct pointer")
	KeyFileExists           = ExistsError("key file exists")
	MissingParameters       = InvalidError("missing parameters")
	NotContractOwner        = AuthorizationError("not contract owner")
	NotInitialised          = ProcessError("not initialised")
	NotTokenOwner           = AuthorizationError("not token owner")
	ParentNotFound          = NotFoundError("parent not found")
	PartNotFound            = NotFoundError("part not found")
	RateLimiting            = ProcessError("rate limiting")
	RegistryCallFailed      = CrossCallError("registry call failed")
	SignatureRecoveryFailed = CryptoError("signature recovery failed")
	SinkWriteFailed         = TransportError("sink write failed")
	StaleOrFutureTimestamp  = TimingError("stale or future timestamp")
	TokenNotFound           = NotFoundError("token not found")
	UnauthorizedAccess      = AuthorizationError("unauthorized access")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e CrossCallError) Error() string     { return string(e) }
func (e CryptoError) Error() string        { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e TimingError) Error() string        { return string(e) }
func (e TransportError) Error() string     { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrCrossCall(e error) bool     { _, ok := e.(CrossCallError); return ok }
func IsErrCrypto(e error) bool        { _, ok := e.(CryptoError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrTiming(e error) bool        { _, ok := e.(TimingError); return ok }
func IsErrTransport(e error) bool     { _, ok := e.(TransportError); return ok }
