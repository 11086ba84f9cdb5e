// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type TransportError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrEncodingInvariant    = ProcessError("encoding invariant violated")
	ErrHTTPStatus           = TransportError("unexpected HTTP status")
	ErrInvalidChain         = InvalidError("invalid chain")
	ErrInvalidCoin          = InvalidError("invalid coin")
	ErrInvalidConfiguration = InvalidError("invalid configuration")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrMalformedResponse    = TransportError("malformed response")
	ErrMissingConfigFile    = NotFoundError("configuration file is required")
	ErrMissingNodeURL       = InvalidError("node URL is required")
	ErrNotFoundTransaction  = NotFoundError("transaction not found")
	ErrRateLimited          = TransportError("rate limited")
	ErrRequestFailed        = TransportError("request failed")
	ErrSignerFailed         = ProcessError("signer failed")
	ErrSignerRequired       = InvalidError("signer is required")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e TransportError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { var x ExistsError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool  { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool   { var x ProcessError; return errors.As(e, &x) }
func IsErrTransport(e error) bool { var x TransportError; return errors.As(e, &x) }

// IsErrInvalid - caller supplied bad input, address format errors included
func IsErrInvalid(e error) bool {
	var x InvalidError
	if errors.As(e, &x) {
		return true
	}
	return IsErrAddressFormat(e)
}

// AddressReason - why an address string could not be decoded
type AddressReason string

// reasons for AddressFormatError
const (
	PrefixMismatch AddressReason = "prefix_mismatch"
	WrongLength    AddressReason = "wrong_length"
	InvalidHex     AddressReason = "invalid_hex"
)

// AddressFormatError - an address string could not be converted to an
// account identifier
type AddressFormatError struct {
	Reason  AddressReason
	Address string
}

func (e *AddressFormatError) Error() string {
	return fmt.Sprintf("address format error: %s: %q", e.Reason, e.Address)
}

// NewAddressFormatError - create an address error with a reason
func NewAddressFormatError(reason AddressReason, address string) *AddressFormatError {
	return &AddressFormatError{Reason: reason, Address: address}
}

// IsErrAddressFormat - error is an address format error
func IsErrAddressFormat(e error) bool {
	var x *AddressFormatError
	return errors.As(e, &x)
}

// AddressFormatReason - extract the reason from an address format error
func AddressFormatReason(e error) (AddressReason, bool) {
	var x *AddressFormatError
	if errors.As(e, &x) {
		return x.Reason, true
	}
	return "", false
}
