// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package teleport

import (
	"errors"
	"fmt"
)

// Error codes are part of the bridge's external contract. Relayers and
// counterpart deployments match on the numeric value, so the order must not
// change.
const (
	CodeAlreadyApproved int32 = iota
	CodeAmountExceeded
	CodeNotApprovedOrExecuted
	CodeProvidedHashIsInvalid
	CodeInvalidCallerLength
	CodeInvalidTokenLength
	CodeInvalidPackage
	CodeUnknownState
	CodeUnknownChain
	CodeUnknownAllowance
	CodeAllowanceNotFound
	CodeMissingApproverRole
)

var (
	ErrAlreadyApproved       = &Error{Code: CodeAlreadyApproved, Message: "already approved"}
	ErrAmountExceeded        = &Error{Code: CodeAmountExceeded, Message: "amount exceeded"}
	ErrNotApprovedOrExecuted = &Error{Code: CodeNotApprovedOrExecuted, Message: "not approved or executed"}
	ErrProvidedHashIsInvalid = &Error{Code: CodeProvidedHashIsInvalid, Message: "provided hash is invalid"}
	ErrInvalidCallerLength   = &Error{Code: CodeInvalidCallerLength, Message: "invalid caller length"}
	ErrInvalidTokenLength    = &Error{Code: CodeInvalidTokenLength, Message: "invalid token length"}
	ErrInvalidPackage        = &Error{Code: CodeInvalidPackage, Message: "invalid package"}
	ErrUnknownState          = &Error{Code: CodeUnknownState, Message: "unknown state"}
	ErrUnknownChain          = &Error{Code: CodeUnknownChain, Message: "unknown chain"}
	ErrUnknownAllowance      = &Error{Code: CodeUnknownAllowance, Message: "unknown allowance"}
	ErrAllowanceNotFound     = &Error{Code: CodeAllowanceNotFound, Message: "allowance not found"}
	ErrMissingApproverRole   = &Error{Code: CodeMissingApproverRole, Message: "missing approver role"}
)

// Error represents a bridge error
type Error struct {
	Code    int32
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("bridge error %d: %s", e.Code, e.Message)
}

// Is reports whether target is a bridge error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Reason returns a short label suitable for metrics and logs.
func Reason(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal"
}
