// Package errs provides a structured error type with wrapping and stable
// codes, so callers can branch on failure class instead of string matching.
package errs

import (
	stderrs "errors"
	"fmt"
)

// Code classifies an error. Values are stable; add sparingly.
type Code uint16

const (
	// CodeUnknown is for unclassified errors
	CodeUnknown Code = iota

	// CodeValidation is for timeframe/window validation failures
	CodeValidation

	// CodeInvalidArgument is for bad input parameters
	CodeInvalidArgument

	// CodeUnauthorized is for auth failures
	CodeUnauthorized

	// CodeForbidden is for access control failures
	CodeForbidden

	// CodeNotFound is for missing resources
	CodeNotFound

	// CodeRateLimited is for upstream rate limiting
	CodeRateLimited

	// CodeUnavailable is for transient upstream errors where retry may succeed
	CodeUnavailable

	// CodeGateway is for bad-gateway class upstream errors (502/503/504)
	CodeGateway

	// CodeQuery is for malformed or rejected warehouse queries
	CodeQuery
)

// Error is the structured error type. msg is developer facing; code is
// machine facing; orig is the wrapped cause.
type Error struct {
	orig error
	msg  string
	code Code
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() Code { return e.code }

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf extracts a Code from any error, defaulting to Unknown
func CodeOf(err error) Code {
	if e, ok := As(err); ok {
		return e.code
	}
	return CodeUnknown
}

// IsCode reports whether err carries the given code
func IsCode(err error, code Code) bool { return CodeOf(err) == code }

// Retryable reports whether a retry of the failed operation may succeed.
// Unknown errors are deliberately not retryable: unrecognized failures
// should surface, not loop silently.
func Retryable(err error) bool {
	switch CodeOf(err) {
	case CodeUnavailable, CodeGateway:
		return true
	default:
		return false
	}
}

// IsGateway reports whether err is in the bad-gateway class, which gets a
// steeper backoff schedule and counts toward the circuit breaker.
func IsGateway(err error) bool { return IsCode(err, CodeGateway) }

// Constructors

// New returns a new *Error with the given code and message
func New(code Code, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code Code, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code Code, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code Code, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// FromHTTPStatus maps an upstream HTTP status into a Code
func FromHTTPStatus(status int) Code {
	switch {
	case status == 401:
		return CodeUnauthorized
	case status == 403:
		return CodeForbidden
	case status == 404:
		return CodeNotFound
	case status == 429:
		return CodeRateLimited
	case status == 502 || status == 503 || status == 504:
		return CodeGateway
	case status >= 400 && status < 500:
		return CodeInvalidArgument
	case status >= 500:
		return CodeUnavailable
	default:
		return CodeUnknown
	}
}
