// Package errors provides structured error types for cinedex.
//
// The catalog client returns plain wrapped errors (transport failures,
// upstream status errors, decode failures). This package classifies them
// into machine-readable codes so the CLI and the local server can present
// them consistently:
//   - NETWORK_ERROR / TIMEOUT: the upstream could not be reached in time
//   - NOT_FOUND: the upstream answered 404
//   - UPSTREAM_ERROR: any other non-2xx upstream status
//   - DECODE_ERROR: the upstream body was not the expected JSON
//   - INVALID_INPUT: a CLI flag or server query parameter was rejected
//
// # Usage
//
//	items, err := client.ListMovies(ctx, catalog.None[int]())
//	if err != nil {
//	    e := errors.Classify(err)
//	    http.Error(w, e.Message, errors.HTTPStatus(e.Code))
//	}
package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/matzehuels/cinedex/pkg/cache"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeNetwork      Code = "NETWORK_ERROR"
	ErrCodeTimeout      Code = "TIMEOUT"
	ErrCodeUpstream     Code = "UPSTREAM_ERROR"
	ErrCodeDecode       Code = "DECODE_ERROR"
	ErrCodeCanceled     Code = "CANCELED"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Status  int    // Upstream HTTP status, when the failure came from one
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// statusCoder is implemented by upstream status errors (catalog.StatusError).
type statusCoder interface {
	HTTPStatus() int
}

// Classify maps an error returned by the catalog client onto a coded *Error.
// An error that already carries a code is returned unchanged. Classify(nil)
// returns nil.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var sc statusCoder
	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		return Wrap(ErrCodeCanceled, err, "request canceled")
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return Wrap(ErrCodeTimeout, err, "catalog API timed out")
	case errors.Is(err, cache.ErrNotFound):
		c := Wrap(ErrCodeNotFound, err, "not found in catalog")
		c.Status = http.StatusNotFound
		return c
	case errors.As(err, &sc):
		c := Wrap(ErrCodeUpstream, err, "catalog API returned HTTP %d", sc.HTTPStatus())
		c.Status = sc.HTTPStatus()
		return c
	case errors.Is(err, cache.ErrDecode):
		return Wrap(ErrCodeDecode, err, "catalog API returned a malformed response")
	case errors.Is(err, cache.ErrNetwork):
		return Wrap(ErrCodeNetwork, err, "catalog API unreachable")
	default:
		return Wrap(ErrCodeInternal, err, "unexpected error")
	}
}

// HTTPStatus returns the status the local server answers with for code.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeNetwork, ErrCodeUpstream, ErrCodeDecode:
		return http.StatusBadGateway
	case ErrCodeCanceled:
		return 499 // client closed request
	default:
		return http.StatusInternalServerError
	}
}
