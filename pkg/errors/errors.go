// Package errors provides structured error types for codegraph.
//
// Every error carries a machine-readable [Code] next to its message, so the
// CLI can choose an exit status and print a short message while callers
// still match on the code:
//
//	if errors.Is(err, errors.ErrCodeInvalidArgument) {
//	    // caller passed bad roots, caps or weights
//	}
//
// Codes follow a hierarchical naming convention:
//   - INVALID_*: input validation failures
//   - FILE_NOT_FOUND: a graph or config file does not exist
//   - CYCLES_FOUND: a strict cycle check found at least one cycle
//   - UNSUPPORTED, INTERNAL_ERROR: everything else
//
// The engine packages (graph, layering, ordering, risk, critical) only ever
// return [ErrCodeInvalidArgument]. Partial input such as dangling edges or
// missing metrics is never an error.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// ErrCodeInvalidArgument marks bad engine arguments: empty roots,
	// non-positive caps, weights not summing to 1, negative depth.
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	// ErrCodeInvalidInput marks malformed identifiers or flag values.
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	// ErrCodeInvalidFormat marks graph files that fail to decode.
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	// ErrCodeInvalidConfig marks config files and environment overrides
	// that fail validation.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// ErrCodeCyclesFound is a check failure, not a usage error.
	ErrCodeCyclesFound Code = "CYCLES_FOUND"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeUnsupported  Code = "UNSUPPORTED"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

// Unwrap exposes the cause to the standard errors package.
func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// InvalidArgument is shorthand for New(ErrCodeInvalidArgument, ...).
func InvalidArgument(format string, args ...any) *Error {
	return New(ErrCodeInvalidArgument, format, args...)
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// if there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns err without codes: the messages of nested *Errors
// joined by ": ". Plain errors are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + UserMessage(e.Cause)
	}
	return e.Message
}

// ExitCode maps err to a process exit status: 0 for nil, 2 for usage
// errors (bad arguments, input or config), 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetCode(err) {
	case ErrCodeInvalidArgument, ErrCodeInvalidInput, ErrCodeInvalidConfig:
		return 2
	}
	return 1
}
