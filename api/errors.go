// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for byteringbuffer.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrNotSupported    = fmt.Errorf("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeInvalidArgument ErrorCode = iota + 1
	ErrCodeOutOfRange
	ErrCodeNotSupported
)

// String returns a short name for the code.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeInvalidArgument:
		return "invalid argument"
	case ErrCodeOutOfRange:
		return "out of range"
	case ErrCodeNotSupported:
		return "not supported"
	default:
		return "unknown"
	}
}

// Error represents a structured error with code and context.
// Precondition violations are raised as panics carrying an *Error.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps argument codes onto ErrInvalidArgument so errors.Is works on recovered panics.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidArgument, ErrCodeOutOfRange:
		return ErrInvalidArgument
	case ErrCodeNotSupported:
		return ErrNotSupported
	}
	return nil
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
