package core

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode string

const (
	// Transform errors
	ErrorCodeInvalidTokenFormat ErrorCode = "INVALID_TOKEN_FORMAT"
	ErrorCodeOutputWrite        ErrorCode = "OUTPUT_WRITE_FAILED"

	// Configuration errors
	ErrorCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrorCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrorCodeConfigWrite    ErrorCode = "CONFIG_WRITE_FAILED"

	// Validation errors
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Runtime errors
	ErrorCodePanicRecovered ErrorCode = "PANIC_RECOVERED"
)

// Error represents a structured error with code and metadata
type Error struct {
	Err      error          `json:"error"`
	Code     ErrorCode      `json:"code"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewError creates a new structured error for domain boundaries
func NewError(err error, code ErrorCode, metadata map[string]any) *Error {
	return &Error{
		Err:      err,
		Code:     code,
		Metadata: metadata,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if len(e.Metadata) > 0 {
		return fmt.Sprintf("[%s] %v (metadata: %v)", e.Code, e.Err, e.Metadata)
	}
	return fmt.Sprintf("[%s] %v", e.Code, e.Err)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// HasCode reports whether err carries the given code anywhere in its chain
func HasCode(err error, code ErrorCode) bool {
	return err != nil && errors.Is(err, &Error{Code: code})
}
