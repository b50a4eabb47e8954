package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Layout errors
	ErrInvalidItem  ErrorCode = "INVALID_ITEM"
	ErrInvalidColor ErrorCode = "INVALID_COLOR"

	// Sink errors
	ErrSinkNil   ErrorCode = "SINK_NIL"
	ErrSinkWrite ErrorCode = "SINK_WRITE"
	ErrSinkFlush ErrorCode = "SINK_FLUSH"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileCreate ErrorCode = "FILE_CREATE"
)

// OaklogError represents a structured error with code and details
type OaklogError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *OaklogError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *OaklogError) Unwrap() error {
	return e.Wrapped
}

// Is matches any *OaklogError carrying the same code
func (e *OaklogError) Is(target error) bool {
	var targetErr *OaklogError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new OaklogError with the given code and message
func New(code ErrorCode, message string) *OaklogError {
	return &OaklogError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new OaklogError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *OaklogError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *OaklogError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *OaklogError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *OaklogError) WithDetail(key string, value interface{}) *OaklogError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error, or any error it wraps or joins, has a
// specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	return errors.Is(err, &OaklogError{Code: code})
}

// GetErrorCode returns the code of the first OaklogError in err's chain, or
// ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var oakErr *OaklogError
	if errors.As(err, &oakErr) {
		return oakErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an OaklogError
func GetErrorDetails(err error) map[string]interface{} {
	var oakErr *OaklogError
	if errors.As(err, &oakErr) {
		return oakErr.Details
	}
	return nil
}

// Join is errors.Join, re-exported so callers importing this package under
// the name errors keep access to it.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
