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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Open errors
	ErrFileOpen   ErrorCode = "FILE_OPEN"
	ErrFileCreate ErrorCode = "FILE_CREATE"

	// Stream errors
	ErrRead  ErrorCode = "STREAM_READ"
	ErrWrite ErrorCode = "STREAM_WRITE"
	ErrClose ErrorCode = "STREAM_CLOSE"
)

// UniqrError represents a structured error with code and details
type UniqrError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *UniqrError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *UniqrError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *UniqrError) Is(target error) bool {
	var targetErr *UniqrError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new UniqrError with the given code and message
func New(code ErrorCode, message string) *UniqrError {
	return &UniqrError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new UniqrError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *UniqrError {
	return &UniqrError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a UniqrError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &UniqrError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &UniqrError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *UniqrError) WithDetail(key string, value interface{}) *UniqrError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetail attaches a detail to err if it is a UniqrError and returns err.
func WithDetail(err error, key string, value interface{}) error {
	var uerr *UniqrError
	if errors.As(err, &uerr) {
		uerr.WithDetail(key, value)
	}
	return err
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var uerr *UniqrError
	if errors.As(err, &uerr) {
		return uerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a UniqrError
func GetErrorCode(err error) ErrorCode {
	var uerr *UniqrError
	if errors.As(err, &uerr) {
		return uerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a UniqrError
func GetErrorDetails(err error) map[string]interface{} {
	var uerr *UniqrError
	if errors.As(err, &uerr) {
		return uerr.Details
	}
	return nil
}
