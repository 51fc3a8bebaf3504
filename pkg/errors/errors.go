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

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrDirOpen      ErrorCode = "DIR_OPEN"
	ErrDirList      ErrorCode = "DIR_LIST"
)

// DircolorsError represents a structured error with code and details
type DircolorsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DircolorsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DircolorsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DircolorsError) Is(target error) bool {
	var targetErr *DircolorsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DircolorsError with the given code and message
func New(code ErrorCode, message string) *DircolorsError {
	return &DircolorsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DircolorsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DircolorsError {
	return &DircolorsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DircolorsError
func Wrap(err error, code ErrorCode, message string) *DircolorsError {
	if err == nil {
		return nil
	}
	return &DircolorsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DircolorsError {
	if err == nil {
		return nil
	}
	return &DircolorsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DircolorsError) WithDetail(key string, value interface{}) *DircolorsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DircolorsError) WithDetails(details map[string]interface{}) *DircolorsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dcErr *DircolorsError
	if errors.As(err, &dcErr) {
		return dcErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DircolorsError
func GetErrorCode(err error) ErrorCode {
	var dcErr *DircolorsError
	if errors.As(err, &dcErr) {
		return dcErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DircolorsError
func GetErrorDetails(err error) map[string]interface{} {
	var dcErr *DircolorsError
	if errors.As(err, &dcErr) {
		return dcErr.Details
	}
	return nil
}
