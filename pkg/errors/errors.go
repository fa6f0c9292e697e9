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
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Scripts root errors
	ErrRootNotFound ErrorCode = "ROOT_NOT_FOUND"
	ErrRootInvalid  ErrorCode = "ROOT_INVALID"
	ErrRootAccess   ErrorCode = "ROOT_ACCESS"

	// FileSystem errors
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileCopy      ErrorCode = "FILE_COPY"
	ErrFileChmod     ErrorCode = "FILE_CHMOD"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"

	// Operation errors
	ErrOperationInvalid ErrorCode = "OPERATION_INVALID"
	ErrOperationExecute ErrorCode = "OPERATION_EXECUTE"
)

// PybinError represents a structured error with code and details
type PybinError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PybinError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PybinError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PybinError) Is(target error) bool {
	var targetErr *PybinError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PybinError with the given code and message
func New(code ErrorCode, message string) *PybinError {
	return &PybinError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PybinError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PybinError {
	return &PybinError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PybinError
func Wrap(err error, code ErrorCode, message string) *PybinError {
	if err == nil {
		return nil
	}
	return &PybinError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PybinError {
	if err == nil {
		return nil
	}
	return &PybinError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PybinError) WithDetail(key string, value interface{}) *PybinError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pybinErr *PybinError
	if errors.As(err, &pybinErr) {
		return pybinErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PybinError
func GetErrorCode(err error) ErrorCode {
	var pybinErr *PybinError
	if errors.As(err, &pybinErr) {
		return pybinErr.Code
	}
	return ErrUnknown
}
