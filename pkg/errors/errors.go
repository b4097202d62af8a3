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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Rule binding errors
	ErrUnknownField ErrorCode = "UNKNOWN_FIELD"
	ErrFieldValue   ErrorCode = "FIELD_VALUE"
	ErrSealedFilter ErrorCode = "SEALED_FILTER"
)

// RuleError represents a structured error with code and details
type RuleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RuleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RuleError) Unwrap() error {
	return e.Wrapped
}

// Is matches any RuleError carrying the same code
func (e *RuleError) Is(target error) bool {
	var targetErr *RuleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RuleError with the given code and message
func New(code ErrorCode, message string) *RuleError {
	return &RuleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RuleError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RuleError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a RuleError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *RuleError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RuleError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *RuleError) WithDetail(key string, value interface{}) *RuleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		return ruleErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RuleError
func GetErrorCode(err error) ErrorCode {
	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		return ruleErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RuleError
func GetErrorDetails(err error) map[string]interface{} {
	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		return ruleErr.Details
	}
	return nil
}
