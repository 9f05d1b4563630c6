// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeParse indicates input text that could not be parsed as a number
	TypeParse Type = "PARSE_ERROR"

	// TypeRange indicates a value outside its physical domain
	TypeRange Type = "RANGE_ERROR"

	// TypeNavigation indicates an invalid menu selection
	TypeNavigation Type = "NAVIGATION_ERROR"

	// TypeNotFound indicates a calculator or material not found
	TypeNotFound Type = "NOT_FOUND"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithField names the input field the error refers to
func (e *Error) WithField(field string) *Error {
	return e.WithContext("field", field)
}

// Field returns the named input field, if any
func (e *Error) Field() string {
	if f, ok := e.Context["field"].(string); ok {
		return f
	}
	return ""
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Recoverable reports whether the error can be retried interactively
func Recoverable(err error) bool {
	return IsType(err, TypeParse) || IsType(err, TypeRange) || IsType(err, TypeNavigation)
}

// Parse creates a parse error
func Parse(message string) *Error {
	return New(TypeParse, message)
}

// Parsef creates a formatted parse error
func Parsef(format string, args ...interface{}) *Error {
	return Newf(TypeParse, format, args...)
}

// Range creates a range error
func Range(message string) *Error {
	return New(TypeRange, message)
}

// Rangef creates a formatted range error
func Rangef(format string, args ...interface{}) *Error {
	return Newf(TypeRange, format, args...)
}

// Navigation creates a navigation error
func Navigation(message string) *Error {
	return New(TypeNavigation, message)
}

// NotFound creates a not found error
func NotFound(kind, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", kind, identifier)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
