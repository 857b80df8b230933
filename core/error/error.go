// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used across the dynstr
//              library. Errors carry a code, a severity, an optional cause
//              and a details map while staying compatible with Go's standard
//              error interface and errors.Is/As/Unwrap chains.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation with contextual errors

package error

import (
	"encoding/json"
	"fmt"
	"time"
)

// Error represents a structured error with code, severity and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	// Context and metadata
	details   map[string]interface{}
	operation string
}

// MaxErrorChainDepth limits the depth of error wrapping to keep chains
// readable and to guard against accidental self-referential wrapping.
const MaxErrorChainDepth = 15

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Preserve code and severity when wrapping one of our own errors
	if derr, ok := err.(*Error); ok {
		if depth := chainDepth(derr); depth >= MaxErrorChainDepth {
			root := derr.RootCause()
			return &Error{
				message:   fmt.Sprintf("%s (chain truncated at depth %d): %v", message, MaxErrorChainDepth, root),
				code:      derr.code,
				severity:  SeverityHigh,
				timestamp: time.Now(),
				details:   map[string]interface{}{"truncated": true},
			}
		}
		return &Error{
			message:   message,
			cause:     derr,
			code:      derr.code,
			severity:  derr.severity,
			timestamp: time.Now(),
			details:   make(map[string]interface{}),
		}
	}

	return &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// chainDepth calculates the depth of an error chain
func chainDepth(err *Error) int {
	depth := 0
	for current := err; current != nil; {
		depth++
		next, ok := current.cause.(*Error)
		if !ok {
			break
		}
		current = next
	}
	return depth
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying cause for errors.Is/As traversal
func (e *Error) Unwrap() error {
	return e.cause
}

// Message returns the error message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Operation returns the operation during which the error occurred
func (e *Error) Operation() string {
	return e.operation
}

// Timestamp returns the creation time of the error
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the details map
func (e *Error) Details() map[string]interface{} {
	details := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		details[k] = v
	}
	return details
}

// Detail returns a single detail value and whether it is present
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// RootCause returns the innermost error of the chain
func (e *Error) RootCause() error {
	var current error = e
	for i := 0; i < MaxErrorChainDepth*2; i++ {
		derr, ok := current.(*Error)
		if !ok || derr.cause == nil {
			return current
		}
		current = derr.cause
	}
	return current
}

// WithCode sets the error code and returns the error for chaining
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithSeverity sets the severity and returns the error for chaining
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation sets the operation name and returns the error for chaining
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a single detail key-value pair
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails merges multiple details into the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// jsonError is the serialization shape of Error
type jsonError struct {
	Message   string                 `json:"message"`
	Code      string                 `json:"code"`
	Severity  string                 `json:"severity"`
	Operation string                 `json:"operation,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Cause     string                 `json:"cause,omitempty"`
}

// MarshalJSON serializes the error for structured logging and transport
func (e *Error) MarshalJSON() ([]byte, error) {
	je := jsonError{
		Message:   e.message,
		Code:      e.code.String(),
		Severity:  e.severity.String(),
		Operation: e.operation,
		Timestamp: e.timestamp,
	}
	if len(e.details) > 0 {
		je.Details = e.details
	}
	if e.cause != nil {
		je.Cause = e.cause.Error()
	}
	return json.Marshal(je)
}

// GetCode extracts the code from any error, returning CodeUnknown for
// errors that are not *Error
func GetCode(err error) Code {
	if derr, ok := err.(*Error); ok {
		return derr.code
	}
	return CodeUnknown
}

// GetSeverity extracts the severity from any error, returning
// SeverityMedium for errors that are not *Error
func GetSeverity(err error) Severity {
	if derr, ok := err.(*Error); ok {
		return derr.severity
	}
	return SeverityMedium
}

// HasCode reports whether err is an *Error carrying the given code
func HasCode(err error, code Code) bool {
	if derr, ok := err.(*Error); ok {
		return derr.code == code
	}
	return false
}
