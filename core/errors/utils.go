// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the error builder, module-specific convenience
//              constructors and error analysis helpers used across the
//              dynstr modules for consistent error patterns.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation of shared error utilities

package errors

import (
	"fmt"

	dserror "github.com/msto63/dynstr/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  dserror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: dserror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity dserror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *dserror.Error {
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module, eb.operation)
	}
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *dserror.Error
	if eb.cause != nil {
		err = dserror.Wrap(eb.cause, eb.message)
	} else {
		err = dserror.New(eb.message)
	}

	return err.
		WithCode(dserror.Code(eb.code)).
		WithOperation(eb.operation).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS FOR ALL dynstr MODULES
// =============================================================================
// These functions provide a consistent interface for creating errors across
// all dynstr modules. Use these instead of fmt.Errorf() or errors.New()

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *dserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(dserror.SeverityMedium).
		Build()
}

// OutOfRange creates a standardized out-of-range error
func OutOfRange(module, operation string, value, min, max interface{}) *dserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("validation failed: value out of range in %s.%s", module, operation).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(dserror.SeverityMedium).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *dserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Severity(dserror.SeverityHigh).
		Build()
}

// =============================================================================
// dynstr convenience constructors
// =============================================================================

// DynstrIndexOutOfRange reports an insertion index outside [0, length]
func DynstrIndexOutOfRange(operation string, index, length int) *dserror.Error {
	return NewErrorBuilder(ModuleDynstr).
		Operation(operation).
		Messagef("index %d out of range [0, %d]", index, length).
		Code(CodeDynstrIndexOutOfRange).
		Detail("index", index).
		Detail("length", length).
		Severity(dserror.SeverityMedium).
		Build()
}

// DynstrRangeInvalid reports a removal range violating 0 <= start <= end <= length
func DynstrRangeInvalid(operation string, start, end, length int) *dserror.Error {
	return NewErrorBuilder(ModuleDynstr).
		Operation(operation).
		Messagef("range [%d, %d) invalid for length %d", start, end, length).
		Code(CodeDynstrRangeInvalid).
		Detail("start", start).
		Detail("end", end).
		Detail("length", length).
		Severity(dserror.SeverityMedium).
		Build()
}

// DynstrEmptyTarget reports an empty search target where a non-empty one is required
func DynstrEmptyTarget(operation string) *dserror.Error {
	return NewErrorBuilder(ModuleDynstr).
		Operation(operation).
		Messagef("empty target for %s.%s", ModuleDynstr, operation).
		Code(CodeDynstrEmptyTarget).
		Detail("expected", "non-empty target").
		Severity(dserror.SeverityMedium).
		Build()
}

// ConfigParseError reports an unparseable configuration file
func ConfigParseError(path string, cause error) *dserror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("parse").
		Messagef("cannot parse configuration file %s", path).
		Cause(cause).
		Code(CodeConfigParseError).
		Detail("path", path).
		Severity(dserror.SeverityHigh).
		Build()
}

// ConfigKeyNotFound reports a missing configuration key
func ConfigKeyNotFound(key string) *dserror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("get").
		Messagef("configuration key %q not found", key).
		Code(CodeConfigKeyNotFound).
		Detail("key", key).
		Severity(dserror.SeverityLow).
		Build()
}

// =============================================================================
// Error analysis helpers
// =============================================================================

// IsModuleError checks whether err originates from the given module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}

// GetErrorModule extracts the module name from an error, or ""
func GetErrorModule(err error) string {
	derr, ok := err.(*dserror.Error)
	if !ok {
		return ""
	}
	if m, ok := derr.Detail("module"); ok {
		if s, ok := m.(string); ok {
			return s
		}
	}
	return ""
}

// GetErrorOperation extracts the operation name from an error, or ""
func GetErrorOperation(err error) string {
	derr, ok := err.(*dserror.Error)
	if !ok {
		return ""
	}
	if derr.Operation() != "" {
		return derr.Operation()
	}
	if op, ok := derr.Detail("operation"); ok {
		if s, ok := op.(string); ok {
			return s
		}
	}
	return ""
}

// IsModuleOperation checks whether err belongs to the given module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return IsModuleError(err, module) && GetErrorOperation(err) == operation
}
