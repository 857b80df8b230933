// File: standards.go
// Title: Standardized Error Codes and Constructors
// Description: Defines module identifiers, standardized error codes and the
//              standard constructors used by all dynstr modules to create
//              consistent errors. Builds on the core error package.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation for cross-module error standardization

package errors

import (
	"fmt"
	"strings"

	dserror "github.com/msto63/dynstr/core/error"
)

// Module identifiers for error categorization
const (
	ModuleDynstr = "dynstr"
	ModuleConfig = "config"
	ModuleLog    = "log"
)

// Standardized error codes for all modules
const (
	// Common error codes
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"

	// Module-specific error codes - dynstr
	CodeDynstrIndexOutOfRange = "DYNSTR_INDEX_OUT_OF_RANGE"
	CodeDynstrRangeInvalid    = "DYNSTR_RANGE_INVALID"
	CodeDynstrEmptyTarget     = "DYNSTR_EMPTY_TARGET"
	CodeDynstrOperationFailed = "DYNSTR_OPERATION_FAILED"

	// Module-specific error codes - config
	CodeConfigNotFound        = "CONFIG_NOT_FOUND"
	CodeConfigParseError      = "CONFIG_PARSE_ERROR"
	CodeConfigInvalidFormat   = "CONFIG_INVALID_FORMAT"
	CodeConfigKeyNotFound     = "CONFIG_KEY_NOT_FOUND"
	CodeConfigInvalidType     = "CONFIG_INVALID_TYPE"
	CodeConfigOperationFailed = "CONFIG_OPERATION_FAILED"

	// Module-specific error codes - log
	CodeLogInvalidLevel    = "LOG_INVALID_LEVEL"
	CodeLogInvalidFormat   = "LOG_INVALID_FORMAT"
	CodeLogOperationFailed = "LOG_OPERATION_FAILED"
)

// StandardError creates a standardized error with module context
func StandardError(module, operation, message string) *dserror.Error {
	return dserror.New(message).
		WithCode(dserror.Code(getModuleErrorCode(module, operation))).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
		}).
		WithSeverity(dserror.SeverityMedium)
}

// ModuleError creates an error specific to a module operation, wrapping an
// optional cause and attaching the given details
func ModuleError(module, operation string, cause error, details map[string]interface{}) *dserror.Error {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["module"] = module
	details["operation"] = operation

	code := dserror.Code(getModuleErrorCode(module, operation))

	if cause != nil {
		return dserror.Wrap(cause, fmt.Sprintf("%s.%s failed", module, operation)).
			WithCode(code).
			WithOperation(operation).
			WithDetails(details).
			WithSeverity(dserror.SeverityHigh)
	}

	return dserror.New(fmt.Sprintf("%s.%s failed", module, operation)).
		WithCode(code).
		WithOperation(operation).
		WithDetails(details).
		WithSeverity(dserror.SeverityMedium)
}

// getModuleErrorCode derives a module-prefixed operation-failure code
func getModuleErrorCode(module, operation string) string {
	if operation == "" {
		return fmt.Sprintf("%s_%s", strings.ToUpper(module), CodeOperationFailed)
	}
	return fmt.Sprintf("%s_%s_FAILED", strings.ToUpper(module), strings.ToUpper(operation))
}
