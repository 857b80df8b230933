// File: doc.go
// Title: Package Documentation for core/errors
// Description: Package errors provides THE STANDARD error handling interface
//              for all dynstr modules: standardized codes, constructors and
//              analysis helpers built on the core error package.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation for cross-module error standardization

// Package errors provides the standard error handling API for the dynstr
// library. All modules create their errors through this package so that
// callers see consistent codes and details regardless of which module
// rejected an operation.
//
// # Standardized Error Codes
//
// Error codes follow the pattern {MODULE}_{CATEGORY}:
//   - dynstr codes: DYNSTR_INDEX_OUT_OF_RANGE, DYNSTR_RANGE_INVALID,
//     DYNSTR_EMPTY_TARGET, DYNSTR_OPERATION_FAILED
//   - config codes: CONFIG_PARSE_ERROR, CONFIG_KEY_NOT_FOUND, ...
//   - log codes: LOG_INVALID_LEVEL, LOG_INVALID_FORMAT
//
// # Error Creation
//
// Module code uses the convenience constructors:
//
//	if index < 0 || index > length {
//		return errors.DynstrIndexOutOfRange("insert", index, length)
//	}
//
// or the fluent builder for less common shapes:
//
//	err := errors.NewErrorBuilder(errors.ModuleConfig).
//		Operation("load").
//		Messagef("cannot read %s", path).
//		Cause(ioErr).
//		Build()
//
// # Error Analysis
//
// Callers can classify errors without string matching:
//
//	if errors.IsModuleError(err, errors.ModuleDynstr) {
//		op := errors.GetErrorOperation(err)
//		log.Error("string operation rejected", log.Field("operation", op))
//	}
package errors
