// File: doc.go
// Title: Package Documentation for core/error
// Description: Package error provides the structured error type used across
//              the dynstr library, carrying codes, severities and details
//              while remaining a plain Go error.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial package documentation

// Package error provides structured, contextual errors for the dynstr library.
//
// The central type is Error, which implements the standard error interface
// and supports errors.Is/As/Unwrap chains. Each Error carries:
//
//   - a Code for machine-readable classification (VALUE_OUT_OF_RANGE, ...)
//   - a Severity for prioritization in logging and reporting
//   - an optional cause (the wrapped error)
//   - a details map with arbitrary contextual values
//   - the operation during which the error occurred
//
// Errors are created with New/Newf or by wrapping an existing error with
// Wrap/Wrapf, then enriched through the fluent With* methods:
//
//	err := error.New("index out of range").
//		WithCode(error.CodeValueOutOfRange).
//		WithSeverity(error.SeverityMedium).
//		WithOperation("insert").
//		WithDetail("index", 42)
//
// Callers normally do not use this package directly; the sibling errors
// package provides standardized constructors for the library's modules.
package error
