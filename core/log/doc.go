// File: doc.go
// Title: Package Documentation for core/log
// Description: Package log provides leveled, structured logging for the
//              dynstr library and its CLI with JSON, text and console
//              output formats.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial package documentation

// Package log provides structured, leveled logging for dynstr.
//
// Loggers are cheap immutable values: the With* methods return configured
// clones, so a base logger can be shared and specialized per component or
// per request:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//		Name:   "dynstr-cli",
//	})
//	reqLogger := logger.WithRequestID(uuid.New().String())
//	reqLogger.Info("replace applied", log.Int("occurrences", n))
//
// LogError understands the structured errors of core/error and picks the
// log level from the error severity, attaching code, operation and details
// as fields.
package log
