// File: entry.go
// Title: Log Entry and Field Definitions
// Description: Defines the Entry type representing a single log record and
//              the Fields helpers for attaching structured key-value data.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	// Core log information
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	// Context information
	RequestID string

	// Custom fields
	Fields Fields

	// Error information
	Error error

	// Performance metrics
	Duration time.Duration
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// Duration creates a duration field for logging
func Duration(key string, duration time.Duration) Fields {
	return Fields{key: duration}
}

// Int creates an integer field for logging
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// Str creates a string field for logging
func Str(key, value string) Fields {
	return Fields{key: value}
}

// merge combines multiple field maps into one, later maps win on conflict
func merge(fieldMaps ...Fields) Fields {
	merged := make(Fields)
	for _, fields := range fieldMaps {
		for k, v := range fields {
			merged[k] = v
		}
	}
	return merged
}
