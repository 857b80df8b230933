// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization in logging and CLI reporting. Severity is
//              orthogonal to the error code: a VALUE_OUT_OF_RANGE can be a
//              harmless user typo in the CLI or a serious caller bug.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, missing optional configuration keys
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a rejected operation the caller can retry with corrected arguments
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: unreadable configuration file, failing operation chains
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the program unusable
	// Examples: internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}
