// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type providing leveled, structured
//              logging with contextual fields and request IDs. Loggers are
//              immutable: the With* methods return configured clones, so a
//              logger can be shared and specialized safely.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation with structured logging

package log

import (
	"io"
	"os"
	"sync"
	"time"

	dserror "github.com/msto63/dynstr/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	// Configuration
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	// Context fields that are added to all log entries
	contextFields Fields
	requestID     string

	// Thread safety for the output writer
	mutex sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewJSONFormatter(),
		output:        os.Stdout,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		output:        config.Output,
		name:          config.Name,
		contextFields: make(Fields),
	}
	if config.Output == nil {
		logger.output = os.Stdout
	}
	logger.formatter = GetFormatter(config.Format)
	return logger
}

// clone returns a copy of the logger sharing the output writer
func (l *Logger) clone() *Logger {
	fields := make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		fields[k] = v
	}
	return &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: fields,
		requestID:     l.requestID,
	}
}

// WithLevel returns a clone with the given minimum log level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat returns a clone with the given output format
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithOutput returns a clone writing to the given destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	return clone
}

// WithName returns a clone with the given logger name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a clone carrying an additional context field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a clone carrying additional context fields
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithRequestID returns a clone tagged with the given request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	clone := l.clone()
	clone.requestID = requestID
	return clone
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs a fatal level message and exits the program
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs a dynstr error with its full context, choosing the log
// level from the error severity
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	derr, ok := err.(*dserror.Error)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     derr.Code().String(),
		"error_severity": derr.Severity().String(),
	}
	if derr.Operation() != "" {
		fields["error_operation"] = derr.Operation()
	}
	for k, v := range derr.Details() {
		fields["error_"+k] = v
	}

	switch derr.Severity() {
	case dserror.SeverityLow:
		l.log(LevelInfo, derr.Message(), err, fields)
	case dserror.SeverityMedium:
		l.log(LevelWarn, derr.Message(), err, fields)
	default:
		l.log(LevelError, derr.Message(), err, fields)
	}
}

// IsLevelEnabled reports whether messages at the given level are emitted
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level >= l.level
}

// GetLevel returns the current minimum log level
func (l *Logger) GetLevel() Level {
	return l.level
}

// log assembles and writes a single entry
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !l.IsLevelEnabled(level) {
		return
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Logger:    l.name,
		RequestID: l.requestID,
		Error:     err,
		Fields:    merge(append([]Fields{l.contextFields}, fields...)...),
	}

	line, ferr := l.formatter.Format(entry)
	if ferr != nil {
		// Formatting must never take the program down; fall back to a
		// minimal plain line
		line = []byte(entry.Timestamp.Format(time.RFC3339) + " [" + level.String() + "] " + message + "\n")
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	_, _ = l.output.Write(line)
}
