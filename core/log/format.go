// File: format.go
// Title: Log Output Formatters
// Description: Implements the output formats for log entries: structured
//              JSON for machine consumption, plain text for files and a
//              colored console format for development.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation with JSON, text and console formats

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	dserrors "github.com/msto63/dynstr/core/errors"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs structured JSON logs (recommended for production)
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatConsole outputs colored console logs for development
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	default:
		return FormatJSON, dserrors.NewErrorBuilder(dserrors.ModuleLog).
			Operation("parse_format").
			Messagef("unknown log format %q", format).
			Code(dserrors.CodeLogInvalidFormat).
			Detail("input", format).
			Build()
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewJSONFormatter()
	}
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	// TimestampFormat specifies the timestamp format
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339Nano}
}

// Format serializes the entry as a single JSON line
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := map[string]interface{}{
		"timestamp": entry.Timestamp.Format(f.TimestampFormat),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.RequestID != "" {
		data["request_id"] = entry.RequestID
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}
	if entry.Duration > 0 {
		data["duration_ms"] = float64(entry.Duration) / float64(time.Millisecond)
	}
	for k, v := range entry.Fields {
		if _, reserved := data[k]; !reserved {
			data[k] = normalizeValue(v)
		}
	}

	line, err := json.Marshal(data)
	if err != nil {
		return nil, dserrors.OperationFailed(dserrors.ModuleLog, "format_json", err)
	}
	return append(line, '\n'), nil
}

// normalizeValue converts non-JSON-serializable values to strings
func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case error:
		return val.Error()
	case time.Duration:
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return v
	}
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	TimestampFormat string
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "2006-01-02 15:04:05.000"}
}

// Format renders the entry as "timestamp [LEVEL] logger: message key=value"
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	sb.WriteString(" [")
	sb.WriteString(strings.ToUpper(entry.Level.String()))
	sb.WriteString("]")
	if entry.Logger != "" {
		sb.WriteString(" ")
		sb.WriteString(entry.Logger)
		sb.WriteString(":")
	}
	sb.WriteString(" ")
	sb.WriteString(entry.Message)

	appendFields(&sb, entry)

	sb.WriteString("\n")
	return []byte(sb.String()), nil
}

// ANSI color codes for console output
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorPurple = "\033[35m"
)

// ConsoleFormatter formats log entries with ANSI colors for terminals
type ConsoleFormatter struct {
	TimestampFormat string
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TimestampFormat: "15:04:05.000"}
}

// Format renders the entry with a colored level tag
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(colorGray)
	sb.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	sb.WriteString(colorReset)
	sb.WriteString(" ")
	sb.WriteString(levelColor(entry.Level))
	sb.WriteString(fmt.Sprintf("%-5s", strings.ToUpper(entry.Level.String())))
	sb.WriteString(colorReset)
	if entry.Logger != "" {
		sb.WriteString(" ")
		sb.WriteString(colorCyan)
		sb.WriteString(entry.Logger)
		sb.WriteString(colorReset)
	}
	sb.WriteString(" ")
	sb.WriteString(entry.Message)

	appendFields(&sb, entry)

	sb.WriteString("\n")
	return []byte(sb.String()), nil
}

// levelColor maps a level to its console color
func levelColor(level Level) string {
	switch level {
	case LevelTrace, LevelDebug:
		return colorGray
	case LevelInfo:
		return colorGreen
	case LevelWarn:
		return colorYellow
	case LevelError, LevelFatal:
		return colorRed
	default:
		return colorPurple
	}
}

// appendFields writes the non-core entry data as sorted key=value pairs
func appendFields(sb *strings.Builder, entry *Entry) {
	if entry.RequestID != "" {
		sb.WriteString(" request_id=")
		sb.WriteString(entry.RequestID)
	}
	if entry.Error != nil {
		sb.WriteString(" error=")
		sb.WriteString(fmt.Sprintf("%q", entry.Error.Error()))
	}
	if entry.Duration > 0 {
		sb.WriteString(" duration=")
		sb.WriteString(entry.Duration.String())
	}

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		sb.WriteString(" ")
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(fmt.Sprintf("%v", normalizeValue(entry.Fields[k])))
	}
}
