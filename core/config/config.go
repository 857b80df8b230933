// File: config.go
// Title: Configuration Management Implementation
// Description: Implements the Config type for loading, parsing and accessing
//              configuration data from TOML and YAML files with environment
//              variable overrides and dot-notation key access.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	dserror "github.com/msto63/dynstr/core/error"
	dserrors "github.com/msto63/dynstr/core/errors"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values for missing keys
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, dserrors.InvalidInput(dserrors.ModuleConfig, "load", filePath, "non-empty file path")
	}

	format := options.Format
	if format == FormatAuto {
		var err error
		format, err = detectFormat(filePath)
		if err != nil {
			return nil, err
		}
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, dserrors.NewErrorBuilder(dserrors.ModuleConfig).
			Operation("load").
			Messagef("cannot read configuration file %s", filePath).
			Cause(err).
			Code(dserrors.CodeConfigNotFound).
			Detail("path", filePath).
			Severity(dserror.SeverityHigh).
			Build()
	}

	data := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(raw, &data); err != nil {
			return nil, dserrors.ConfigParseError(filePath, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, dserrors.ConfigParseError(filePath, err)
		}
	default:
		return nil, dserrors.NewErrorBuilder(dserrors.ModuleConfig).
			Operation("load").
			Messagef("unsupported configuration format %s", format).
			Code(dserrors.CodeConfigInvalidFormat).
			Build()
	}

	// Apply defaults for keys the file does not set
	for key, value := range options.Defaults {
		if _, exists := lookupPath(data, splitPath(key)); !exists {
			setPath(data, splitPath(key), value)
		}
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// NewFromMap creates a configuration from an in-memory map, mainly for
// defaults and tests
func NewFromMap(data map[string]interface{}) *Config {
	if data == nil {
		data = make(map[string]interface{})
	}
	return &Config{data: data, format: FormatTOML}
}

// detectFormat determines the format from the file extension
func detectFormat(filePath string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatTOML, dserrors.NewErrorBuilder(dserrors.ModuleConfig).
			Operation("detect_format").
			Messagef("cannot detect configuration format from %s", filePath).
			Code(dserrors.CodeConfigInvalidFormat).
			Detail("path", filePath).
			Build()
	}
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the detected configuration format
func (c *Config) Format() Format {
	return c.format
}

// Get returns the raw value for a dot-notation key. Environment variables
// take precedence when an EnvPrefix is configured: the key "log.level" with
// prefix "DYNSTR" is overridden by DYNSTR_LOG_LEVEL.
func (c *Config) Get(key string) (interface{}, bool) {
	if env, ok := c.envOverride(key); ok {
		return env, true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return lookupPath(c.data, splitPath(key))
}

// GetString returns the string value for key, or def when absent
func (c *Config) GetString(key, def string) string {
	v, ok := c.Get(key)
	if !ok {
		return def
	}
	switch val := v.(type) {
	case string:
		return val
	default:
		return def
	}
}

// GetInt returns the integer value for key, or def when absent or untyped
func (c *Config) GetInt(key string, def int) int {
	v, ok := c.Get(key)
	if !ok {
		return def
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n
		}
		return def
	default:
		return def
	}
}

// GetBool returns the boolean value for key, or def when absent or untyped
func (c *Config) GetBool(key string, def bool) bool {
	v, ok := c.Get(key)
	if !ok {
		return def
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
			return b
		}
		return def
	default:
		return def
	}
}

// MustGetString returns the string value for key or an error when absent
func (c *Config) MustGetString(key string) (string, error) {
	v, ok := c.Get(key)
	if !ok {
		return "", dserrors.ConfigKeyNotFound(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", dserrors.NewErrorBuilder(dserrors.ModuleConfig).
			Operation("get").
			Messagef("configuration key %q is not a string", key).
			Code(dserrors.CodeConfigInvalidType).
			Detail("key", key).
			Build()
	}
	return s, nil
}

// Has reports whether the key is present in the configuration
func (c *Config) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// envOverride checks for an environment variable overriding the key
func (c *Config) envOverride(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	envKey := c.envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return os.LookupEnv(envKey)
}

// splitPath splits a dot-notation key into path segments
func splitPath(key string) []string {
	return strings.Split(key, ".")
}

// lookupPath navigates nested maps along the path segments
func lookupPath(data map[string]interface{}, path []string) (interface{}, bool) {
	current := data
	for i, segment := range path {
		value, ok := current[segment]
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return value, true
		}
		next, ok := toStringMap(value)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// setPath writes a value at the path, creating intermediate maps
func setPath(data map[string]interface{}, path []string, value interface{}) {
	current := data
	for i, segment := range path {
		if i == len(path)-1 {
			current[segment] = value
			return
		}
		next, ok := toStringMap(current[segment])
		if !ok {
			next = make(map[string]interface{})
			current[segment] = next
		}
		current = next
	}
}

// toStringMap normalizes the map types produced by the TOML and YAML decoders
func toStringMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		normalized := make(map[string]interface{}, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			normalized[key] = val
		}
		return normalized, true
	default:
		return nil, false
	}
}
