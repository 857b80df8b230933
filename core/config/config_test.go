// File: config_test.go
// Title: Unit Tests for Configuration Management
// Description: Unit tests for TOML and YAML loading, format auto-detection,
//              dot-notation access, defaults and environment variable
//              overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"

	dserror "github.com/msto63/dynstr/core/error"
	dserrors "github.com/msto63/dynstr/core/errors"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write temp file: %v", err)
	}
	return path
}

const tomlContent = `
[log]
level = "debug"
format = "console"

[split]
sep = ","

[limits]
max_parts = 16
strict = true
`

const yamlContent = `
log:
  level: warn
  format: json
split:
  sep: ";"
limits:
  max_parts: 8
  strict: false
`

func TestLoadTOML(t *testing.T) {
	path := writeTempFile(t, "config.toml", tomlContent)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Format() != FormatTOML {
		t.Errorf("Format() = %v; want toml", cfg.Format())
	}
	if got := cfg.GetString("log.level", "info"); got != "debug" {
		t.Errorf("log.level = %q; want debug", got)
	}
	if got := cfg.GetString("split.sep", " "); got != "," {
		t.Errorf("split.sep = %q; want ,", got)
	}
	if got := cfg.GetInt("limits.max_parts", 0); got != 16 {
		t.Errorf("limits.max_parts = %d; want 16", got)
	}
	if got := cfg.GetBool("limits.strict", false); !got {
		t.Error("limits.strict = false; want true")
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTempFile(t, "config.yaml", yamlContent)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Format() != FormatYAML {
		t.Errorf("Format() = %v; want yaml", cfg.Format())
	}
	if got := cfg.GetString("log.level", "info"); got != "warn" {
		t.Errorf("log.level = %q; want warn", got)
	}
	if got := cfg.GetInt("limits.max_parts", 0); got != 8 {
		t.Errorf("limits.max_parts = %d; want 8", got)
	}
	if got := cfg.GetBool("limits.strict", true); got {
		t.Error("limits.strict = true; want false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("loading a missing file should fail")
	}
	if !dserror.HasCode(err, dserror.Code(dserrors.CodeConfigNotFound)) {
		t.Errorf("error code = %v; want %s", dserror.GetCode(err), dserrors.CodeConfigNotFound)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load("   "); err == nil {
		t.Fatal("loading a blank path should fail")
	}
}

func TestLoadInvalidContent(t *testing.T) {
	path := writeTempFile(t, "broken.toml", "this is = not [valid toml")

	_, err := Load(path)
	if err == nil {
		t.Fatal("parsing invalid TOML should fail")
	}
	if !dserror.HasCode(err, dserror.Code(dserrors.CodeConfigParseError)) {
		t.Errorf("error code = %v; want %s", dserror.GetCode(err), dserrors.CodeConfigParseError)
	}
}

func TestDetectFormatUnknownExtension(t *testing.T) {
	path := writeTempFile(t, "config.ini", "key=value")

	if _, err := Load(path); err == nil {
		t.Fatal("unknown extension should fail auto-detection")
	}
}

func TestDefaults(t *testing.T) {
	path := writeTempFile(t, "config.toml", "[log]\nlevel = \"debug\"\n")

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"log.level":  "info",
			"log.format": "json",
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions failed: %v", err)
	}

	// File value wins over the default
	if got := cfg.GetString("log.level", ""); got != "debug" {
		t.Errorf("log.level = %q; want debug", got)
	}
	// Default fills the missing key
	if got := cfg.GetString("log.format", ""); got != "json" {
		t.Errorf("log.format = %q; want json", got)
	}
}

func TestEnvOverride(t *testing.T) {
	path := writeTempFile(t, "config.toml", tomlContent)

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: "DYNSTRTEST",
	})
	if err != nil {
		t.Fatalf("LoadWithOptions failed: %v", err)
	}

	t.Setenv("DYNSTRTEST_LOG_LEVEL", "error")

	if got := cfg.GetString("log.level", "info"); got != "error" {
		t.Errorf("log.level with env override = %q; want error", got)
	}
	// Keys without an override still come from the file
	if got := cfg.GetString("split.sep", " "); got != "," {
		t.Errorf("split.sep = %q; want ,", got)
	}
}

func TestMustGetString(t *testing.T) {
	cfg := NewFromMap(map[string]interface{}{
		"name":  "dynstr",
		"count": 3,
	})

	if got, err := cfg.MustGetString("name"); err != nil || got != "dynstr" {
		t.Errorf("MustGetString(name) = %q, %v; want dynstr, nil", got, err)
	}

	if _, err := cfg.MustGetString("missing"); err == nil {
		t.Error("MustGetString on a missing key should fail")
	} else if !dserror.HasCode(err, dserror.Code(dserrors.CodeConfigKeyNotFound)) {
		t.Errorf("error code = %v; want %s", dserror.GetCode(err), dserrors.CodeConfigKeyNotFound)
	}

	if _, err := cfg.MustGetString("count"); err == nil {
		t.Error("MustGetString on a non-string key should fail")
	}
}

func TestHas(t *testing.T) {
	cfg := NewFromMap(map[string]interface{}{
		"outer": map[string]interface{}{"inner": "x"},
	})

	if !cfg.Has("outer.inner") {
		t.Error("Has(outer.inner) = false; want true")
	}
	if cfg.Has("outer.absent") || cfg.Has("nope") {
		t.Error("Has reported absent keys as present")
	}
}
