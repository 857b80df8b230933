// File: doc.go
// Title: Package Documentation for core/config
// Description: Package config loads TOML and YAML configuration files with
//              environment variable overrides and dot-notation access, used
//              by the dynstr CLI for its defaults.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial package documentation

// Package config provides configuration loading for the dynstr CLI.
//
// Configuration files may be TOML or YAML; the format is auto-detected from
// the file extension. Values are addressed with dot notation and can be
// overridden through environment variables:
//
//	cfg, err := config.LoadWithOptions("dynstr.toml", config.LoadOptions{
//		EnvPrefix: "DYNSTR",
//		Defaults: map[string]interface{}{
//			"log.level":  "info",
//			"log.format": "console",
//			"split.sep":  " ",
//		},
//	})
//	level := cfg.GetString("log.level", "info") // DYNSTR_LOG_LEVEL wins
package config
