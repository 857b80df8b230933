// File: root.go
// Title: dynstr CLI Root Command
// Description: Defines the root cobra command, persistent flags, the
//              configuration and logger setup shared by all subcommands,
//              and the stdin/argument input helper.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial root command with config and logging setup

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/dynstr/core/config"
	"github.com/msto63/dynstr/core/log"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dynstr",
	Short: "Dynamic string toolbox",
	Long: `dynstr is a small toolbox around the dynstr library: an owned,
growable byte buffer for safe low-level string manipulation.

Commands:
  demo      - run the demonstration scenarios
  trim      - strip leading and trailing whitespace
  lower     - fold to ASCII lowercase
  upper     - fold to ASCII uppercase
  replace   - substitute every occurrence of a target
  split     - tokenize on a separator
  join      - join parts with a separator
  index     - find the first occurrence of a needle
  contains  - check for a substring`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// Execute runs the root command, reporting errors on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if logger != nil {
			logger.LogError(err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json, text or console")
}

// setup loads the optional configuration and builds the request logger
func setup() error {
	defaults := map[string]interface{}{
		"log.level":  "info",
		"log.format": "console",
		"split.sep":  " ",
		"join.sep":   " ",
	}

	if cfgFile != "" {
		loaded, err := config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "DYNSTR",
			Defaults:  defaults,
		})
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = config.NewFromMap(defaults)
	}

	level, err := log.ParseLevel(cfg.GetString("log.level", "info"))
	if err != nil {
		return err
	}
	if verbose {
		level = log.LevelDebug
	}

	formatName := logFormat
	if formatName == "" {
		formatName = cfg.GetString("log.format", "console")
	}
	format, err := log.ParseFormat(formatName)
	if err != nil {
		return err
	}

	logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "dynstr-cli",
	}).WithRequestID(uuid.New().String())

	return nil
}

// readInput returns the joined arguments, or all of stdin when no
// arguments were given
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	reader := bufio.NewReader(os.Stdin)
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
