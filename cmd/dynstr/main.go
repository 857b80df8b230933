// File: main.go
// Title: dynstr CLI Entry Point
// Description: Entry point for the dynstr command line tool. Delegates to
//              the cobra command tree and maps command failures to a
//              non-zero exit code.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial CLI entry point

package main

import (
	"os"

	"github.com/msto63/dynstr/cmd/dynstr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
