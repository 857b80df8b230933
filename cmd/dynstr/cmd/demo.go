// File: demo.go
// Title: dynstr CLI Demonstration Command
// Description: Walks through three demonstration scenarios exercising the
//              full dynstr API: whitespace detection with insertion and
//              case folding, search and concatenation, and join/split
//              round-tripping.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial demonstration scenarios

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/dynstr"
	"github.com/msto63/dynstr/core/log"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the demonstration scenarios",
	Long: `Runs three scenarios exercising the dynstr API end to end:
whitespace detection with insertion, trimming and case folding; search,
concatenation and equality; and join/split round-tripping.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := demoWhitespace(); err != nil {
			return err
		}
		if err := demoSearch(); err != nil {
			return err
		}
		return demoJoinSplit()
	},
}

func demoWhitespace() error {
	logger.Info("scenario: whitespace, insertion and case folding")

	s := dynstr.New("")
	defer s.Destroy()

	fmt.Printf("empty:           %t\n", s.IsEmpty())

	if err := s.Insert(0, strings.Repeat(" ", 10)); err != nil {
		return err
	}
	fmt.Printf("whitespace only: %t\n", s.IsWhitespace())

	if err := s.Insert(5, "this text is capitalized"); err != nil {
		return err
	}
	logger.Debug("inserted into whitespace", log.Str("content", s.String()))

	s.ToUpper()
	fmt.Printf("upper:           %q\n", s.String())

	s.ToLower()
	fmt.Printf("lower:           %q\n", s.String())

	s.ToUpper()
	s.Trim()
	fmt.Printf("trimmed:         %q\n", s.String())

	return nil
}

func demoSearch() error {
	logger.Info("scenario: search, concatenation and equality")

	s := dynstr.New("Bonjour Lucas")
	defer s.Destroy()

	fmt.Printf("index of 'jour': %d\n", s.IndexOf("jour"))

	s.Concat(" comment ca va ?")
	fmt.Printf("contains 'va':   %t\n", s.Contains("va"))
	fmt.Printf("equals:          %t\n", s.Equals("Bonjour Lucas comment ca va ?"))

	if err := s.Insert(7, " Mathias et"); err != nil {
		return err
	}
	fmt.Printf("after insert:    %q\n", s.String())

	return nil
}

func demoJoinSplit() error {
	logger.Info("scenario: join and split round-trip")

	parts := []string{"This", "is", "a", "join", "test."}

	s := dynstr.Join(parts, " ")
	defer s.Destroy()

	fmt.Printf("joined:          %q\n", s.String())

	for i, fragment := range s.Split(" ") {
		fmt.Printf("fragment %d:      %q\n", i+1, fragment)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
