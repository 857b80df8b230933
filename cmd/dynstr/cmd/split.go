// File: split.go
// Title: dynstr CLI Decomposition and Search Commands
// Description: Subcommands for tokenizing, joining and searching: split,
//              join, index and contains. Separators default to the
//              configured split.sep and join.sep values.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial decomposition and search commands

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/dynstr"
	"github.com/msto63/dynstr/core/log"
)

var (
	splitSep string
	joinSep  string
)

var splitCmd = &cobra.Command{
	Use:   "split [text...]",
	Short: "Tokenize on a separator",
	Long: `Splits the arguments or stdin on every occurrence of the separator.
Empty fragments fold away: consecutive, leading and trailing separators
produce nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}

		sep := splitSep
		if !cmd.Flags().Changed("sep") {
			sep = cfg.GetString("split.sep", " ")
		}

		s := dynstr.New(input)
		defer s.Destroy()

		fragments := s.Split(sep)
		logger.Debug("split applied", log.Str("sep", sep), log.Int("fragments", len(fragments)))

		for i, fragment := range fragments {
			fmt.Printf("%d: %s\n", i+1, fragment)
		}
		return nil
	},
}

var joinCmd = &cobra.Command{
	Use:   "join <part>...",
	Short: "Join parts with a separator",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sep := joinSep
		if !cmd.Flags().Changed("sep") {
			sep = cfg.GetString("join.sep", " ")
		}

		s := dynstr.Join(args, sep)
		defer s.Destroy()

		logger.Debug("join applied", log.Str("sep", sep), log.Int("parts", len(args)))

		fmt.Println(s.String())
		return nil
	},
}

var indexCmd = &cobra.Command{
	Use:   "index <needle> [text...]",
	Short: "Find the first occurrence of a needle",
	Long:  "Prints the zero-based byte offset of the first occurrence, or -1.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		needle := args[0]

		input, err := readInput(args[1:])
		if err != nil {
			return err
		}

		s := dynstr.New(input)
		defer s.Destroy()

		fmt.Println(s.IndexOf(needle))
		return nil
	},
}

var containsCmd = &cobra.Command{
	Use:   "contains <needle> [text...]",
	Short: "Check for a substring",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		needle := args[0]

		input, err := readInput(args[1:])
		if err != nil {
			return err
		}

		s := dynstr.New(input)
		defer s.Destroy()

		fmt.Println(s.Contains(needle))
		return nil
	},
}

func init() {
	splitCmd.Flags().StringVar(&splitSep, "sep", " ", "separator byte sequence")
	joinCmd.Flags().StringVar(&joinSep, "sep", " ", "separator byte sequence")

	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(containsCmd)
}
