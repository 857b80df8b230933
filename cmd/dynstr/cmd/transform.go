// File: transform.go
// Title: dynstr CLI Transformation Commands
// Description: Subcommands for the in-place transformations of the dynstr
//              library: trim, lower, upper and replace. Input comes from
//              the command arguments or from stdin.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial transformation commands

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/dynstr"
	"github.com/msto63/dynstr/core/log"
)

var trimCmd = &cobra.Command{
	Use:   "trim [text...]",
	Short: "Strip leading and trailing whitespace",
	Long:  "Strips leading and trailing ASCII whitespace from the arguments or stdin.",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}

		s := dynstr.New(input)
		defer s.Destroy()

		s.Trim()
		logger.Debug("trim applied", log.Int("in_len", len(input)), log.Int("out_len", s.Len()))

		fmt.Println(s.String())
		return nil
	},
}

var lowerCmd = &cobra.Command{
	Use:   "lower [text...]",
	Short: "Fold to ASCII lowercase",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}

		s := dynstr.New(input)
		defer s.Destroy()

		s.ToLower()
		fmt.Println(s.String())
		return nil
	},
}

var upperCmd = &cobra.Command{
	Use:   "upper [text...]",
	Short: "Fold to ASCII uppercase",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}

		s := dynstr.New(input)
		defer s.Destroy()

		s.ToUpper()
		fmt.Println(s.String())
		return nil
	},
}

var replaceCmd = &cobra.Command{
	Use:   "replace <target> <replacement> [text...]",
	Short: "Substitute every occurrence of a target",
	Long: `Replaces every non-overlapping occurrence of target with replacement
in the remaining arguments or stdin. Replacement text is never re-scanned.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, replacement := args[0], args[1]

		input, err := readInput(args[2:])
		if err != nil {
			return err
		}

		s := dynstr.New(input)
		defer s.Destroy()

		if err := s.Replace(target, replacement); err != nil {
			return err
		}
		logger.Debug("replace applied",
			log.Str("target", target),
			log.Str("replacement", replacement),
			log.Int("out_len", s.Len()))

		fmt.Println(s.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(lowerCmd)
	rootCmd.AddCommand(upperCmd)
	rootCmd.AddCommand(replaceCmd)
}
