// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/record-parser/internal/course"
	"github.com/pdiddy/record-parser/internal/label"
	"github.com/pdiddy/record-parser/internal/term"
)

// --- terms ---

var termsCmd = &cobra.Command{
	Use:   `terms "<Season> <Year>" "<Season> <Year>"`,
	Short: "List the academic terms between two terms, inclusive",
	Long: `Terms enumerates the Fall, Winter, and Summer sessions from the start
term through the end term. Winter follows Fall of the previous year.`,
	Example: `  record-parser terms "Fall 2023" "Summer 2024"`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		labels, err := term.Generate(args[0], args[1])
		if err != nil {
			return err
		}
		return printList(cmd, labels)
	},
}

// --- extract ---

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Print the text between two labels",
	Long: `Extract prints the trimmed text between the first occurrence of
--start and the next occurrence of --end. Without --end, or when --end does
not follow --start, the value runs to the end of the file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		value, ok := label.Extract(text, start, end)
		if !ok {
			return fmt.Errorf("label %q not found in %s", start, args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

// --- courses ---

var coursesCmd = &cobra.Command{
	Use:   "courses <file>",
	Short: "List the course codes between two labels",
	Long: `Courses prints the canonical course codes (e.g. COMP248) found between
--start and --end, in order of appearance. Without --start the whole file is
scanned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")

		var codes []string
		if start == "" {
			codes = course.Match(text)
		} else {
			codes = course.FromText(text, start, end)
		}
		return printList(cmd, codes)
	},
}

// printList writes items one per line, or as a JSON array with --json.
func printList(cmd *cobra.Command, items []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		return enc.Encode(items)
	}
	if len(items) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(items, "\n"))
	}
	return nil
}

func init() {
	termsCmd.Flags().Bool("json", false, "output as a JSON array")

	extractCmd.Flags().String("start", "", "label that precedes the value")
	extractCmd.Flags().String("end", "", "label that follows the value")
	_ = extractCmd.MarkFlagRequired("start")

	coursesCmd.Flags().String("start", "", "label that opens the span")
	coursesCmd.Flags().String("end", "", "label that closes the span")
	coursesCmd.Flags().Bool("json", false, "output as a JSON array")

	rootCmd.AddCommand(termsCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(coursesCmd)
}
