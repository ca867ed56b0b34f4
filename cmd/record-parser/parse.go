// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/record-parser/internal/archive"
	"github.com/pdiddy/record-parser/internal/classify"
	"github.com/pdiddy/record-parser/internal/document"
	"github.com/pdiddy/record-parser/internal/export"
)

// --- classify ---

var classifyCmd = &cobra.Command{
	Use:   "classify <file>...",
	Short: "Report whether each file is an acceptance letter or a transcript",
	Long: `Classify reads extracted document text and prints its kind:
acceptance_letter, transcript, or unrecognized. Use "-" to read stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, path := range args {
		text, err := readInput(cmd, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s\n", path, classify.Classify(text))
	}
	return nil
}

// --- parse ---

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse one acceptance letter or transcript",
	Long: `Parse classifies extracted document text, runs the matching parser,
and prints the structured result. Use "-" to read stdin.

With --archive the result is also stored in the SQLite archive under --id
(default: the file name without extension).`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	formatName, _ := cmd.Flags().GetString("format")
	if !cmd.Flags().Changed("format") {
		formatName = viper.GetString("batch.format")
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	text, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	result, err := document.Parse(text)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := export.WriteFile(output, result, format); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
	} else if err := export.Write(cmd.OutOrStdout(), result, format); err != nil {
		return err
	}

	if archiveResult, _ := cmd.Flags().GetBool("archive"); archiveResult {
		id, _ := cmd.Flags().GetString("id")
		if id == "" {
			id = documentID(path)
		}
		store, err := archive.NewStore(loadConfig().Archive)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Save(context.Background(), id, path, result); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "archived %s\n", id)
	}
	return nil
}

// documentID derives an archive ID from an input path.
func documentID(path string) string {
	if path == "-" {
		return "stdin"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func init() {
	parseCmd.Flags().String("format", "json", "output format: json or yaml")
	parseCmd.Flags().StringP("output", "o", "", "write the result to this file instead of stdout")
	parseCmd.Flags().Bool("archive", false, "also store the result in the archive")
	parseCmd.Flags().String("id", "", "archive ID (default: file name without extension)")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(parseCmd)
}
