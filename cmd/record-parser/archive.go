// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/record-parser/internal/archive"
	"github.com/pdiddy/record-parser/internal/export"
	"github.com/pdiddy/record-parser/pkg/types"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect archived parse results",
	Long: `Archive queries the local SQLite archive filled by "parse --archive"
and "batch --archive". Use subcommands to list, show, or find results.`,
}

// --- list subcommand ---

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived documents, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := openArchive()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.List(context.Background(), types.DocumentKind(kind), limit)
		if err != nil {
			return err
		}
		return formatEntries(cmd, entries)
	},
}

// --- show subcommand ---

var archiveShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print an archived result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		format, err := export.ParseFormat(formatName)
		if err != nil {
			return err
		}

		store, err := openArchive()
		if err != nil {
			return err
		}
		defer store.Close()

		result, err := store.Get(context.Background(), args[0])
		if err != nil {
			return err
		}
		return export.Write(cmd.OutOrStdout(), result, format)
	},
}

// --- find subcommand ---

var archiveFindCmd = &cobra.Command{
	Use:   "find <course-code>",
	Short: "List archived documents that mention a course",
	Long: `Find lists archived documents with the course in any bucket or term.
The code is canonicalized first, so "COMP 248" and "comp248" both find COMP248.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		code := strings.ToUpper(strings.Join(strings.Fields(args[0]), ""))

		store, err := openArchive()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.FindByCourse(context.Background(), code, limit)
		if err != nil {
			return err
		}
		return formatEntries(cmd, entries)
	},
}

// --- shared helpers ---

func openArchive() (*archive.Store, error) {
	return archive.NewStore(loadConfig().Archive)
}

func formatEntries(cmd *cobra.Command, entries []archive.Entry) error {
	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	writeEntryTable(out, entries)
	return nil
}

func writeEntryTable(out io.Writer, entries []archive.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No archived documents.")
		return
	}

	fmt.Fprintf(out, "%-24s  %-18s  %-7s  %-20s  %s\n", "ID", "Kind", "Courses", "Parsed", "Source")
	fmt.Fprintln(out, strings.Repeat("-", 100))
	for _, e := range entries {
		id := e.ID
		if len(id) > 24 {
			id = id[:21] + "..."
		}
		fmt.Fprintf(out, "%-24s  %-18s  %-7d  %-20s  %s\n",
			id, e.Kind, e.Courses, e.ParsedAt.Format("2006-01-02 15:04:05"), e.SourcePath)
	}
	fmt.Fprintf(out, "\n%d documents\n", len(entries))
}

func init() {
	archiveListCmd.Flags().String("kind", "", "filter by kind: acceptance_letter or transcript")
	archiveListCmd.Flags().Int("limit", 0, "maximum rows (0 = use configured maximum)")
	archiveListCmd.Flags().Bool("json", false, "output as JSON")

	archiveShowCmd.Flags().String("format", "json", "output format: json or yaml")

	archiveFindCmd.Flags().Int("limit", 0, "maximum rows (0 = use configured maximum)")
	archiveFindCmd.Flags().Bool("json", false, "output as JSON")

	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveShowCmd)
	archiveCmd.AddCommand(archiveFindCmd)

	rootCmd.AddCommand(archiveCmd)
}
