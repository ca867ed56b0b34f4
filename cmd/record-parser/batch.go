// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/record-parser/internal/archive"
	"github.com/pdiddy/record-parser/internal/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse every extracted text file in a directory",
	Long: `Batch parses each *.txt file in the input directory and writes one
result file per input to the output directory. Inputs whose result is
already up to date are skipped unless --force is given. Unrecognized
documents are reported and counted but do not stop the run.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	var archiver batch.Archiver
	if cfg.Batch.Archive {
		store, err := archive.NewStore(cfg.Archive)
		if err != nil {
			return err
		}
		defer store.Close()
		archiver = store
	}

	summary, err := batch.Run(context.Background(), cfg.Batch, archiver, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed, %d unrecognized", summary.Failed, summary.Unrecognized)
	}
	return nil
}

func init() {
	batchCmd.Flags().String("input-dir", "input", "directory of extracted *.txt files")
	batchCmd.Flags().String("output-dir", "output", "directory for result files")
	batchCmd.Flags().String("format", "json", "result format: json or yaml")
	batchCmd.Flags().Bool("force", false, "re-parse inputs even when results are up to date")
	batchCmd.Flags().Bool("archive", false, "also store each result in the archive")

	bindFlag(batchCmd, "batch.input_dir", "input-dir")
	bindFlag(batchCmd, "batch.output_dir", "output-dir")
	bindFlag(batchCmd, "batch.format", "format")
	bindFlag(batchCmd, "batch.force", "force")
	bindFlag(batchCmd, "batch.archive", "archive")

	rootCmd.AddCommand(batchCmd)
}
