// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch parses a directory of extracted document text files and
// writes one result file per input.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/record-parser/internal/document"
	"github.com/pdiddy/record-parser/internal/export"
	"github.com/pdiddy/record-parser/pkg/types"
)

const inputExt = ".txt"

// Archiver stores a parse result. *archive.Store implements it.
type Archiver interface {
	Save(ctx context.Context, id, sourcePath string, result *types.ParseResult) error
}

// Summary holds the counts from a batch run.
type Summary struct {
	Parsed       int
	Skipped      int
	Unrecognized int
	Failed       int
}

// Total returns the number of files processed.
func (s Summary) Total() int {
	return s.Parsed + s.Skipped + s.Unrecognized + s.Failed
}

// HasFailures reports whether any file could not be parsed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0 || s.Unrecognized > 0
}

// Run parses every *.txt file in cfg.InputDir in name order. Files whose
// result is newer than the input are skipped unless cfg.Force is set. When
// archiver is non-nil each result is also archived under the file's base
// name. Per-file status lines and a final summary are written to w.
func Run(ctx context.Context, cfg types.BatchConfig, archiver Archiver, w io.Writer) (Summary, error) {
	format, err := export.ParseFormat(string(cfg.Format))
	if err != nil {
		return Summary{}, err
	}

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return Summary{}, fmt.Errorf("reading input directory %s: %w", cfg.InputDir, err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), inputExt) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var summary Summary
	for _, name := range names {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		id := strings.TrimSuffix(name, inputExt)
		inPath := filepath.Join(cfg.InputDir, name)
		outPath := filepath.Join(cfg.OutputDir, id+"."+format.Ext())

		if !cfg.Force {
			changed, err := hasChanged(inPath, outPath)
			if err != nil {
				fmt.Fprintf(w, "failed  %s: %v\n", id, err)
				summary.Failed++
				continue
			}
			if !changed {
				fmt.Fprintf(w, "skipped %s\n", id)
				summary.Skipped++
				continue
			}
		}

		result, err := ParseFile(inPath)
		if errors.Is(err, document.ErrUnrecognizedDocument) {
			fmt.Fprintf(w, "unrecognized %s\n", id)
			summary.Unrecognized++
			continue
		}
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", id, err)
			summary.Failed++
			continue
		}

		if err := export.WriteFile(outPath, result, format); err != nil {
			fmt.Fprintf(w, "failed  %s: write error: %v\n", id, err)
			summary.Failed++
			continue
		}

		if archiver != nil {
			if err := archiver.Save(ctx, id, inPath, result); err != nil {
				fmt.Fprintf(w, "warning: archiving %s failed: %v\n", id, err)
			}
		}

		fmt.Fprintf(w, "parsed  %s (%s, %d courses)\n", id, result.Kind, len(result.CourseCodes()))
		summary.Parsed++
	}

	fmt.Fprintf(w, "\nBatch summary: %d parsed, %d skipped, %d unrecognized, %d failed (total: %d)\n",
		summary.Parsed, summary.Skipped, summary.Unrecognized, summary.Failed, summary.Total())
	return summary, nil
}

// ParseFile reads extracted text from path and parses it.
func ParseFile(path string) (*types.ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return document.Parse(string(data))
}

// hasChanged reports whether the input is newer than its result file, or
// the result file does not exist yet.
func hasChanged(inPath, outPath string) (bool, error) {
	inInfo, err := os.Stat(inPath)
	if err != nil {
		return false, fmt.Errorf("stat input %s: %w", inPath, err)
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat output %s: %w", outPath, err)
	}

	return inInfo.ModTime().After(outInfo.ModTime()), nil
}
