// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects the serialization used for parse results.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Ext returns the file extension for the format, without the dot.
func (f OutputFormat) Ext() string {
	if f == OutputYAML {
		return "yaml"
	}
	return "json"
}

// ArchiveConfig holds settings for the SQLite result archive.
type ArchiveConfig struct {
	// ArchiveDir is the directory that holds the archive database.
	ArchiveDir string `json:"archive_dir" yaml:"archive_dir"`

	// MaxResults is the default maximum number of rows a listing returns (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// BatchConfig holds settings for parsing a directory of extracted text files.
type BatchConfig struct {
	// InputDir contains the *.txt files produced by the PDF text extractor.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives one result file per input.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Format selects the result file format: json or yaml.
	Format OutputFormat `json:"format" yaml:"format"`

	// Force re-parses inputs even when their result file is up to date.
	Force bool `json:"force" yaml:"force"`

	// Archive, when true, also stores each result in the archive.
	Archive bool `json:"archive" yaml:"archive"`
}

// Config groups all settings read from record-parser.yaml.
type Config struct {
	Batch   BatchConfig   `json:"batch" yaml:"batch"`
	Archive ArchiveConfig `json:"archive" yaml:"archive"`
}
