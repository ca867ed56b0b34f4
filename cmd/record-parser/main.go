// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the record-parser CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/record-parser/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the record-parser CLI.
var rootCmd = &cobra.Command{
	Use:   "record-parser",
	Short: "Parse acceptance letters and transcripts into degree-planning records",
	Long: `record-parser turns text already extracted from admission acceptance
letters and academic transcripts into structured records: program details,
exempted and deficient courses, transfer credits, and the term timeline.

Input is plain text produced by an external PDF text extractor. Results are
written as JSON or YAML and can be kept in a local SQLite archive.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./record-parser.yaml or ~/.config/record-parser/record-parser.yaml)")
	rootCmd.PersistentFlags().String("archive-dir", "archive", "directory holding the SQLite result archive")
	bindFlag(rootCmd, "archive.archive_dir", "archive-dir")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("record-parser")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "record-parser"))
		}
	}

	viper.SetDefault("batch.input_dir", "input")
	viper.SetDefault("batch.output_dir", "output")
	viper.SetDefault("batch.format", string(types.OutputJSON))
	viper.SetDefault("archive.archive_dir", "archive")
	viper.SetDefault("archive.max_results", 50)

	viper.SetEnvPrefix("RECORD_PARSER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig builds the typed configuration from viper. Flags bound with
// bindFlag take precedence over the config file and environment.
func loadConfig() types.Config {
	return types.Config{
		Batch: types.BatchConfig{
			InputDir:  viper.GetString("batch.input_dir"),
			OutputDir: viper.GetString("batch.output_dir"),
			Format:    types.OutputFormat(viper.GetString("batch.format")),
			Force:     viper.GetBool("batch.force"),
			Archive:   viper.GetBool("batch.archive"),
		},
		Archive: types.ArchiveConfig{
			ArchiveDir: viper.GetString("archive.archive_dir"),
			MaxResults: viper.GetInt("archive.max_results"),
		},
	}
}

// bindFlag ties a local or persistent command flag to a viper key.
func bindFlag(cmd *cobra.Command, key, flag string) {
	f := cmd.Flags().Lookup(flag)
	if f == nil {
		f = cmd.PersistentFlags().Lookup(flag)
	}
	if err := viper.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

// readInput returns the contents of path, or of stdin when path is "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
