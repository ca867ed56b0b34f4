// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes parse results as JSON or YAML.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/record-parser/pkg/types"
)

// Marshal encodes v in the given format. JSON output is indented with two
// spaces; an empty format means JSON.
func Marshal(v any, format types.OutputFormat) ([]byte, error) {
	switch format {
	case types.OutputJSON, "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}
		return append(data, '\n'), nil
	case types.OutputYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

// Write encodes v to w.
func Write(w io.Writer, v any, format types.OutputFormat) error {
	data, err := Marshal(v, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile encodes v to path, creating the parent directory if needed.
func WriteFile(path string, v any, format types.OutputFormat) error {
	data, err := Marshal(v, format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ParseFormat validates a format name from a flag or config file.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(s); f {
	case types.OutputJSON, types.OutputYAML:
		return f, nil
	case "":
		return types.OutputJSON, nil
	case "yml":
		return types.OutputYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use json or yaml", s)
	}
}
