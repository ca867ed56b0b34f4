// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document classifies extracted document text and routes it to the
// matching parser. It is the single entry point the CLI and batch runner
// use; it holds no state between calls.
package document

import (
	"errors"

	"github.com/pdiddy/record-parser/internal/acceptance"
	"github.com/pdiddy/record-parser/internal/classify"
	"github.com/pdiddy/record-parser/internal/transcript"
	"github.com/pdiddy/record-parser/pkg/types"
)

// ErrUnrecognizedDocument reports text that matches neither the acceptance
// letter nor the transcript signature.
var ErrUnrecognizedDocument = errors.New("neither a valid transcript nor an acceptance letter")

// Parse classifies text and returns the parsed record. Unrecognized text
// yields ErrUnrecognizedDocument; an acceptance letter whose graduation term
// precedes its starting term yields term.ErrInvalidTermRange.
func Parse(text string) (*types.ParseResult, error) {
	switch kind := classify.Classify(text); kind {
	case types.KindAcceptanceLetter:
		letter, err := acceptance.Parse(text)
		if err != nil {
			return nil, err
		}
		return &types.ParseResult{Kind: kind, AcceptanceLetter: letter}, nil
	case types.KindTranscript:
		return &types.ParseResult{Kind: kind, Transcript: transcript.Parse(text)}, nil
	default:
		return nil, ErrUnrecognizedDocument
	}
}
