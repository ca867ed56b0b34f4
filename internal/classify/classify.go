// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether extracted document text is an
// acceptance letter, a transcript, or neither. Classification is an ordered
// list of phrase-containment checks; the first matching rule wins.
package classify

import (
	"github.com/pdiddy/record-parser/internal/label"
	"github.com/pdiddy/record-parser/pkg/types"
)

// rule recognizes a document kind when at least one phrase from every
// group occurs in the text.
type rule struct {
	kind   types.DocumentKind
	groups [][]string
}

var rules = []rule{
	{
		kind: types.KindAcceptanceLetter,
		groups: [][]string{
			{"Congratulations", "CONGRATULATIONS", "congratulate you"},
			{"offer of admission", "Offer of Admission", "OFFER OF ADMISSION", "offer you admission"},
		},
	},
	{
		kind: types.KindTranscript,
		groups: [][]string{
			{"Transcript", "TRANSCRIPT"},
			{"Student Record", "STUDENT RECORD", "Student ID", "Beginning of Undergraduate Record"},
		},
	},
}

// Classify returns the kind of document text represents.
func Classify(text string) types.DocumentKind {
	for _, r := range rules {
		if r.matches(text) {
			return r.kind
		}
	}
	return types.KindUnrecognized
}

func (r rule) matches(text string) bool {
	for _, group := range r.groups {
		if !label.ContainsAny(text, group) {
			return false
		}
	}
	return true
}
