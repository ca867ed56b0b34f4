// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package course recognizes course-code mentions such as "COMP 248" or
// "ENGL212" in free text and canonicalizes them to "COMP248".
package course

import (
	"regexp"
	"strings"

	"github.com/pdiddy/record-parser/internal/label"
)

// codePattern matches a subject prefix of 2-4 uppercase letters, optional
// blanks on the same line, 2-4 digits and an optional suffix letter that
// ends the word. A code glued to a following word ("COMP248Intro") still
// matches; the glued letter is consumed but not kept.
var codePattern = regexp.MustCompile(`\b([A-Z]{2,4})[ \t]*(\d{2,4})(?:([A-Za-z])\b|\b|[A-Za-z])`)

// prefixPattern matches a course code at the start of a line.
var prefixPattern = regexp.MustCompile(`^\s*([A-Z]{2,4})[ \t]*(\d{2,4}[A-Za-z]?)\b`)

// Match returns the canonical course codes found in span, in order of
// appearance. Duplicates are kept. It returns an empty, non-nil slice when
// nothing matches.
func Match(span string) []string {
	codes := []string{}
	for _, m := range codePattern.FindAllStringSubmatch(span, -1) {
		codes = append(codes, Canonical(m[1], m[2]+m[3]))
	}
	return codes
}

// FromText selects the span between start and end (see label.Extract) and
// returns the course codes in it. An absent start label yields an empty slice.
func FromText(text, start, end string) []string {
	span, ok := label.Extract(text, start, end)
	if !ok {
		return []string{}
	}
	return Match(span)
}

// Leading returns the canonical course code that opens line, if any, along
// with the remainder of the line after the code.
func Leading(line string) (code, rest string, ok bool) {
	loc := prefixPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", "", false
	}
	code = Canonical(line[loc[2]:loc[3]], line[loc[4]:loc[5]])
	return code, strings.TrimSpace(line[loc[1]:]), true
}

// Canonical joins a subject prefix and number into the upper-case code form.
func Canonical(subject, number string) string {
	return strings.ToUpper(subject + number)
}
