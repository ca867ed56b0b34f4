// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package label pulls values out of label-anchored free text, such as
// "Session: Fall 2023 Minimum Program Length: 90 credits". Matching is a
// literal, case-sensitive substring search that honours the first
// occurrence of each label, except LastLine which reads the last.
package label

import "strings"

// Extract returns the trimmed text strictly between the first occurrence of
// start and the first occurrence of end that follows it. The boolean is
// false when start does not occur. When end is empty or not found after
// start, the value runs to the end of text. A colon directly after start is
// treated as part of the label, so "Session" and "Session:" behave alike.
func Extract(text, start, end string) (string, bool) {
	rest, ok := after(text, start)
	if !ok {
		return "", false
	}
	if end != "" {
		if j := strings.Index(rest, end); j >= 0 {
			rest = rest[:j]
		}
	}
	return strings.TrimSpace(rest), true
}

// Line returns the trimmed remainder of the line that follows the first
// occurrence of start.
func Line(text, start string) (string, bool) {
	return Extract(text, start, "\n")
}

// UntilAny is like Extract but stops at whichever of ends occurs first after
// start. Empty entries in ends are ignored.
func UntilAny(text, start string, ends []string) (string, bool) {
	rest, ok := after(text, start)
	if !ok {
		return "", false
	}
	cut := len(rest)
	for _, end := range ends {
		if end == "" {
			continue
		}
		if j := strings.Index(rest, end); j >= 0 && j < cut {
			cut = j
		}
	}
	return strings.TrimSpace(rest[:cut]), true
}

// LastLine is like Line but anchors on the last occurrence of start, for
// running figures that a document restates and finally settles.
func LastLine(text, start string) (string, bool) {
	i := strings.LastIndex(text, start)
	if i < 0 || start == "" {
		return "", false
	}
	rest := skipColon(text[i+len(start):])
	if j := strings.IndexByte(rest, '\n'); j >= 0 {
		rest = rest[:j]
	}
	return strings.TrimSpace(rest), true
}

// ContainsAny reports whether text contains at least one of phrases.
func ContainsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// Collapse folds runs of whitespace, including line breaks, into one space.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// after returns the text following the first occurrence of start, with an
// optional colon (and the blanks before it) skipped.
func after(text, start string) (string, bool) {
	i := strings.Index(text, start)
	if i < 0 {
		return "", false
	}
	return skipColon(text[i+len(start):]), true
}

func skipColon(rest string) string {
	if trimmed := strings.TrimLeft(rest, " \t"); strings.HasPrefix(trimmed, ":") {
		rest = trimmed[1:]
	}
	return rest
}

// Ptr returns a pointer to the extracted value, or nil when start is absent
// or the value is empty.
func Ptr(value string, ok bool) *string {
	if !ok || value == "" {
		return nil
	}
	return &value
}
