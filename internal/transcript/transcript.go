// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript parses the text of an academic transcript into its
// program history, transfer credits, per-term course blocks and summary
// figures.
package transcript

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/record-parser/internal/course"
	"github.com/pdiddy/record-parser/internal/label"
	"github.com/pdiddy/record-parser/internal/term"
	"github.com/pdiddy/record-parser/pkg/types"
)

const (
	labelProgramHistory = "Program History"
	labelTransfer       = "Transfer Credits"
	labelRecordStart    = "Beginning of Undergraduate Record"
	labelRecordEnd      = "End of Student Record"
	labelTermGPA        = "Term GPA"
	labelMinCredits     = "Min. Credits Required"
	labelCreditsEarned  = "Program Credits Earned"
	labelCumulativeGPA  = "Cumulative GPA"

	extendedCreditMarker = "Extended Credit Program"
)

var (
	// programPattern matches "<Degree>, <Major>" program history rows.
	programPattern = regexp.MustCompile(`^((?:Bachelor|Master|Doctor|Certificate|Diploma|Graduate)[^,]*),\s*(.+)$`)

	// termCoursePattern splits what follows the course code on a term line:
	// an optional section, the title, the credit value and an optional grade.
	termCoursePattern = regexp.MustCompile(`^(?:([A-Z0-9]{1,3})\s+)?(.*?)\s*\b(\d+\.\d{1,2})\b(?:\s+(\S+))?`)

	// transferPattern is like termCoursePattern without section or grade.
	transferPattern = regexp.MustCompile(`^(.*?)\s*\b(\d+\.\d{1,2})\b`)

	numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// Parse reads a transcript. Sections that are missing produce empty lists
// and nil figures; Parse never fails.
func Parse(text string) *types.TranscriptResult {
	return &types.TranscriptResult{
		ProgramHistory:  parseProgramHistory(text),
		Terms:           parseTerms(text),
		TransferCredits: parseTransferCredits(text),
		AdditionalInfo: types.AdditionalInfo{
			MinCreditsRequired:    number(text, labelMinCredits),
			ProgramCreditsEarned:  number(text, labelCreditsEarned),
			CumulativeGPA:         lastNumber(text, labelCumulativeGPA),
			ExtendedCreditProgram: strings.Contains(text, extendedCreditMarker),
		},
	}
}

func parseProgramHistory(text string) []types.ProgramEntry {
	entries := []types.ProgramEntry{}
	section, ok := label.UntilAny(text, labelProgramHistory, []string{labelTransfer, labelRecordStart})
	if !ok {
		return entries
	}
	for _, line := range lines(section) {
		m := programPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entries = append(entries, types.ProgramEntry{
			DegreeType: label.Collapse(m[1]),
			Major:      label.Collapse(m[2]),
		})
	}
	return entries
}

func parseTransferCredits(text string) []types.TransferCredit {
	credits := []types.TransferCredit{}
	section, ok := label.UntilAny(text, labelTransfer, []string{labelRecordStart, labelRecordEnd})
	if !ok {
		return credits
	}
	for _, line := range lines(section) {
		code, rest, ok := course.Leading(line)
		if !ok {
			continue
		}
		tc := types.TransferCredit{CourseCode: code, Title: label.Collapse(rest)}
		if m := transferPattern.FindStringSubmatch(rest); m != nil {
			tc.Title = label.Collapse(m[1])
			tc.Credits = parseFloat(m[2])
		}
		credits = append(credits, tc)
	}
	return credits
}

// parseTerms walks the record body line by line. A line that is exactly a
// term label opens a new block; course and GPA lines attach to the open
// block and are ignored before the first one.
func parseTerms(text string) []types.TranscriptTermRecord {
	body, ok := label.Extract(text, labelRecordStart, labelRecordEnd)
	if !ok {
		body = text
	}

	records := []types.TranscriptTermRecord{}
	var current *types.TranscriptTermRecord
	for _, line := range lines(body) {
		if t, err := term.Parse(line); err == nil {
			records = append(records, types.TranscriptTermRecord{
				Season:  string(t.Season),
				Year:    t.Year,
				Courses: []types.TranscriptCourse{},
			})
			current = &records[len(records)-1]
			continue
		}
		if current == nil {
			continue
		}
		if strings.Contains(line, labelTermGPA) {
			current.TermGPA = number(line, labelTermGPA)
			continue
		}
		if c, ok := parseCourseLine(line); ok {
			current.Courses = append(current.Courses, c)
		}
	}
	return records
}

func parseCourseLine(line string) (types.TranscriptCourse, bool) {
	code, rest, ok := course.Leading(line)
	if !ok {
		return types.TranscriptCourse{}, false
	}
	c := types.TranscriptCourse{CourseCode: code}
	m := termCoursePattern.FindStringSubmatch(rest)
	if m == nil {
		c.Title = label.Collapse(rest)
		return c, true
	}
	c.Section = m[1]
	c.Title = label.Collapse(m[2])
	c.Credits = parseFloat(m[3])
	c.Grade = m[4]
	return c, true
}

// number reads the first numeric value on the line that follows lbl.
func number(text, lbl string) *float64 {
	return firstNumber(label.Line(text, lbl))
}

// lastNumber is like number but reads the last occurrence of lbl, so a
// cumulative figure repeated after every term resolves to its final value.
func lastNumber(text, lbl string) *float64 {
	return firstNumber(label.LastLine(text, lbl))
}

func firstNumber(v string, ok bool) *float64 {
	if !ok {
		return nil
	}
	s := numberPattern.FindString(v)
	if s == "" {
		return nil
	}
	f := parseFloat(s)
	return &f
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// lines splits text into trimmed, non-empty lines.
func lines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
