// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package term models academic terms ("Fall 2023") on a three-session
// calendar and enumerates the terms between two boundaries.
//
// Within a calendar year the sessions run Winter, Summer, Fall. Stepping
// forward from Fall therefore lands on Winter of the following year.
package term

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Season is one of the three academic sessions.
type Season string

const (
	Winter Season = "Winter"
	Summer Season = "Summer"
	Fall   Season = "Fall"
)

// seasons lists the sessions in calendar order within one year.
var seasons = []Season{Winter, Summer, Fall}

var (
	// ErrInvalidTerm reports text that is not "<Season> <Year>".
	ErrInvalidTerm = errors.New("invalid term")

	// ErrInvalidTermRange reports an end term that cannot be reached by
	// stepping forward from the start term.
	ErrInvalidTermRange = errors.New("invalid term range")
)

var (
	exactPattern = regexp.MustCompile(`^(Fall|Winter|Summer)\s+(\d{4})$`)
	findPattern  = regexp.MustCompile(`\b(Fall|Winter|Summer)\s+(\d{4})\b`)
)

// Term is an academic session in a given calendar year.
type Term struct {
	Season Season
	Year   int
}

// String formats the term as "Season Year".
func (t Term) String() string {
	return fmt.Sprintf("%s %d", t.Season, t.Year)
}

// Next returns the term that follows t.
func (t Term) Next() Term {
	switch t.Season {
	case Winter:
		return Term{Season: Summer, Year: t.Year}
	case Summer:
		return Term{Season: Fall, Year: t.Year}
	default:
		return Term{Season: Winter, Year: t.Year + 1}
	}
}

// ordinal maps a term onto a monotonically increasing integer.
func (t Term) ordinal() int {
	for i, s := range seasons {
		if s == t.Season {
			return t.Year*len(seasons) + i
		}
	}
	return -1
}

// Before reports whether t precedes u.
func (t Term) Before(u Term) bool {
	return t.ordinal() < u.ordinal()
}

// Parse reads a term written exactly as "<Season> <Year>". Surrounding
// whitespace is ignored and the two parts may be separated by any run of
// whitespace.
func Parse(s string) (Term, error) {
	m := exactPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Term{}, fmt.Errorf("%w: %q", ErrInvalidTerm, s)
	}
	return fromMatch(m)
}

// Find returns the first "<Season> <Year>" shape occurring in text.
func Find(text string) (Term, bool) {
	m := findPattern.FindStringSubmatch(text)
	if m == nil {
		return Term{}, false
	}
	t, err := fromMatch(m)
	if err != nil {
		return Term{}, false
	}
	return t, true
}

func fromMatch(m []string) (Term, error) {
	year, err := strconv.ParseInt(m[2], 10, 0)
	if err != nil {
		return Term{}, fmt.Errorf("%w: year %q: %v", ErrInvalidTerm, m[2], err)
	}
	return Term{Season: Season(m[1]), Year: int(year)}, nil
}

// Range returns every term from start through end inclusive.
func Range(start, end Term) ([]Term, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s is before %s", ErrInvalidTermRange, end, start)
	}
	n := end.ordinal() - start.ordinal() + 1
	terms := make([]Term, 0, n)
	for t := start; !end.Before(t); t = t.Next() {
		terms = append(terms, t)
	}
	return terms, nil
}

// Generate parses the two boundary terms and returns the labels of every
// term between them, inclusive and in order.
func Generate(start, end string) ([]string, error) {
	from, err := Parse(start)
	if err != nil {
		return nil, fmt.Errorf("start term: %w", err)
	}
	to, err := Parse(end)
	if err != nil {
		return nil, fmt.Errorf("end term: %w", err)
	}
	terms, err := Range(from, to)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(terms))
	for i, t := range terms {
		labels[i] = t.String()
	}
	return labels, nil
}
