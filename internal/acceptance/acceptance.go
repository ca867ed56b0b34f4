// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package acceptance parses the text of an admission offer letter into
// program details and course buckets.
//
// Every field is read from a fixed label anchor. A missing or malformed
// label leaves its field nil, false or empty; the parse itself only fails
// when the admission and graduation terms form an impossible range.
package acceptance

import (
	"regexp"
	"strings"

	"github.com/pdiddy/record-parser/internal/course"
	"github.com/pdiddy/record-parser/internal/label"
	"github.com/pdiddy/record-parser/internal/term"
	"github.com/pdiddy/record-parser/pkg/types"
)

const (
	labelProgram        = "Program/Plan(s):"
	labelAcademicLoad   = "Academic Load:"
	labelSession        = "Session:"
	labelMinLength      = "Minimum Program Length:"
	labelGraduation     = "Expected Graduation Term:"
	labelStatus         = "Admission Status:"
	labelExemptions     = "Exemptions:"
	labelDeficiencies   = "Deficiencies:"
	labelTransfer       = "Transfer Credits:"
	labelAdditionalInfo = "ADDITIONAL INFORMATION"
	labelCoop           = "Co-op Recommendation"

	extendedCreditMarker = "Extended Credit Program"
)

// knownLabels bounds values that run "to the next label".
var knownLabels = []string{
	labelProgram, labelAcademicLoad, labelSession, labelMinLength,
	labelGraduation, labelStatus, labelExemptions, labelDeficiencies,
	labelTransfer, labelAdditionalInfo,
}

// coopMarkers signal a co-operative education recommendation anywhere in
// the letter. The labelCoop field is judged by its value instead, since
// letters print that label whether or not the student was recommended.
var coopMarkers = []string{
	"recommended for the Co-op",
	"Co-operative Education",
}

// coopPositive are the values of labelCoop that grant the recommendation.
var coopPositive = []string{"Congratulations", "recommended for"}

var coopNegative = []string{"Not recommended", "not recommended", "NOT RECOMMENDED"}

var digitsPattern = regexp.MustCompile(`\d+`)

// Parse reads an acceptance letter. Buckets are emitted in a fixed order:
// Exempted, Deficiencies, Transfered Courses (each only when non-empty),
// then one empty bucket per term from the starting term through the
// expected graduation term.
func Parse(text string) (*types.AcceptanceLetterResult, error) {
	details, start, grad := parseDetails(text)

	buckets := []types.CourseBucket{}
	for _, b := range []struct {
		name       string
		start, end string
	}{
		{types.BucketExempted, labelExemptions, labelDeficiencies},
		{types.BucketDeficiencies, labelDeficiencies, labelTransfer},
		{types.BucketTransferred, labelTransfer, labelAdditionalInfo},
	} {
		if codes := course.FromText(text, b.start, b.end); len(codes) > 0 {
			buckets = append(buckets, types.CourseBucket{Term: b.name, Courses: codes})
		}
	}

	if start != nil && grad != nil {
		terms, err := term.Range(*start, *grad)
		if err != nil {
			return nil, err
		}
		for _, t := range terms {
			buckets = append(buckets, types.CourseBucket{Term: t.String(), Courses: []string{}})
		}
	}

	return &types.AcceptanceLetterResult{
		Details:          details,
		ExtractedCourses: buckets,
	}, nil
}

// parseDetails fills the scalar fields and returns the parsed boundary
// terms, which are nil when the letter does not state them validly.
func parseDetails(text string) (types.ParsedDetails, *term.Term, *term.Term) {
	var d types.ParsedDetails

	if v, ok := label.Extract(text, labelProgram, labelAcademicLoad); ok {
		d.DegreeConcentration = label.Collapse(v)
	}

	d.CoopProgram = coopRecommended(text)
	d.ExtendedCreditProgram = strings.Contains(text, extendedCreditMarker)

	var start *term.Term
	if v, ok := label.Extract(text, labelSession, labelMinLength); ok {
		if t, found := term.Find(v); found {
			start = &t
			d.StartingTerm = label.Ptr(t.String(), true)
		}
	}

	if v, ok := label.UntilAny(text, labelMinLength, knownLabels); ok {
		d.MinimumProgramLength = label.Ptr(digitsPattern.FindString(v), true)
	}

	var grad *term.Term
	if v, ok := label.UntilAny(text, labelGraduation, knownLabels); ok {
		if t, found := term.Find(v); found {
			grad = &t
			d.ExpectedGraduationTerm = label.Ptr(t.String(), true)
		} else {
			d.ExpectedGraduationTerm = label.Ptr(firstLine(v), true)
		}
	}

	if v, ok := label.UntilAny(text, labelStatus, knownLabels); ok {
		d.AdmissionStatus = label.Ptr(firstLine(v), true)
	}

	return d, start, grad
}

// coopRecommended scans the letter line by line. A labelCoop line counts
// only when its value is a positive recommendation; other marker lines count
// unless they are negated.
func coopRecommended(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if label.ContainsAny(line, coopNegative) {
			continue
		}
		if v, ok := label.Line(line, labelCoop); ok {
			if label.ContainsAny(v, coopPositive) {
				return true
			}
			continue
		}
		if label.ContainsAny(line, coopMarkers) {
			return true
		}
	}
	return false
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return label.Collapse(s)
}
