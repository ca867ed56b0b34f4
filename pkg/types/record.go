// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strconv"

// DocumentKind identifies which parser handles a document.
type DocumentKind string

const (
	KindAcceptanceLetter DocumentKind = "acceptance_letter"
	KindTranscript       DocumentKind = "transcript"
	KindUnrecognized     DocumentKind = "unrecognized"
)

// Bucket labels used for the fixed course buckets of an acceptance letter.
// Generated buckets use the "<Season> <Year>" term label instead.
const (
	BucketExempted     = "Exempted"
	BucketDeficiencies = "Deficiencies"
	BucketTransferred  = "Transfered Courses"
)

// ParsedDetails holds the scalar fields read from an acceptance letter.
// Pointer fields are nil when the corresponding label is missing or its
// value is malformed.
type ParsedDetails struct {
	// DegreeConcentration is the program text, possibly naming several programs.
	DegreeConcentration string `json:"degreeConcentration" yaml:"degreeConcentration"`

	CoopProgram           bool `json:"coopProgram" yaml:"coopProgram"`
	ExtendedCreditProgram bool `json:"extendedCreditProgram" yaml:"extendedCreditProgram"`

	// MinimumProgramLength is the digit string of the credit count (e.g. "90").
	MinimumProgramLength *string `json:"minimumProgramLength" yaml:"minimumProgramLength"`

	// StartingTerm is the canonical "Season Year" of the admission session.
	StartingTerm *string `json:"startingTerm" yaml:"startingTerm"`

	ExpectedGraduationTerm *string `json:"expectedGraduationTerm" yaml:"expectedGraduationTerm"`
	AdmissionStatus        *string `json:"admissionStatus" yaml:"admissionStatus"`
}

// CourseBucket groups canonical course codes under a label. Courses keep
// insertion order and are not deduplicated.
type CourseBucket struct {
	Term    string   `json:"term" yaml:"term"`
	Courses []string `json:"courses" yaml:"courses"`
}

// AcceptanceLetterResult is the parsed form of an admission offer.
type AcceptanceLetterResult struct {
	Details          ParsedDetails  `json:"details" yaml:"details"`
	ExtractedCourses []CourseBucket `json:"extractedCourses" yaml:"extractedCourses"`
}

// ProgramEntry is one row of a transcript's program history.
type ProgramEntry struct {
	DegreeType string `json:"degreeType" yaml:"degreeType"`
	Major      string `json:"major" yaml:"major"`
}

// TranscriptCourse is a course line inside a transcript term block.
// Credits is zero and Grade empty when the line carries only a course code.
type TranscriptCourse struct {
	CourseCode string  `json:"courseCode" yaml:"courseCode"`
	Section    string  `json:"section,omitempty" yaml:"section,omitempty"`
	Title      string  `json:"title,omitempty" yaml:"title,omitempty"`
	Credits    float64 `json:"credits" yaml:"credits"`
	Grade      string  `json:"grade,omitempty" yaml:"grade,omitempty"`
}

// TranscriptTermRecord is one academic term of a transcript.
type TranscriptTermRecord struct {
	Season  string             `json:"season" yaml:"season"`
	Year    int                `json:"year" yaml:"year"`
	Courses []TranscriptCourse `json:"courses" yaml:"courses"`

	// TermGPA is nil when the block has no GPA line.
	TermGPA *float64 `json:"termGPA" yaml:"termGPA"`
}

// TransferCredit is a course credited from a prior institution.
type TransferCredit struct {
	CourseCode string  `json:"courseCode" yaml:"courseCode"`
	Title      string  `json:"title,omitempty" yaml:"title,omitempty"`
	Credits    float64 `json:"credits" yaml:"credits"`
}

// AdditionalInfo holds scalar facts from the transcript footer.
type AdditionalInfo struct {
	MinCreditsRequired    *float64 `json:"minCreditsRequired" yaml:"minCreditsRequired"`
	ProgramCreditsEarned  *float64 `json:"programCreditsEarned" yaml:"programCreditsEarned"`
	CumulativeGPA         *float64 `json:"cumulativeGPA" yaml:"cumulativeGPA"`
	ExtendedCreditProgram bool     `json:"extendedCreditProgram" yaml:"extendedCreditProgram"`
}

// TranscriptResult is the parsed form of an academic transcript.
type TranscriptResult struct {
	ProgramHistory  []ProgramEntry         `json:"programHistory" yaml:"programHistory"`
	Terms           []TranscriptTermRecord `json:"terms" yaml:"terms"`
	TransferCredits []TransferCredit       `json:"transferCredits" yaml:"transferCredits"`
	AdditionalInfo  AdditionalInfo         `json:"additionalInfo" yaml:"additionalInfo"`
}

// ParseResult is the classified output of a document parse. Exactly one of
// AcceptanceLetter and Transcript is set, matching Kind.
type ParseResult struct {
	Kind             DocumentKind            `json:"kind" yaml:"kind"`
	AcceptanceLetter *AcceptanceLetterResult `json:"acceptanceLetter,omitempty" yaml:"acceptanceLetter,omitempty"`
	Transcript       *TranscriptResult       `json:"transcript,omitempty" yaml:"transcript,omitempty"`
}

// CourseCodes returns every course code in the result in document order,
// tagged with the bucket or term it was found under.
func (r *ParseResult) CourseCodes() []BucketCourse {
	var out []BucketCourse
	switch {
	case r.AcceptanceLetter != nil:
		for _, b := range r.AcceptanceLetter.ExtractedCourses {
			for _, c := range b.Courses {
				out = append(out, BucketCourse{Bucket: b.Term, CourseCode: c})
			}
		}
	case r.Transcript != nil:
		for _, tc := range r.Transcript.TransferCredits {
			out = append(out, BucketCourse{Bucket: BucketTransferred, CourseCode: tc.CourseCode})
		}
		for _, t := range r.Transcript.Terms {
			label := t.Season + " " + strconv.Itoa(t.Year)
			for _, c := range t.Courses {
				out = append(out, BucketCourse{Bucket: label, CourseCode: c.CourseCode})
			}
		}
	}
	return out
}

// BucketCourse pairs a course code with the bucket it appeared under.
type BucketCourse struct {
	Bucket     string `json:"bucket" yaml:"bucket"`
	CourseCode string `json:"courseCode" yaml:"courseCode"`
}
