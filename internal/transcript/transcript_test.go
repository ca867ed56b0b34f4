// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/record-parser/pkg/types"
)

const sampleTranscript = `Unofficial Transcript
Student Record
Student ID: 40000000

Program History
2021-09-01  Active in Program
Bachelor of Computer Science,   Computer Science
2022-05-01  Change of Program
Bachelor of Engineering, Software Engineering

Transfer Credits
MATH 203  DIFFERENTIAL CALCULUS  3.00
MATH 204  VECTORS AND MATRICES   3.00
PHYS 204

Beginning of Undergraduate Record
Fall 2021
COMP 248  AA  OBJECT-ORIENTED PROGRAMMING I        3.50  A
ENGR 213  S   APPLIED ORDINARY DIFFERENTIAL EQ.    3.00  B+   3.30
Term GPA 3.85
Winter 2022
COMP 249  PP  OBJECT-ORIENTED PROGRAMMING II       3.50  A-
SOEN 228  XX  SYSTEM HARDWARE                      4.00
Summer 2022
ENCS 282  EC  TECHNICAL WRITING                    3.00  A
Term GPA: 4.00
End of Student Record

Extended Credit Program
Min. Credits Required:  120.00
Program Credits Earned: 34.50
Cumulative GPA: 3.92`

func floatPtr(f float64) *float64 { return &f }

func TestParse_Sample(t *testing.T) {
	got := Parse(sampleTranscript)

	assert.Equal(t, []types.ProgramEntry{
		{DegreeType: "Bachelor of Computer Science", Major: "Computer Science"},
		{DegreeType: "Bachelor of Engineering", Major: "Software Engineering"},
	}, got.ProgramHistory)

	assert.Equal(t, []types.TransferCredit{
		{CourseCode: "MATH203", Title: "DIFFERENTIAL CALCULUS", Credits: 3},
		{CourseCode: "MATH204", Title: "VECTORS AND MATRICES", Credits: 3},
		{CourseCode: "PHYS204"},
	}, got.TransferCredits)

	require.Len(t, got.Terms, 3)

	fall := got.Terms[0]
	assert.Equal(t, "Fall", fall.Season)
	assert.Equal(t, 2021, fall.Year)
	assert.Equal(t, floatPtr(3.85), fall.TermGPA)
	assert.Equal(t, []types.TranscriptCourse{
		{CourseCode: "COMP248", Section: "AA", Title: "OBJECT-ORIENTED PROGRAMMING I", Credits: 3.5, Grade: "A"},
		{CourseCode: "ENGR213", Section: "S", Title: "APPLIED ORDINARY DIFFERENTIAL EQ.", Credits: 3, Grade: "B+"},
	}, fall.Courses)

	winter := got.Terms[1]
	assert.Equal(t, "Winter", winter.Season)
	assert.Equal(t, 2022, winter.Year)
	assert.Nil(t, winter.TermGPA, "block without a GPA line keeps a nil GPA")
	assert.Equal(t, []types.TranscriptCourse{
		{CourseCode: "COMP249", Section: "PP", Title: "OBJECT-ORIENTED PROGRAMMING II", Credits: 3.5, Grade: "A-"},
		{CourseCode: "SOEN228", Section: "XX", Title: "SYSTEM HARDWARE", Credits: 4},
	}, winter.Courses)

	summer := got.Terms[2]
	assert.Equal(t, "Summer", summer.Season)
	assert.Equal(t, floatPtr(4.0), summer.TermGPA)
	assert.Len(t, summer.Courses, 1)

	assert.Equal(t, types.AdditionalInfo{
		MinCreditsRequired:    floatPtr(120),
		ProgramCreditsEarned:  floatPtr(34.5),
		CumulativeGPA:         floatPtr(3.92),
		ExtendedCreditProgram: true,
	}, got.AdditionalInfo)
}

func TestParse_Empty(t *testing.T) {
	got := Parse("")

	assert.NotNil(t, got.ProgramHistory)
	assert.Empty(t, got.ProgramHistory)
	assert.NotNil(t, got.Terms)
	assert.Empty(t, got.Terms)
	assert.NotNil(t, got.TransferCredits)
	assert.Empty(t, got.TransferCredits)
	assert.Equal(t, types.AdditionalInfo{}, got.AdditionalInfo)
}

func TestParse_TermBlocks(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantTerms []types.TranscriptTermRecord
	}{
		{
			name: "no record markers uses whole text",
			text: "Transcript\nWinter 2023\nCOMP 352 N DATA STRUCTURES AND ALGORITHMS 3.00 B\nTerm GPA 3.00",
			wantTerms: []types.TranscriptTermRecord{
				{
					Season: "Winter", Year: 2023,
					Courses: []types.TranscriptCourse{
						{CourseCode: "COMP352", Section: "N", Title: "DATA STRUCTURES AND ALGORITHMS", Credits: 3, Grade: "B"},
					},
					TermGPA: floatPtr(3.0),
				},
			},
		},
		{
			name: "courses before the first term are ignored",
			text: "Beginning of Undergraduate Record\nCOMP 248 AA OOP I 3.50 A\nFall 2023\nEnd of Student Record",
			wantTerms: []types.TranscriptTermRecord{
				{Season: "Fall", Year: 2023, Courses: []types.TranscriptCourse{}},
			},
		},
		{
			name: "course line without credits keeps the code",
			text: "Beginning of Undergraduate Record\nSummer 2024\nCWT 100 CO-OP WORK TERM\nEnd of Student Record",
			wantTerms: []types.TranscriptTermRecord{
				{
					Season: "Summer", Year: 2024,
					Courses: []types.TranscriptCourse{
						{CourseCode: "CWT100", Title: "CO-OP WORK TERM"},
					},
				},
			},
		},
		{
			name: "term labels with trailing text do not open blocks",
			text: "Beginning of Undergraduate Record\nFall 2023 Dean's List\nEnd of Student Record",
			wantTerms: []types.TranscriptTermRecord{},
		},
		{
			name: "lines after end of record are ignored",
			text: "Beginning of Undergraduate Record\nFall 2023\nEnd of Student Record\nWinter 2024\nCOMP 249 PP OOP II 3.50 A",
			wantTerms: []types.TranscriptTermRecord{
				{Season: "Fall", Year: 2023, Courses: []types.TranscriptCourse{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTerms, Parse(tt.text).Terms)
		})
	}
}

func TestParse_RunningCumulativeGPA(t *testing.T) {
	text := `Unofficial Transcript
Student Record
Beginning of Undergraduate Record
Fall 2023
COMP 248 AA OBJECT-ORIENTED PROGRAMMING I 3.50 A
Term GPA 4.00  Cumulative GPA 4.00
Winter 2024
COMP 249 PP OBJECT-ORIENTED PROGRAMMING II 3.50 C
Term GPA 2.00  Cumulative GPA 3.00
End of Student Record`

	got := Parse(text)
	require.Len(t, got.Terms, 2)
	assert.Equal(t, floatPtr(4.0), got.Terms[0].TermGPA)
	assert.Equal(t, floatPtr(2.0), got.Terms[1].TermGPA)
	assert.Equal(t, floatPtr(3.0), got.AdditionalInfo.CumulativeGPA)
}

func TestParse_ProgramHistoryBounds(t *testing.T) {
	text := "Program History\nBachelor of Arts, Economics\nBeginning of Undergraduate Record\nMaster of Arts, History"
	got := Parse(text)
	assert.Equal(t, []types.ProgramEntry{{DegreeType: "Bachelor of Arts", Major: "Economics"}}, got.ProgramHistory)
}

func TestParse_Idempotent(t *testing.T) {
	assert.Equal(t, Parse(sampleTranscript), Parse(sampleTranscript))
}
