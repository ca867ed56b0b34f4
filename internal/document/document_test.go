// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/record-parser/internal/term"
	"github.com/pdiddy/record-parser/pkg/types"
)

const letter = `Congratulations! This letter is your offer of admission.
Program/Plan(s): Bachelor of Computer Science
Academic Load: Full-time
Session: Winter 2024
Minimum Program Length: 90 credits
Expected Graduation Term: Fall 2024
Admission Status: Admitted
Exemptions: COMP 248
Deficiencies: none
Transfer Credits: none`

const record = `Unofficial Transcript
Student Record
Beginning of Undergraduate Record
Fall 2022
COMP 248 AA OBJECT-ORIENTED PROGRAMMING I 3.50 A
Term GPA 4.00
End of Student Record
Min. Credits Required: 90.00`

func TestParse(t *testing.T) {
	t.Run("acceptance letter", func(t *testing.T) {
		got, err := Parse(letter)
		require.NoError(t, err)
		assert.Equal(t, types.KindAcceptanceLetter, got.Kind)
		assert.Nil(t, got.Transcript)
		require.NotNil(t, got.AcceptanceLetter)
		assert.Equal(t, "Bachelor of Computer Science", got.AcceptanceLetter.Details.DegreeConcentration)
		assert.Equal(t, []types.BucketCourse{
			{Bucket: "Exempted", CourseCode: "COMP248"},
		}, got.CourseCodes())
		assert.Len(t, got.AcceptanceLetter.ExtractedCourses, 4)
	})

	t.Run("transcript", func(t *testing.T) {
		got, err := Parse(record)
		require.NoError(t, err)
		assert.Equal(t, types.KindTranscript, got.Kind)
		assert.Nil(t, got.AcceptanceLetter)
		require.NotNil(t, got.Transcript)
		require.Len(t, got.Transcript.Terms, 1)
		assert.Equal(t, []types.BucketCourse{
			{Bucket: "Fall 2022", CourseCode: "COMP248"},
		}, got.CourseCodes())
	})

	t.Run("unrecognized", func(t *testing.T) {
		got, err := Parse("Invoice #1234\nAmount due: $40.00")
		assert.ErrorIs(t, err, ErrUnrecognizedDocument)
		assert.EqualError(t, err, "neither a valid transcript nor an acceptance letter")
		assert.Nil(t, got)
	})

	t.Run("invalid term range", func(t *testing.T) {
		text := "Congratulations on your offer of admission.\nSession: Fall 2025\nMinimum Program Length: 90\nExpected Graduation Term: Fall 2024"
		_, err := Parse(text)
		assert.ErrorIs(t, err, term.ErrInvalidTermRange)
	})
}

func TestParse_Concurrent(t *testing.T) {
	want, err := Parse(letter)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*types.ParseResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := letter
			if i%2 == 1 {
				text = record
			}
			r, err := Parse(text)
			if err == nil {
				results[i] = r
			}
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		require.NotNil(t, r, "result %d", i)
		if i%2 == 0 {
			assert.Equal(t, want, r)
		} else {
			assert.Equal(t, types.KindTranscript, r.Kind)
		}
	}
}
