// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/record-parser/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.ArchiveConfig{ArchiveDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func letterResult(codes ...string) *types.ParseResult {
	return &types.ParseResult{
		Kind: types.KindAcceptanceLetter,
		AcceptanceLetter: &types.AcceptanceLetterResult{
			Details: types.ParsedDetails{DegreeConcentration: "Computer Science"},
			ExtractedCourses: []types.CourseBucket{
				{Term: types.BucketExempted, Courses: codes},
				{Term: "Fall 2023", Courses: []string{}},
			},
		},
	}
}

func transcriptResult() *types.ParseResult {
	gpa := 3.5
	return &types.ParseResult{
		Kind: types.KindTranscript,
		Transcript: &types.TranscriptResult{
			ProgramHistory:  []types.ProgramEntry{},
			TransferCredits: []types.TransferCredit{{CourseCode: "MATH203", Credits: 3}},
			Terms: []types.TranscriptTermRecord{
				{
					Season: "Fall", Year: 2022, TermGPA: &gpa,
					Courses: []types.TranscriptCourse{{CourseCode: "COMP248", Credits: 3.5, Grade: "A"}},
				},
			},
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	want := letterResult("COMP248", "MATH203")
	require.NoError(t, store.Save(ctx, "letter-1", "input/letter-1.txt", want))

	got, err := store.Get(ctx, "letter-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGet_NotFound(t *testing.T) {
	_, err := testStore(t).Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSave_Replaces(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	require.NoError(t, store.Save(ctx, "letter-1", "a.txt", letterResult("COMP248", "MATH203")))
	require.NoError(t, store.Save(ctx, "letter-1", "b.txt", letterResult("ENGL212")))

	entries, err := store.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b.txt", entries[0].SourcePath)
	assert.Equal(t, 1, entries[0].Courses)

	found, err := store.FindByCourse(ctx, "COMP248", 0)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestListAndFind(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	require.NoError(t, store.Save(ctx, "letter-1", "letter-1.txt", letterResult("COMP248", "COMP248")))
	require.NoError(t, store.Save(ctx, "record-1", "record-1.txt", transcriptResult()))

	all, err := store.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	letters, err := store.List(ctx, types.KindAcceptanceLetter, 0)
	require.NoError(t, err)
	require.Len(t, letters, 1)
	assert.Equal(t, "letter-1", letters[0].ID)
	assert.Equal(t, 2, letters[0].Courses, "duplicate codes are archived individually")
	assert.False(t, letters[0].ParsedAt.IsZero())

	found, err := store.FindByCourse(ctx, "COMP248", 0)
	require.NoError(t, err)
	ids := make([]string, len(found))
	for i, e := range found {
		ids[i] = e.ID
	}
	assert.ElementsMatch(t, []string{"letter-1", "record-1"}, ids)

	found, err = store.FindByCourse(ctx, "MATH203", 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, types.KindTranscript, found[0].Kind)

	limited, err := store.List(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
