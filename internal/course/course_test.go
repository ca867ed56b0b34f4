// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		span string
		want []string
	}{
		{"spaced code", "COMP 248", []string{"COMP248"}},
		{"joined code", "ENGL212", []string{"ENGL212"}},
		{"two letter prefix", "EC 101", []string{"EC101"}},
		{"suffix letter uppercased", "ENGR 201a", []string{"ENGR201A"}},
		{"tab between parts", "MATH\t203", []string{"MATH203"}},
		{"comma separated list", "COMP 248, MATH 203", []string{"COMP248", "MATH203"}},
		{"duplicates preserved", "COMP 248 and again COMP248", []string{"COMP248", "COMP248"}},
		{"multi-line order", "MATH 203\nCOMP 248\nMATH 203", []string{"MATH203", "COMP248", "MATH203"}},
		{"glued to following word", "COMP248Intro to Programming", []string{"COMP248"}},
		{"glued after suffix letter", "ENGR 201aLab", []string{"ENGR201"}},
		{"glued codes in a list", "COMP248Intro, MATH 203", []string{"COMP248", "MATH203"}},
		{"lowercase prefix ignored", "comp 248", []string{}},
		{"prefix too long", "COMPUTE 248", []string{}},
		{"number too long", "COMP 24800", []string{}},
		{"does not join across lines", "COMP\n248", []string{}},
		{"season words are not codes", "Fall 2023 Winter 2024", []string{}},
		{"no codes", "None", []string{}},
		{"empty span", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.span))
		})
	}
}

func TestFromText(t *testing.T) {
	text := `Exemptions: COMP 248
ENGL 212
Deficiencies: COMM 212
Transfer Credits: ECON 201`

	assert.Equal(t, []string{"COMP248", "ENGL212"}, FromText(text, "Exemptions:", "Deficiencies:"))
	assert.Equal(t, []string{"COMM212"}, FromText(text, "Deficiencies:", "Transfer Credits:"))
	assert.Equal(t, []string{"ECON201"}, FromText(text, "Transfer Credits:", "ADDITIONAL INFORMATION"))

	got := FromText(text, "Missing Label:", "Deficiencies:")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLeading(t *testing.T) {
	code, rest, ok := Leading("  COMP 248  AA  OBJECT-ORIENTED PROGRAMMING I  3.50  A")
	assert.True(t, ok)
	assert.Equal(t, "COMP248", code)
	assert.Equal(t, "AA  OBJECT-ORIENTED PROGRAMMING I  3.50  A", rest)

	_, _, ok = Leading("Term GPA 3.85")
	assert.False(t, ok)
}
