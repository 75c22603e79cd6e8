package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "collapses space runs",
			input: "Jean    Dupont\t\tParis",
			want:  "Jean Dupont Paris",
		},
		{
			name:  "collapses newline runs",
			input: "line one\n\n\n\nline two",
			want:  "line one\nline two",
		},
		{
			name:  "normalizes CRLF",
			input: "line one\r\nline two\rline three",
			want:  "line one\nline two\nline three",
		},
		{
			name:  "replaces control characters",
			input: "Jean\x00Dupont\x1fParis",
			want:  "Jean Dupont Paris",
		},
		{
			name:  "trims line edges",
			input: "   Jean Dupont   \n   Paris   ",
			want:  "Jean Dupont\nParis",
		},
		{
			name:  "whitespace only",
			input: "   \n\t\n   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	input := "Jean  Dupont\r\n\r\njean@example.com\x0b\nParis"
	once := Normalize(input)
	assert.Equal(t, once, Normalize(once))
}

func TestNormalize_NoControlCharsRemain(t *testing.T) {
	input := "a\x00b\x01c\x7fd\x9fe"
	out := Normalize(input)
	for _, r := range out {
		assert.False(t, isControl(r), "control character %q survived", r)
	}
}

func TestSplitLines(t *testing.T) {
	assert.Empty(t, splitLines(""))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\n\nb\n"))
}
