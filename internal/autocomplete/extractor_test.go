package autocomplete

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractWord(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		want   Word
	}{
		{
			name:   "empty text",
			text:   "",
			cursor: 0,
			want:   Word{Text: "", Start: 0, End: 0},
		},
		{
			name:   "cursor at end of single word",
			text:   "boxin",
			cursor: 5,
			want:   Word{Text: "boxin", Start: 0, End: 5},
		},
		{
			name:   "cursor at start of text",
			text:   "boxin techniques",
			cursor: 0,
			want:   Word{Text: "boxin", Start: 0, End: 5},
		},
		{
			name:   "cursor inside middle word",
			text:   "I like boxin techniques",
			cursor: 10,
			want:   Word{Text: "boxin", Start: 7, End: 12},
		},
		{
			name:   "cursor touching word end before space",
			text:   "I like boxin techniques",
			cursor: 12,
			want:   Word{Text: "boxin", Start: 7, End: 12},
		},
		{
			name:   "cursor between two spaces",
			text:   "a  b",
			cursor: 2,
			want:   Word{Text: "", Start: 2, End: 2},
		},
		{
			name:   "newline is a boundary",
			text:   "- Jab\n- hoo",
			cursor: 11,
			want:   Word{Text: "hoo", Start: 8, End: 11},
		},
		{
			name:   "punctuation is kept",
			text:   "(teep), next",
			cursor: 3,
			want:   Word{Text: "(teep),", Start: 0, End: 7},
		},
		{
			name:   "single character word",
			text:   "a b c",
			cursor: 2,
			want:   Word{Text: "b", Start: 2, End: 3},
		},
		{
			name:   "offsets are runes",
			text:   "Étirements ja",
			cursor: 13,
			want:   Word{Text: "ja", Start: 11, End: 13},
		},
		{
			name:   "cursor past end is clamped",
			text:   "jab",
			cursor: 42,
			want:   Word{Text: "jab", Start: 0, End: 3},
		},
		{
			name:   "negative cursor is clamped",
			text:   "jab",
			cursor: -1,
			want:   Word{Text: "jab", Start: 0, End: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractWord(tt.text, tt.cursor))
		})
	}
}

func TestExtractWord_BoundsHoldForEveryCursor(t *testing.T) {
	texts := []string{
		"",
		" ",
		"\n\n",
		"I like boxin techniques",
		"- Shadow boxing 3 rounds\n- Burpees 3x10\n\n- Jump rope",
		"  leading and trailing  ",
		"Étirements des jambes\nAssouplissement",
	}

	for _, text := range texts {
		runes := []rune(text)
		for c := 0; c <= len(runes); c++ {
			w := ExtractWord(text, c)

			assert.LessOrEqual(t, w.Start, c, "text=%q cursor=%d", text, c)
			assert.GreaterOrEqual(t, w.End, c, "text=%q cursor=%d", text, c)

			span := string(runes[w.Start:w.End])
			assert.Equal(t, span, w.Text)
			assert.False(t, strings.ContainsAny(span, " \n"), "text=%q cursor=%d span=%q", text, c, span)
		}
	}
}
