// Package autocomplete implements word-level completion of technique names
// while typing free text.
//
// The package is split into three layers:
//   - [ExtractWord] finds the word under the cursor;
//   - [Index] matches a partial word against a fixed vocabulary;
//   - [Controller] drives both against live edits and keyboard input and
//     writes the chosen suggestion back into the text.
//
// All offsets handled by this package are rune offsets, not byte offsets.
package autocomplete

// Word is the run of non-separator characters around a cursor.
// Start and End are rune offsets into the source text, End is exclusive.
type Word struct {
	Text  string
	Start int
	End   int
}

// Len returns the length of the word in runes.
func (w Word) Len() int {
	return w.End - w.Start
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\n'
}

// ExtractWord returns the word containing or touching cursor in text.
//
// The word boundaries are the nearest space or newline on each side; no other
// character (punctuation included) ends a word. When cursor sits between two
// separators the returned word is empty and Start == End == cursor.
// A cursor outside [0, len(text)] is clamped into that range.
func ExtractWord(text string, cursor int) Word {
	return extractRunes([]rune(text), cursor)
}

func extractRunes(runes []rune, cursor int) Word {
	cursor = clamp(cursor, 0, len(runes))

	start := cursor
	for start > 0 && !isSeparator(runes[start-1]) {
		start--
	}

	end := cursor
	for end < len(runes) && !isSeparator(runes[end]) {
		end++
	}

	return Word{
		Text:  string(runes[start:end]),
		Start: start,
		End:   end,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
