package autocomplete

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxSuggestions is the number of candidates returned when the
	// caller does not ask for a specific limit.
	DefaultMaxSuggestions = 5

	// MinQueryLength is the shortest query, in runes, that produces suggestions.
	MinQueryLength = 2
)

// Index matches partial words against a fixed, ordered vocabulary.
// It is immutable after construction and safe for concurrent use.
type Index struct {
	entries []string
	lowered []string
}

// NewIndex builds an index over vocab. Declaration order is kept and drives
// the order of results inside each match group.
func NewIndex(vocab []string) *Index {
	idx := &Index{
		entries: make([]string, 0, len(vocab)),
		lowered: make([]string, 0, len(vocab)),
	}
	for _, v := range vocab {
		if strings.TrimSpace(v) == "" {
			continue
		}
		idx.entries = append(idx.entries, v)
		idx.lowered = append(idx.lowered, strings.ToLower(v))
	}
	return idx
}

// NewDefaultIndex builds an index over [DefaultVocabulary].
func NewDefaultIndex() *Index {
	return NewIndex(DefaultVocabulary)
}

// Len returns the number of vocabulary entries.
func (i *Index) Len() int {
	return len(i.entries)
}

// Match returns at most limit entries matching query, case-insensitively.
//
// Entries starting with the query come first, then entries containing it
// elsewhere; both groups keep vocabulary order. Queries shorter than
// [MinQueryLength] runes yield nil. A non-positive limit means
// [DefaultMaxSuggestions].
func (i *Index) Match(query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < MinQueryLength {
		return nil
	}
	if limit <= 0 {
		limit = DefaultMaxSuggestions
	}

	out := make([]string, 0, limit)
	for n, entry := range i.lowered {
		if len(out) == limit {
			return out
		}
		if strings.HasPrefix(entry, q) {
			out = append(out, i.entries[n])
		}
	}

	for n, entry := range i.lowered {
		if len(out) == limit {
			break
		}
		if !strings.HasPrefix(entry, q) && strings.Contains(entry, q) {
			out = append(out, i.entries[n])
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
