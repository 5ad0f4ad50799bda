// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package autocomplete

import (
	"time"
)

// DefaultBlurDelay is the grace period between focus loss and closing the
// suggestion panel. It leaves room for a pointer click on a candidate.
const DefaultBlurDelay = 200 * time.Millisecond

// State is the state of the suggestion panel.
type State int

const (
	// Idle means no suggestion panel is shown.
	Idle State = iota

	// Suggesting means a non-empty candidate list is shown with one
	// highlighted entry.
	Suggesting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Suggesting:
		return "suggesting"
	default:
		return "unknown"
	}
}

// Key names understood by [Controller.HandleKey]. They match the names
// bubbletea reports for the corresponding keys.
const (
	KeyUp     = "up"
	KeyDown   = "down"
	KeyEnter  = "enter"
	KeyTab    = "tab"
	KeyEscape = "esc"
)

// Option configures a [Controller].
type Option func(*Controller)

// WithMaxSuggestions sets the maximum number of candidates shown.
func WithMaxSuggestions(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithBlurDelay sets the grace period applied by [Controller.Blur].
func WithBlurDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.blurDelay = d
		}
	}
}

// Controller holds one editable text with its cursor and drives the
// suggestion panel for it.
//
// Controller is not safe for concurrent use; it is meant to live inside a
// single UI event loop.
type Controller struct {
	index     *Index
	limit     int
	blurDelay time.Duration

	text   []rune
	cursor int

	state      State
	candidates []string
	selected   int

	blurPending  bool
	blurDeadline time.Time
}

// NewController returns an idle controller over an empty text.
// A nil index falls back to [NewDefaultIndex].
func NewController(index *Index, opts ...Option) *Controller {
	if index == nil {
		index = NewDefaultIndex()
	}
	c := &Controller{
		index:     index,
		limit:     DefaultMaxSuggestions,
		blurDelay: DefaultBlurDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Text returns the current text.
func (c *Controller) Text() string {
	return string(c.text)
}

// Cursor returns the cursor position as a rune offset.
func (c *Controller) Cursor() int {
	return c.cursor
}

// State returns the panel state.
func (c *Controller) State() State {
	return c.state
}

// Suggestions returns a copy of the current candidates. It is empty when idle.
func (c *Controller) Suggestions() []string {
	return append([]string(nil), c.candidates...)
}

// Selected returns the highlighted candidate index. It is 0 when idle.
func (c *Controller) Selected() int {
	return c.selected
}

// BlurPending reports whether a focus-loss transition is scheduled.
func (c *Controller) BlurPending() bool {
	return c.blurPending
}

// BlurDelay returns the configured focus-loss grace period.
func (c *Controller) BlurDelay() time.Duration {
	return c.blurDelay
}

// SetText handles a text change: it replaces the buffer, moves the cursor and
// recomputes the suggestions for the word under the cursor.
func (c *Controller) SetText(text string, cursor int) {
	c.text = []rune(text)
	c.cursor = clamp(cursor, 0, len(c.text))
	c.refresh()
}

// Reset replaces the text without opening the panel, e.g. when a field is
// loaded from a stored record. The cursor goes to the end of the text.
func (c *Controller) Reset(text string) {
	c.text = []rune(text)
	c.cursor = len(c.text)
	c.close()
}

// MoveCursor moves the cursor without changing the text.
// The panel is left as is; the next accept uses the word at the new position.
func (c *Controller) MoveCursor(cursor int) {
	c.cursor = clamp(cursor, 0, len(c.text))
}

// Insert types s at the cursor.
func (c *Controller) Insert(s string) {
	ins := []rune(s)
	if len(ins) == 0 {
		return
	}
	next := make([]rune, 0, len(c.text)+len(ins))
	next = append(next, c.text[:c.cursor]...)
	next = append(next, ins...)
	next = append(next, c.text[c.cursor:]...)
	c.text = next
	c.cursor += len(ins)
	c.refresh()
}

// DeleteBackward removes the rune before the cursor.
func (c *Controller) DeleteBackward() {
	if c.cursor == 0 {
		return
	}
	c.text = append(c.text[:c.cursor-1:c.cursor-1], c.text[c.cursor:]...)
	c.cursor--
	c.refresh()
}

// DeleteForward removes the rune after the cursor.
func (c *Controller) DeleteForward() {
	if c.cursor >= len(c.text) {
		return
	}
	c.text = append(c.text[:c.cursor:c.cursor], c.text[c.cursor+1:]...)
	c.refresh()
}

// Navigate moves the highlighted candidate by delta, wrapping around both
// ends. It does nothing unless suggestions are shown.
func (c *Controller) Navigate(delta int) bool {
	if c.state != Suggesting || len(c.candidates) == 0 {
		return false
	}
	n := len(c.candidates)
	c.selected = ((c.selected+delta)%n + n) % n
	return true
}

// Accept writes the highlighted candidate over the word under the cursor.
// It is a no-op returning false when there is nothing to accept.
func (c *Controller) Accept() bool {
	if c.state != Suggesting || len(c.candidates) == 0 {
		return false
	}
	return c.apply(c.candidates[c.selected])
}

// Select accepts the candidate at index i, as a pointer click would.
// Out-of-range indexes are ignored.
func (c *Controller) Select(i int) bool {
	if c.state != Suggesting || i < 0 || i >= len(c.candidates) {
		return false
	}
	c.selected = i
	return c.apply(c.candidates[i])
}

// Dismiss closes the panel without touching the text.
func (c *Controller) Dismiss() bool {
	if c.state != Suggesting {
		return false
	}
	c.close()
	return true
}

// Blur records a focus loss at now. The panel closes once [Controller.Tick]
// observes a time at or after now plus the blur delay, unless a selection or
// [Controller.Focus] happens first.
func (c *Controller) Blur(now time.Time) {
	if c.state != Suggesting {
		return
	}
	c.blurPending = true
	c.blurDeadline = now.Add(c.blurDelay)
}

// Focus cancels a pending focus-loss transition.
func (c *Controller) Focus() {
	c.blurPending = false
	c.blurDeadline = time.Time{}
}

// Tick applies a pending focus-loss transition if its deadline has passed.
// It reports whether the panel was closed.
func (c *Controller) Tick(now time.Time) bool {
	if !c.blurPending || now.Before(c.blurDeadline) {
		return false
	}
	c.close()
	return true
}

// HandleKey routes navigation keys to the panel. It reports whether the key
// was consumed; unconsumed keys belong to the text editor. Keys are only
// consumed while suggestions are shown.
func (c *Controller) HandleKey(key string) bool {
	if c.state != Suggesting || len(c.candidates) == 0 {
		return false
	}

	switch key {
	case KeyDown:
		return c.Navigate(1)
	case KeyUp:
		return c.Navigate(-1)
	case KeyEnter, KeyTab:
		return c.Accept()
	case KeyEscape:
		return c.Dismiss()
	}
	return false
}

func (c *Controller) apply(candidate string) bool {
	word := extractRunes(c.text, c.cursor)
	repl := []rune(candidate)

	next := make([]rune, 0, len(c.text)-word.Len()+len(repl))
	next = append(next, c.text[:word.Start]...)
	next = append(next, repl...)
	next = append(next, c.text[word.End:]...)

	c.text = next
	c.cursor = word.Start + len(repl)
	c.close()
	return true
}

func (c *Controller) refresh() {
	c.Focus()

	word := extractRunes(c.text, c.cursor)
	if word.Len() < MinQueryLength {
		c.close()
		return
	}

	matches := c.index.Match(word.Text, c.limit)
	if len(matches) == 0 {
		c.close()
		return
	}

	c.state = Suggesting
	c.candidates = matches
	c.selected = 0
}

func (c *Controller) close() {
	c.state = Idle
	c.candidates = nil
	c.selected = 0
	c.blurPending = false
	c.blurDeadline = time.Time{}
}
