package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-course-sheet/internal/autocomplete"
)

// fieldEditor is a multi-line text field whose buffer and suggestion panel
// are owned by an autocomplete controller.
type fieldEditor struct {
	ctrl *autocomplete.Controller
}

func newFieldEditor(index *autocomplete.Index, text string, opts ...autocomplete.Option) fieldEditor {
	ctrl := autocomplete.NewController(index, opts...)
	ctrl.Reset(text)
	return fieldEditor{ctrl: ctrl}
}

func (f fieldEditor) Value() string {
	return f.ctrl.Text()
}

// handleKey applies msg to the field and reports whether it was consumed.
// While suggestions are shown, navigation keys go to the panel first.
func (f fieldEditor) handleKey(msg tea.KeyMsg) bool {
	if f.ctrl.HandleKey(msg.String()) {
		return true
	}

	switch msg.Type {
	case tea.KeyRunes:
		f.ctrl.Insert(string(msg.Runes))
	case tea.KeySpace:
		f.ctrl.Insert(" ")
	case tea.KeyEnter:
		f.ctrl.Insert("\n")
	case tea.KeyBackspace:
		f.ctrl.DeleteBackward()
	case tea.KeyDelete:
		f.ctrl.DeleteForward()
	case tea.KeyLeft:
		f.ctrl.MoveCursor(f.ctrl.Cursor() - 1)
	case tea.KeyRight:
		f.ctrl.MoveCursor(f.ctrl.Cursor() + 1)
	case tea.KeyHome, tea.KeyCtrlA:
		f.ctrl.MoveCursor(lineStart(f.ctrl.Text(), f.ctrl.Cursor()))
	case tea.KeyEnd, tea.KeyCtrlE:
		f.ctrl.MoveCursor(lineEnd(f.ctrl.Text(), f.ctrl.Cursor()))
	default:
		return false
	}
	return true
}

func (f fieldEditor) View(focused bool) string {
	text := []rune(f.ctrl.Text())
	if !focused {
		if len(text) == 0 {
			return helpStyle.Render("-")
		}
		return string(text)
	}

	cursor := f.ctrl.Cursor()
	var b strings.Builder
	b.WriteString(string(text[:cursor]))
	switch {
	case cursor >= len(text):
		b.WriteString(cursorStyle.Render(" "))
	case text[cursor] == '\n':
		b.WriteString(cursorStyle.Render(" "))
		b.WriteString("\n")
	default:
		b.WriteString(cursorStyle.Render(string(text[cursor])))
	}
	if cursor < len(text) {
		b.WriteString(string(text[cursor+1:]))
	}
	return b.String()
}

func (f fieldEditor) suggestionsView() string {
	if f.ctrl.State() != autocomplete.Suggesting {
		return ""
	}

	items := f.ctrl.Suggestions()
	lines := make([]string, 0, len(items))
	for i, item := range items {
		if i == f.ctrl.Selected() {
			lines = append(lines, selectedStyle.Render(item))
			continue
		}
		lines = append(lines, item)
	}
	return suggestionsStyle.Render(strings.Join(lines, "\n"))
}

func lineStart(text string, cursor int) int {
	r := []rune(text)
	for i := min(cursor, len(r)) - 1; i >= 0; i-- {
		if r[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

func lineEnd(text string, cursor int) int {
	r := []rune(text)
	for i := max(cursor, 0); i < len(r); i++ {
		if r[i] == '\n' {
			return i
		}
	}
	return len(r)
}
