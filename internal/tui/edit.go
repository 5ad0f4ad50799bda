// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-course-sheet/internal/autocomplete"
	"github.com/MKhiriev/go-course-sheet/internal/export"
	"github.com/MKhiriev/go-course-sheet/internal/service"
	"github.com/MKhiriev/go-course-sheet/models"
)

const (
	rowDate = iota
	rowDiscipline
	rowFirstField
)

const dateLayout = "02/01/2006"

// disciplineOptions is the cycle of the discipline selector. The empty value
// means no discipline.
var disciplineOptions = append([]models.Discipline{""}, models.Disciplines...)

type editModel struct {
	draft      *service.Draft
	dateInput  textinput.Model
	discipline int
	fields     map[models.SheetField]fieldEditor
	focus      int
	saving     bool
}

func newEditModel(sheet models.CourseSheet, index *autocomplete.Index, opts ...autocomplete.Option) editModel {
	draft := service.NewDraft(sheet)

	dateInput := textinput.New()
	dateInput.Placeholder = "jj/mm/aaaa"
	dateInput.CharLimit = len(dateLayout)
	dateInput.Width = len(dateLayout) + 1
	if date := draft.Date(); date != nil {
		dateInput.SetValue(date.Format(dateLayout))
	}
	dateInput.Focus()

	m := editModel{
		draft:     draft,
		dateInput: dateInput,
		fields:    make(map[models.SheetField]fieldEditor, len(models.SheetFields)),
	}
	for _, f := range models.SheetFields {
		m.fields[f] = newFieldEditor(index, draft.Field(f), opts...)
	}
	m.discipline = disciplineIndex(draft.Discipline())
	return m
}

func disciplineIndex(d *models.Discipline) int {
	if d == nil {
		return 0
	}
	for i, option := range disciplineOptions {
		if option == *d {
			return i
		}
	}
	return 0
}

func (m editModel) rowCount() int {
	return rowFirstField + len(models.SheetFields)
}

// focusedField returns the text field under focus, if any.
func (m editModel) focusedField() (models.SheetField, bool) {
	i := m.focus - rowFirstField
	if i < 0 || i >= len(models.SheetFields) {
		return 0, false
	}
	return models.SheetFields[i], true
}

// moveFocus shifts the focus by delta rows, wrapping around. Leaving a text
// field with open suggestions schedules their closing after the blur delay.
func (m *editModel) moveFocus(delta int, now time.Time) tea.Cmd {
	var cmd tea.Cmd
	if f, ok := m.focusedField(); ok {
		ed := m.fields[f]
		if ed.ctrl.State() == autocomplete.Suggesting {
			ed.ctrl.Blur(now)
			cmd = tea.Tick(ed.ctrl.BlurDelay(), func(at time.Time) tea.Msg {
				return blurTickMsg{field: f, at: at}
			})
		}
	}
	if m.focus == rowDate {
		m.dateInput.Blur()
	}

	n := m.rowCount()
	m.focus = ((m.focus+delta)%n + n) % n

	if f, ok := m.focusedField(); ok {
		m.fields[f].ctrl.Focus()
	}
	if m.focus == rowDate {
		m.dateInput.Focus()
	}
	return cmd
}

func (m *editModel) cycleDiscipline(delta int) {
	n := len(disciplineOptions)
	m.discipline = ((m.discipline+delta)%n + n) % n
	d := disciplineOptions[m.discipline]
	m.draft.SetDiscipline(&d)
}

// syncDraft copies the form state into the draft.
func (m editModel) syncDraft() error {
	for f, ed := range m.fields {
		m.draft.SetField(f, ed.Value())
	}

	date, err := parseDate(m.dateInput.Value())
	if err != nil {
		return err
	}
	m.draft.SetDate(date)
	return nil
}

// applyTemplate loads the template named key into the form.
func (m *editModel) applyTemplate(key string) bool {
	for f, ed := range m.fields {
		m.draft.SetField(f, ed.Value())
	}
	if !m.draft.ApplyTemplate(key) {
		return false
	}
	for f, ed := range m.fields {
		ed.ctrl.Reset(m.draft.Field(f))
	}
	m.discipline = disciplineIndex(m.draft.Discipline())
	return true
}

// toSheet returns the record described by the form.
func (m editModel) toSheet() (models.CourseSheet, error) {
	if err := m.syncDraft(); err != nil {
		return models.CourseSheet{}, err
	}
	return m.draft.CourseSheet(), nil
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{dateLayout, "02-01-2006", time.DateOnly} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", errInvalidDate, s)
}

func (m editModel) label(row int, text string) string {
	if row == m.focus {
		return focusedLabelStyle.Render("> " + text)
	}
	return labelStyle.Render("  " + text)
}

func (m editModel) View() string {
	var b strings.Builder

	b.WriteString(m.label(rowDate, "Date du cours"))
	b.WriteString("\n    ")
	b.WriteString(m.dateInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.label(rowDiscipline, "Discipline"))
	b.WriteString("\n    ")
	if d := disciplineOptions[m.discipline]; d != "" {
		b.WriteString("< " + disciplineBadge(d) + " >")
	} else {
		b.WriteString("< Aucune >")
	}
	b.WriteString("\n\n")

	for i, f := range models.SheetFields {
		row := rowFirstField + i
		ed := m.fields[f]
		b.WriteString(m.label(row, f.Label()))
		b.WriteString("\n")
		b.WriteString(indent(ed.View(row == m.focus), "    "))
		b.WriteString("\n")
		if panel := ed.suggestionsView(); panel != "" {
			b.WriteString(indent(panel, "    "))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	mediaCount := len(m.draft.Media())
	b.WriteString(labelStyle.Render("  " + export.MediaHeading))
	b.WriteString(fmt.Sprintf("\n    %d élément(s)\n", mediaCount))

	if m.saving {
		b.WriteString("\nEnregistrement...\n")
	}

	title := "Créer la fiche"
	if m.draft.ID() != "" {
		title = "Modifier la fiche"
	}
	return renderPage(title, b.String(),
		"tab/↑↓ champ  ←→ discipline  ctrl+t template  ctrl+o médias  ctrl+s enregistrer  échap annuler")
}

func textinputBlink() tea.Cmd {
	return textinput.Blink
}
