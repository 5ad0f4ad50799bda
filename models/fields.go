// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SheetField identifies one of the six long-text fields of a [CourseSheet].
type SheetField int

const (
	FieldWarmUp SheetField = iota
	FieldDrills
	FieldTechniques
	FieldSparring
	FieldStretching
	FieldNotes
)

// SheetFields lists the text fields in display order.
var SheetFields = []SheetField{
	FieldWarmUp,
	FieldDrills,
	FieldTechniques,
	FieldSparring,
	FieldStretching,
	FieldNotes,
}

var fieldLabels = map[SheetField][2]string{
	FieldWarmUp:     {"Échauffement", "Échauffement"},
	FieldDrills:     {"Drills", "Drills / Exercices"},
	FieldTechniques: {"Techniques", "Techniques travaillées"},
	FieldSparring:   {"Sparring", "Sparring"},
	FieldStretching: {"Étirement", "Étirement"},
	FieldNotes:      {"Notes personnelles", "Notes personnelles"},
}

// Title is the short heading used when a sheet is displayed.
func (f SheetField) Title() string {
	return fieldLabels[f][0]
}

// Label is the longer caption used in the edit form.
func (f SheetField) Label() string {
	return fieldLabels[f][1]
}

// Field returns the value of field f.
func (s CourseSheet) Field(f SheetField) *string {
	switch f {
	case FieldWarmUp:
		return s.WarmUp
	case FieldDrills:
		return s.Drills
	case FieldTechniques:
		return s.Techniques
	case FieldSparring:
		return s.Sparring
	case FieldStretching:
		return s.Stretching
	case FieldNotes:
		return s.Notes
	default:
		return nil
	}
}

// SetField stores value into field f.
func (s *CourseSheet) SetField(f SheetField, value *string) {
	switch f {
	case FieldWarmUp:
		s.WarmUp = value
	case FieldDrills:
		s.Drills = value
	case FieldTechniques:
		s.Techniques = value
	case FieldSparring:
		s.Sparring = value
	case FieldStretching:
		s.Stretching = value
	case FieldNotes:
		s.Notes = value
	}
}
