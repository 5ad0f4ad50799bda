package models

import (
	"strings"
	"time"
)

// Discipline is the martial-arts discipline a course is dedicated to.
// The set of accepted values is closed; an empty value means "unspecified".
type Discipline string

const (
	// Striking covers stand-up striking (boxing, kickboxing, muay thai).
	Striking Discipline = "Striking"

	// Lutte covers wrestling and takedowns.
	Lutte Discipline = "Lutte"

	// Sol covers ground fighting and grappling.
	Sol Discipline = "Sol"

	// MMA covers mixed sessions combining all ranges.
	MMA Discipline = "MMA"
)

// Disciplines lists every accepted [Discipline] in display order.
var Disciplines = []Discipline{Striking, Lutte, Sol, MMA}

// IsValid reports whether d belongs to the closed discipline set.
func (d Discipline) IsValid() bool {
	for _, known := range Disciplines {
		if d == known {
			return true
		}
	}
	return false
}

// CourseSheet is the single persisted record edited by the application.
//
// Every optional field is a pointer: nil means the field is absent.
// An empty string is treated the same as nil by [CourseSheet.HasContent]
// and removed by [CourseSheet.Normalize].
type CourseSheet struct {
	// ID is the opaque unique identifier assigned on first save.
	// It never changes afterwards.
	ID string

	// Date is the day the course takes place. Only the calendar day is
	// meaningful; the time component is ignored.
	Date *time.Time

	// Discipline is the optional discipline label.
	Discipline *Discipline

	// WarmUp describes the warm-up part of the course.
	WarmUp *string

	// Techniques lists the techniques taught.
	Techniques *string

	// Sparring describes the sparring rounds.
	Sparring *string

	// Drills lists the drills performed.
	Drills *string

	// Stretching describes the cool-down and stretching part.
	Stretching *string

	// Notes holds free-form remarks.
	Notes *string

	// Media is the ordered list of attachments. Order is display order.
	Media []Attachment
}

// HasContent reports whether the sheet carries any user-visible content.
// Attachments alone do not count. The result is derived and never stored.
func (s CourseSheet) HasContent() bool {
	if s.Date != nil && !s.Date.IsZero() {
		return true
	}
	if s.Discipline != nil && *s.Discipline != "" {
		return true
	}
	for _, field := range s.TextFields() {
		if field != nil && *field != "" {
			return true
		}
	}
	return false
}

// TextFields returns the six long-text fields in display order.
func (s CourseSheet) TextFields() []*string {
	out := make([]*string, len(SheetFields))
	for i, f := range SheetFields {
		out[i] = s.Field(f)
	}
	return out
}

// Normalize returns a copy of s where empty strings became nil, the date is
// truncated to the calendar day in UTC, and an empty media list became nil.
func (s CourseSheet) Normalize() CourseSheet {
	out := s
	for _, f := range SheetFields {
		out.SetField(f, NilIfEmpty(s.Field(f)))
	}

	if s.Discipline != nil && *s.Discipline == "" {
		out.Discipline = nil
	}

	if s.Date != nil {
		if s.Date.IsZero() {
			out.Date = nil
		} else {
			day := TruncateToDay(*s.Date)
			out.Date = &day
		}
	}

	if len(s.Media) == 0 {
		out.Media = nil
	} else {
		out.Media = append([]Attachment(nil), s.Media...)
	}

	return out
}

// TruncateToDay keeps only the calendar day of t, expressed at midnight UTC.
// The day is read in t's own location so a local date is not shifted.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b denote the same calendar day.
// Two nil dates are considered equal.
func SameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// NilIfEmpty returns nil for nil or whitespace-only strings and p otherwise.
func NilIfEmpty(p *string) *string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil
	}
	return p
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the value behind p or an empty string.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
