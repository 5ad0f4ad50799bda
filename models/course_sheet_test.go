package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseSheet_HasContent(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	empty := ""
	discipline := Lutte

	tests := []struct {
		name  string
		sheet CourseSheet
		want  bool
	}{
		{name: "zero sheet", sheet: CourseSheet{}, want: false},
		{name: "only id", sheet: CourseSheet{ID: "x"}, want: false},
		{name: "empty strings are absent", sheet: CourseSheet{Notes: &empty, WarmUp: &empty}, want: false},
		{name: "media alone does not count", sheet: CourseSheet{Media: []Attachment{{ID: "a", Type: YouTube}}}, want: false},
		{name: "date", sheet: CourseSheet{Date: &date}, want: true},
		{name: "discipline", sheet: CourseSheet{Discipline: &discipline}, want: true},
		{name: "stretching", sheet: CourseSheet{Stretching: StringPtr("x")}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sheet.HasContent())
		})
	}
}

func TestCourseSheet_Normalize(t *testing.T) {
	blank := "   "
	emptyDiscipline := Discipline("")
	paris := time.FixedZone("CET", 3600)
	localMidnight := time.Date(2026, 3, 14, 0, 0, 0, 0, paris)

	in := CourseSheet{
		ID:         "id",
		Date:       &localMidnight,
		Discipline: &emptyDiscipline,
		WarmUp:     &blank,
		Techniques: StringPtr("Jab"),
		Media:      []Attachment{},
	}

	out := in.Normalize()

	require.NotNil(t, out.Date)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), *out.Date)
	assert.Nil(t, out.Discipline)
	assert.Nil(t, out.WarmUp)
	assert.Equal(t, "Jab", Deref(out.Techniques))
	assert.Nil(t, out.Media)
	assert.Equal(t, "id", out.ID)

	// the input is left untouched
	assert.Equal(t, &blank, in.WarmUp)
	assert.Same(t, &localMidnight, in.Date)
}

func TestCourseSheet_NormalizeCopiesMedia(t *testing.T) {
	in := CourseSheet{Media: []Attachment{{ID: "a"}}}
	out := in.Normalize()

	out.Media[0].ID = "changed"
	assert.Equal(t, "a", in.Media[0].ID)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	c := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(&a, &b))
	assert.False(t, SameDay(&a, &c))
	assert.True(t, SameDay(nil, nil))
	assert.False(t, SameDay(&a, nil))
}

func TestFields_RoundTrip(t *testing.T) {
	var s CourseSheet
	for i, f := range SheetFields {
		s.SetField(f, StringPtr(f.Title()))
		assert.Equal(t, f.Title(), Deref(s.Field(f)), "field %d", i)
		assert.NotEmpty(t, f.Label())
	}
	assert.Equal(t, "Échauffement", Deref(s.WarmUp))
	assert.Equal(t, "Notes personnelles", Deref(s.Notes))
	assert.Len(t, s.TextFields(), 6)
}

func TestDiscipline_IsValid(t *testing.T) {
	for _, d := range Disciplines {
		assert.True(t, d.IsValid())
	}
	assert.False(t, Discipline("Boxe").IsValid())
	assert.False(t, Discipline("").IsValid())
}

func TestTemplates(t *testing.T) {
	assert.Equal(t, []string{"striking", "lutte", "sol", "mma", "debutant"}, TemplateNames())

	tpl, ok := Template("sol")
	require.True(t, ok)
	assert.Equal(t, "Cours Sol/Grappling", tpl.Label)
	require.NotNil(t, tpl.Discipline)
	assert.Equal(t, Sol, *tpl.Discipline)
	assert.Nil(t, tpl.Field(FieldNotes))

	beginner, ok := Template("debutant")
	require.True(t, ok)
	assert.Nil(t, beginner.Discipline)
	assert.Equal(t, "Premier cours ou reprise", Deref(beginner.Field(FieldNotes)))

	_, ok = Template("boxe")
	assert.False(t, ok)
	assert.Equal(t, "boxe", TemplateLabel("boxe"))
	assert.Equal(t, "Cours MMA Complet", TemplateLabel("mma"))
}

func TestAttachmentType(t *testing.T) {
	assert.True(t, Image.IsInline())
	assert.True(t, Video.IsInline())
	assert.False(t, YouTube.IsInline())
	assert.False(t, AttachmentType("audio").IsValid())
}

func TestAppBuildInfo_FallsBackToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo(" 1.2.0 ", "", "abc123")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}
