// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-course-sheet/models"
)

func TestNewDraft_Empty(t *testing.T) {
	d := NewDraft(models.CourseSheet{})

	assert.Empty(t, d.ID())
	assert.Nil(t, d.Date())
	assert.Nil(t, d.Discipline())
	assert.Empty(t, d.Media())
	for _, f := range models.SheetFields {
		assert.Empty(t, d.Field(f))
	}
	assert.False(t, d.CourseSheet().HasContent())
}

func TestNewDraft_FromExistingSheet(t *testing.T) {
	sheet := fullSheet()
	sheet.ID = "sheet-1"

	d := NewDraft(sheet)

	assert.Equal(t, "sheet-1", d.ID())
	assert.Equal(t, "- Shadow boxing 3 rounds", d.Field(models.FieldWarmUp))
	assert.Equal(t, sheet.Normalize(), d.CourseSheet())
}

func TestDraft_DoesNotAliasSource(t *testing.T) {
	sheet := fullSheet()
	d := NewDraft(sheet)

	d.RemoveAttachment("att-1")
	*d.Discipline() = models.Sol

	assert.Len(t, sheet.Media, 2)
	assert.Equal(t, models.Striking, *sheet.Discipline)
	assert.Equal(t, models.Striking, *d.Discipline())
}

func TestDraft_DateIsACopy(t *testing.T) {
	d := NewDraft(models.CourseSheet{})
	assert.Nil(t, d.Date())

	d.SetDate(day(2026, time.March, 14))
	*d.Date() = time.Time{}

	assert.Equal(t, *day(2026, time.March, 14), *d.Date())
}

func TestDraft_SetDateTruncatesToDay(t *testing.T) {
	d := NewDraft(models.CourseSheet{})

	at := time.Date(2026, time.May, 2, 18, 45, 0, 0, time.UTC)
	d.SetDate(&at)

	require.NotNil(t, d.Date())
	assert.Equal(t, *day(2026, time.May, 2), *d.Date())

	d.SetDate(nil)
	assert.Nil(t, d.Date())
}

func TestDraft_SetDisciplineEmptyClears(t *testing.T) {
	d := NewDraft(models.CourseSheet{})

	mma := models.MMA
	d.SetDiscipline(&mma)
	require.NotNil(t, d.Discipline())

	empty := models.Discipline("")
	d.SetDiscipline(&empty)
	assert.Nil(t, d.Discipline())
}

func TestDraft_ApplyTemplate(t *testing.T) {
	d := NewDraft(models.CourseSheet{})
	d.SetField(models.FieldNotes, "mes notes")

	require.True(t, d.ApplyTemplate("striking"))

	tpl, ok := models.Template("striking")
	require.True(t, ok)
	require.NotNil(t, d.Discipline())
	assert.Equal(t, models.Striking, *d.Discipline())
	assert.Equal(t, *tpl.WarmUp, d.Field(models.FieldWarmUp))
	assert.Equal(t, *tpl.Stretching, d.Field(models.FieldStretching))
	assert.Equal(t, "mes notes", d.Field(models.FieldNotes))
}

func TestDraft_ApplyTemplate_NeverTouchesNotesOrMissingFields(t *testing.T) {
	d := NewDraft(models.CourseSheet{})
	lutte := models.Lutte
	d.SetDiscipline(&lutte)

	require.True(t, d.ApplyTemplate("debutant"))

	assert.Empty(t, d.Field(models.FieldNotes), "template notes are not copied")
	require.NotNil(t, d.Discipline(), "a template without discipline keeps the current one")
	assert.Equal(t, models.Lutte, *d.Discipline())
}

func TestDraft_ApplyTemplate_Unknown(t *testing.T) {
	d := NewDraft(models.CourseSheet{})

	assert.False(t, d.ApplyTemplate("boxe-thai"))
	assert.False(t, d.CourseSheet().HasContent())
}

func TestDraft_Attachments(t *testing.T) {
	d := NewDraft(models.CourseSheet{})
	d.AddAttachment(models.Attachment{ID: "a"})
	d.AddAttachment(models.Attachment{ID: "b"})
	d.AddAttachment(models.Attachment{ID: "c"})

	assert.True(t, d.RemoveAttachment("b"))
	assert.False(t, d.RemoveAttachment("b"))

	got := d.Media()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)

	got[0].ID = "changed"
	assert.Equal(t, "a", d.Media()[0].ID, "Media returns a copy")
}

func TestDraft_AddAttachmentConcurrently(t *testing.T) {
	d := NewDraft(models.CourseSheet{})

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.AddAttachment(models.Attachment{ID: fmt.Sprintf("att-%d", i)})
		}()
	}
	wg.Wait()

	assert.Len(t, d.Media(), 50)
}

func TestDraft_CourseSheetIsNormalized(t *testing.T) {
	d := NewDraft(models.CourseSheet{ID: "keep"})
	d.SetField(models.FieldDrills, "   ")
	d.SetField(models.FieldSparring, "3x3 minutes")

	sheet := d.CourseSheet()

	assert.Equal(t, "keep", sheet.ID)
	assert.Nil(t, sheet.Drills)
	assert.Equal(t, "3x3 minutes", models.Deref(sheet.Sparring))
	assert.Nil(t, sheet.Media)
	assert.True(t, sheet.HasContent())
}

func openBytes(data []byte) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
}
