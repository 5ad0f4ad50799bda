package service

import (
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-course-sheet/models"
)

// Draft is the working copy of a course sheet while it is being edited.
// All methods are safe for concurrent use: uploads finish on their own
// goroutines and append to the media list while the editor keeps running.
type Draft struct {
	mu sync.Mutex

	id         string
	date       *time.Time
	discipline *models.Discipline
	fields     map[models.SheetField]string
	media      []models.Attachment
}

// NewDraft starts editing from sheet. The zero sheet opens a fresh draft;
// an existing sheet keeps its identifier when saved again.
func NewDraft(sheet models.CourseSheet) *Draft {
	d := &Draft{
		id:     sheet.ID,
		fields: make(map[models.SheetField]string, len(models.SheetFields)),
		media:  slices.Clone(sheet.Media),
	}
	if sheet.Discipline != nil && *sheet.Discipline != "" {
		discipline := *sheet.Discipline
		d.discipline = &discipline
	}
	if sheet.Date != nil {
		date := *sheet.Date
		d.date = &date
	}
	for _, f := range models.SheetFields {
		d.fields[f] = models.Deref(sheet.Field(f))
	}
	return d
}

// ID returns the identifier of the edited record, empty for a new sheet.
func (d *Draft) ID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.id
}

// Date returns a copy of the course day, or nil when unset.
func (d *Draft) Date() *time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.date == nil {
		return nil
	}
	date := *d.date
	return &date
}

// SetDate sets the course day. nil clears it.
func (d *Draft) SetDate(date *time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if date == nil {
		d.date = nil
		return
	}
	day := models.TruncateToDay(*date)
	d.date = &day
}

// Discipline returns a copy of the selected discipline, or nil.
func (d *Draft) Discipline() *models.Discipline {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.discipline == nil {
		return nil
	}
	discipline := *d.discipline
	return &discipline
}

// SetDiscipline sets the discipline. nil or an empty value clears it.
func (d *Draft) SetDiscipline(discipline *models.Discipline) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if discipline == nil || *discipline == "" {
		d.discipline = nil
		return
	}
	value := *discipline
	d.discipline = &value
}

// Field returns the text of f.
func (d *Draft) Field(f models.SheetField) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fields[f]
}

// SetField replaces the text of f.
func (d *Draft) SetField(f models.SheetField, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fields[f] = text
}

// AddAttachment appends att to the media list.
func (d *Draft) AddAttachment(att models.Attachment) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.media = append(d.media, att)
}

// RemoveAttachment drops the attachment with the given id and reports
// whether one was found.
func (d *Draft) RemoveAttachment(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := slices.IndexFunc(d.media, func(att models.Attachment) bool { return att.ID == id })
	if i < 0 {
		return false
	}
	d.media = slices.Delete(d.media, i, i+1)
	return true
}

// Media returns a copy of the media list in insertion order.
func (d *Draft) Media() []models.Attachment {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.media)
}

// ApplyTemplate copies the non-empty fields of the template named key into
// the draft. Notes are personal and never overwritten. It returns false for
// an unknown key.
func (d *Draft) ApplyTemplate(key string) bool {
	tpl, ok := models.Template(key)
	if !ok {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if tpl.Discipline != nil && *tpl.Discipline != "" {
		discipline := *tpl.Discipline
		d.discipline = &discipline
	}
	for _, f := range models.SheetFields {
		if f == models.FieldNotes {
			continue
		}
		if text := models.Deref(tpl.Field(f)); text != "" {
			d.fields[f] = text
		}
	}
	return true
}

// CourseSheet builds the normalized record described by the draft.
func (d *Draft) CourseSheet() models.CourseSheet {
	d.mu.Lock()
	defer d.mu.Unlock()

	sheet := models.CourseSheet{
		ID:    d.id,
		Media: slices.Clone(d.media),
	}
	if d.discipline != nil {
		discipline := *d.discipline
		sheet.Discipline = &discipline
	}
	if d.date != nil {
		date := *d.date
		sheet.Date = &date
	}
	for _, f := range models.SheetFields {
		sheet.SetField(f, models.StringPtr(d.fields[f]))
	}
	return sheet.Normalize()
}
