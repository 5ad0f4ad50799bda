package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-course-sheet/models"
)

// wireCourseSheet is the stored JSON shape of a course sheet. Absent optional
// fields are written as null.
type wireCourseSheet struct {
	ID         string           `json:"id"`
	Date       *string          `json:"date"`
	Discipline *string          `json:"discipline"`
	WarmUp     *string          `json:"warmUp"`
	Techniques *string          `json:"techniques"`
	Sparring   *string          `json:"sparring"`
	Drills     *string          `json:"drills"`
	Stretching *string          `json:"stretching"`
	Notes      *string          `json:"notes"`
	Media      []wireAttachment `json:"media,omitempty"`
}

type wireAttachment struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	DataURL    string `json:"dataUrl"`
	YoutubeURL string `json:"youtubeUrl,omitempty"`
	Name       string `json:"name"`
	Size       int64  `json:"size"`
}

// encodeCourseSheet serializes a normalized sheet. The date is written as
// midnight UTC of its calendar day.
func encodeCourseSheet(sheet models.CourseSheet) ([]byte, error) {
	w := wireCourseSheet{
		ID:         sheet.ID,
		WarmUp:     sheet.WarmUp,
		Techniques: sheet.Techniques,
		Sparring:   sheet.Sparring,
		Drills:     sheet.Drills,
		Stretching: sheet.Stretching,
		Notes:      sheet.Notes,
	}

	if sheet.Date != nil {
		date := models.TruncateToDay(*sheet.Date).Format(time.RFC3339)
		w.Date = &date
	}
	if sheet.Discipline != nil {
		discipline := string(*sheet.Discipline)
		w.Discipline = &discipline
	}

	if len(sheet.Media) > 0 {
		w.Media = make([]wireAttachment, 0, len(sheet.Media))
		for _, att := range sheet.Media {
			w.Media = append(w.Media, wireAttachment{
				ID:         att.ID,
				Type:       string(att.Type),
				DataURL:    att.DataURL,
				YoutubeURL: att.YoutubeURL,
				Name:       att.Name,
				Size:       att.Size,
			})
		}
	}

	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}
	return data, nil
}

// decodeCourseSheet parses a stored payload. Shape errors are reported as
// ErrCorruptedRecord; field-level checks are left to the validator.
func decodeCourseSheet(data []byte) (models.CourseSheet, error) {
	var w wireCourseSheet
	if err := json.Unmarshal(data, &w); err != nil {
		return models.CourseSheet{}, fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
	}

	sheet := models.CourseSheet{
		ID:         w.ID,
		WarmUp:     w.WarmUp,
		Techniques: w.Techniques,
		Sparring:   w.Sparring,
		Drills:     w.Drills,
		Stretching: w.Stretching,
		Notes:      w.Notes,
	}

	if w.Date != nil {
		date, err := decodeDate(*w.Date)
		if err != nil {
			return models.CourseSheet{}, fmt.Errorf("%w: date %q: %w", ErrCorruptedRecord, *w.Date, err)
		}
		sheet.Date = &date
	}
	if w.Discipline != nil {
		discipline := models.Discipline(*w.Discipline)
		sheet.Discipline = &discipline
	}

	if len(w.Media) > 0 {
		sheet.Media = make([]models.Attachment, 0, len(w.Media))
		for _, att := range w.Media {
			sheet.Media = append(sheet.Media, models.Attachment{
				ID:         att.ID,
				Type:       models.AttachmentType(att.Type),
				DataURL:    att.DataURL,
				YoutubeURL: att.YoutubeURL,
				Name:       att.Name,
				Size:       att.Size,
			})
		}
	}

	return sheet.Normalize(), nil
}

// decodeDate reads a stored date back into its calendar day. Midnight UTC is
// the written form. Any other instant comes from a client that stored local
// midnight, so its day is read in the local zone.
func decodeDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		day, dateErr := time.Parse(time.DateOnly, s)
		if dateErr != nil {
			return time.Time{}, err
		}
		return day, nil
	}

	u := t.UTC()
	if u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0 {
		return models.TruncateToDay(u), nil
	}
	return models.TruncateToDay(t.In(time.Local)), nil
}
