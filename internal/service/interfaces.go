package service

import (
	"context"

	"github.com/MKhiriev/go-course-sheet/models"
)

// CourseSheetService persists the single course sheet of the application.
// Storage failures never panic: they are logged and reported to the caller.
type CourseSheetService interface {
	// Save overwrites the stored record with sheet. A missing identifier is
	// assigned first; the record actually stored is returned. On failure the
	// previously stored record is left untouched.
	Save(ctx context.Context, sheet models.CourseSheet) (models.CourseSheet, error)

	// Load returns the stored record. The second result is false when the
	// slot was never written, was deleted, cannot be read or holds a
	// corrupted payload.
	Load(ctx context.Context) (models.CourseSheet, bool)

	// Delete removes the stored record. Deleting an empty slot is not an
	// error.
	Delete(ctx context.Context) error
}

// CourseSheetServiceWrapper defines middleware composition for
// CourseSheetService. Implementations wrap an existing service to add
// behavior such as validating.
type CourseSheetServiceWrapper interface {
	Wrap(CourseSheetService) CourseSheetService
}
