package tui

import (
	"time"

	"github.com/MKhiriev/go-course-sheet/internal/media"
	"github.com/MKhiriev/go-course-sheet/internal/service"
	"github.com/MKhiriev/go-course-sheet/models"
)

type sheetLoadedMsg struct {
	sheet models.CourseSheet
	ok    bool
}

type sheetSavedMsg struct {
	sheet models.CourseSheet
	err   error
}

type sheetDeletedMsg struct {
	err error
}

type exportedMsg struct {
	path string
	err  error
}

// uploadDoneMsg reports a finished batch. draft is the edit buffer the
// files were appended to.
type uploadDoneMsg struct {
	result media.UploadResult
	draft  *service.Draft
}

type blurTickMsg struct {
	field models.SheetField
	at    time.Time
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
