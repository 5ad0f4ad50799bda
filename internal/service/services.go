package service

import (
	"github.com/MKhiriev/go-course-sheet/internal/autocomplete"
	"github.com/MKhiriev/go-course-sheet/internal/config"
	"github.com/MKhiriev/go-course-sheet/internal/logger"
	"github.com/MKhiriev/go-course-sheet/internal/media"
	"github.com/MKhiriev/go-course-sheet/internal/store"
	"github.com/MKhiriev/go-course-sheet/internal/utils"
	"github.com/MKhiriev/go-course-sheet/internal/validators"
)

// ClientServices groups everything the editor needs besides its screens.
type ClientServices struct {
	CourseSheetService CourseSheetService
	Codec              *media.Codec
	Uploader           *media.Uploader
	Suggestions        *autocomplete.Index
	IDs                utils.IDGenerator
}

func NewClientServices(slot store.SlotStorage, cfg *config.StructuredConfig, logger *logger.Logger) *ClientServices {
	ids := utils.NewUUIDGenerator()
	validator := validators.NewCourseSheetValidator()

	codec := media.NewCodec(media.Config{
		MaxFileSize: cfg.Media.MaxFileSize.Int64(),
		AllowVideo:  cfg.Media.AllowVideo,
	}, ids)

	sheetSvc := NewCourseSheetService(slot, cfg.Storage.SlotKey, validator, ids, logger)
	sheetSvc = NewCourseSheetValidationService(validator, logger).Wrap(sheetSvc)

	return &ClientServices{
		CourseSheetService: sheetSvc,
		Codec:              codec,
		Uploader:           media.NewUploader(codec, cfg.Media.Concurrency, logger),
		Suggestions:        autocomplete.NewDefaultIndex(),
		IDs:                ids,
	}
}
