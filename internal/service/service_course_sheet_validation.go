package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-sheet/internal/logger"
	"github.com/MKhiriev/go-course-sheet/internal/validators"
	"github.com/MKhiriev/go-course-sheet/models"
)

// courseSheetValidationService rejects malformed sheets before they reach
// the wrapped service.
type courseSheetValidationService struct {
	inner     CourseSheetService
	validator validators.Validator

	logger *logger.Logger
}

type courseSheetValidationWrapper struct {
	validator validators.Validator
	logger    *logger.Logger
}

// NewCourseSheetValidationService returns a wrapper validating every sheet
// passed to Save. The identifier is not required: it is assigned by the
// wrapped service.
func NewCourseSheetValidationService(validator validators.Validator, logger *logger.Logger) CourseSheetServiceWrapper {
	return &courseSheetValidationWrapper{validator: validator, logger: logger}
}

func (w *courseSheetValidationWrapper) Wrap(inner CourseSheetService) CourseSheetService {
	return &courseSheetValidationService{inner: inner, validator: w.validator, logger: w.logger}
}

func (v *courseSheetValidationService) Save(ctx context.Context, sheet models.CourseSheet) (models.CourseSheet, error) {
	err := v.validator.Validate(ctx, sheet.Normalize(),
		validators.FieldDate,
		validators.FieldDiscipline,
		validators.FieldMedia,
	)
	if err != nil {
		v.logger.Err(err).Str("func", "*courseSheetValidationService.Save").Msg("course sheet rejected")
		return models.CourseSheet{}, fmt.Errorf("%w: %w", ErrInvalidCourseSheet, err)
	}

	return v.inner.Save(ctx, sheet)
}

func (v *courseSheetValidationService) Load(ctx context.Context) (models.CourseSheet, bool) {
	return v.inner.Load(ctx)
}

func (v *courseSheetValidationService) Delete(ctx context.Context) error {
	return v.inner.Delete(ctx)
}
