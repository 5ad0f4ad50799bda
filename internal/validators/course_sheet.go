package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-sheet/internal/media"
	"github.com/MKhiriev/go-course-sheet/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the course sheet identifier. It is required on
	// persisted sheets and absent on a fresh working copy.
	FieldID = "id"

	// FieldDate targets the course date.
	FieldDate = "date"

	// FieldDiscipline targets the optional discipline label.
	FieldDiscipline = "discipline"

	// FieldMedia targets the attachment list as a whole.
	FieldMedia = "media"

	// FieldAttachmentID targets the identifier of one attachment.
	FieldAttachmentID = "attachment_id"

	// FieldAttachmentType targets the kind of one attachment.
	FieldAttachmentType = "attachment_type"

	// FieldAttachmentPayload targets the payload of one attachment.
	FieldAttachmentPayload = "attachment_payload"
)

// CourseSheetValidator implements [Validator] for [models.CourseSheet] and
// [models.Attachment], by value or by pointer.
type CourseSheetValidator struct {
}

// NewCourseSheetValidator returns a [CourseSheetValidator] as a [Validator].
func NewCourseSheetValidator() Validator {
	return &CourseSheetValidator{}
}

func (v *CourseSheetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CourseSheet:
		return v.validateCourseSheet(ctx, value, fields...)
	case *models.CourseSheet:
		return v.validateCourseSheet(ctx, *value, fields...)

	case models.Attachment:
		return v.validateAttachment(ctx, value, fields...)
	case *models.Attachment:
		return v.validateAttachment(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CourseSheetValidator) validateCourseSheet(ctx context.Context, sheet models.CourseSheet, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldDate, FieldDiscipline, FieldMedia}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if sheet.ID == "" {
				return ErrInvalidID
			}
		case FieldDate:
			if sheet.Date != nil && sheet.Date.IsZero() {
				return ErrInvalidDate
			}
		case FieldDiscipline:
			if sheet.Discipline != nil && *sheet.Discipline != "" && !sheet.Discipline.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidDiscipline, *sheet.Discipline)
			}
		case FieldMedia:
			seen := make(map[string]struct{}, len(sheet.Media))
			for i, att := range sheet.Media {
				if err := v.validateAttachment(ctx, att); err != nil {
					return fmt.Errorf("validation error at media index %d: %w", i, err)
				}
				if _, dup := seen[att.ID]; dup {
					return fmt.Errorf("%w: %q", ErrDuplicateAttachmentID, att.ID)
				}
				seen[att.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CourseSheetValidator) validateAttachment(ctx context.Context, att models.Attachment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAttachmentID, FieldAttachmentType, FieldAttachmentPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldAttachmentID:
			if att.ID == "" {
				return ErrInvalidAttachmentID
			}
		case FieldAttachmentType:
			if !att.Type.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidAttachmentType, att.Type)
			}
		case FieldAttachmentPayload:
			if err := validatePayload(att); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validatePayload(att models.Attachment) error {
	if att.Size < 0 {
		return ErrInvalidAttachmentSize
	}

	if att.Type == models.YouTube {
		if att.Size != 0 {
			return ErrInvalidAttachmentSize
		}
		if att.DataURL == "" || att.YoutubeURL == "" {
			return ErrInvalidYouTubeRef
		}
		return nil
	}

	if att.YoutubeURL != "" {
		return fmt.Errorf("%w: youtube url on an inline attachment", ErrInvalidInlinePayload)
	}
	if _, _, err := media.DecodeDataURL(att.DataURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInlinePayload, err)
	}

	return nil
}
