package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID             = errors.New("invalid course sheet id")
	ErrInvalidDate           = errors.New("invalid course date")
	ErrInvalidDiscipline     = errors.New("invalid discipline")
	ErrInvalidAttachmentID   = errors.New("invalid attachment id")
	ErrDuplicateAttachmentID = errors.New("duplicate attachment id")
	ErrInvalidAttachmentType = errors.New("invalid attachment type")
	ErrInvalidAttachmentSize = errors.New("invalid attachment size")
	ErrInvalidInlinePayload  = errors.New("invalid inline payload")
	ErrInvalidYouTubeRef     = errors.New("invalid youtube reference")
)
