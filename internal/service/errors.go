package service

import "errors"

var (
	ErrInvalidCourseSheet = errors.New("invalid course sheet")
	ErrCorruptedRecord    = errors.New("stored course sheet is corrupted")
	ErrEncodingRecord     = errors.New("failed to encode course sheet")
)
