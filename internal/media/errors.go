package media

import (
	"errors"
	"fmt"
)

// Sentinel errors describing why an input was rejected. They are wrapped in
// [ValidationError] when tied to a file, and can be matched with [errors.Is].
var (
	// ErrFileTooLarge is returned when a file exceeds the configured size cap.
	ErrFileTooLarge = errors.New("file is too large")

	// ErrUnsupportedType is returned when a file's type is not in the allow-list.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrReadFile is returned when a file's content cannot be read.
	ErrReadFile = errors.New("error reading file")

	// ErrEmptyYouTubeURL is returned for a blank YouTube link.
	ErrEmptyYouTubeURL = errors.New("youtube link is empty")

	// ErrInvalidYouTubeURL is returned when no video identifier can be
	// extracted from the link.
	ErrInvalidYouTubeURL = errors.New("invalid youtube link")

	// ErrInvalidDataURL is returned when an inline payload is not a
	// well-formed base64 data URL.
	ErrInvalidDataURL = errors.New("invalid data url")
)

// ValidationError ties a rejection reason to the offending input.
// It is non-fatal: batch operations report it and carry on.
type ValidationError struct {
	// Name is the file name or raw input that was rejected.
	Name string
	// Err is one of the package sentinel errors.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(name string, err error) *ValidationError {
	return &ValidationError{Name: name, Err: err}
}
