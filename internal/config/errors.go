package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown DSN scheme or an empty slot key).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidMediaConfigs indicates invalid upload settings.
	ErrInvalidMediaConfigs = errors.New("invalid media configuration")
	// ErrInvalidEditorConfigs indicates invalid autocomplete settings.
	ErrInvalidEditorConfigs = errors.New("invalid editor configuration")
	// ErrInvalidByteSize is returned when a size value cannot be parsed.
	ErrInvalidByteSize = errors.New("invalid byte size")
)
