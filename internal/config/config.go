// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied to every field left unset by the environment,
// the command line and the JSON file.
const (
	DefaultDSN            = "sqlite://course-sheet.db"
	DefaultSlotKey        = "mma-course-sheet"
	DefaultMaxFileSize    = ByteSize(10 * 1024 * 1024)
	DefaultConcurrency    = 4
	DefaultMaxSuggestions = 5
	DefaultBlurDelay      = 200 * time.Millisecond
	DefaultExportDir      = "."
)

// StructuredConfig is the top-level configuration container for the
// course sheet editor. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage selects the medium holding the single persisted course sheet.
	Storage Storage `envPrefix:"STORAGE_"`

	// Media holds upload limits.
	Media Media `envPrefix:"MEDIA_"`

	// Editor tunes the autocomplete panel.
	Editor Editor `envPrefix:"EDITOR_"`

	// Log holds the diagnostic log destination.
	Log Log `envPrefix:"LOG_"`

	// Export holds HTML export settings.
	Export Export `envPrefix:"EXPORT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage holds the persistence settings.
type Storage struct {
	// DSN selects the storage medium by scheme:
	//   - "sqlite://<path>" or "sqlite://:memory:"
	//   - "postgres://..." or "postgresql://..."
	//   - "file://<dir>" for one JSON file per slot key
	//   - ":memory:" for a process-local slot
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// SlotKey is the fixed key of the single record slot.
	// Env: STORAGE_SLOT_KEY
	SlotKey string `env:"SLOT_KEY"`
}

// Media holds upload limits.
type Media struct {
	// MaxFileSize is the per-file cap, e.g. "5MiB" or "2048". It can only
	// lower the 10 MiB limit.
	// Env: MEDIA_MAX_FILE_SIZE
	MaxFileSize ByteSize `env:"MAX_FILE_SIZE"`

	// AllowVideo enables inline video uploads next to images.
	// Env: MEDIA_ALLOW_VIDEO
	AllowVideo bool `env:"ALLOW_VIDEO"`

	// Concurrency is the number of files read at the same time.
	// Env: MEDIA_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// Editor tunes the autocomplete panel.
type Editor struct {
	// MaxSuggestions caps the number of suggestions shown at once.
	// Env: EDITOR_MAX_SUGGESTIONS
	MaxSuggestions int `env:"MAX_SUGGESTIONS"`

	// BlurDelay is the grace period before the panel closes on focus loss.
	// Env: EDITOR_BLUR_DELAY
	BlurDelay time.Duration `env:"BLUR_DELAY"`
}

// Log holds the diagnostic log destination.
type Log struct {
	// Path of the log file. Empty means next to the executable.
	// Env: LOG_PATH
	Path string `env:"PATH"`
}

// Export holds HTML export settings.
type Export struct {
	// Dir is the directory exported sheets are written to.
	// Env: EXPORT_DIR
	Dir string `env:"DIR"`
}

// Defaults returns the configuration used for every unset field.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DSN:     DefaultDSN,
			SlotKey: DefaultSlotKey,
		},
		Media: Media{
			MaxFileSize: DefaultMaxFileSize,
			Concurrency: DefaultConcurrency,
		},
		Editor: Editor{
			MaxSuggestions: DefaultMaxSuggestions,
			BlurDelay:      DefaultBlurDelay,
		},
		Export: Export{
			Dir: DefaultExportDir,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are consulted in the following order and the first
// non-zero value of a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
