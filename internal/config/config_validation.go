// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

var supportedDSNPrefixes = []string{
	"sqlite://",
	"postgres://",
	"postgresql://",
	"file://",
	":memory:",
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if !hasSupportedScheme(cfg.Storage.DSN) {
		return fmt.Errorf("%w: unsupported dsn %q", ErrInvalidStorageConfigs, cfg.Storage.DSN)
	}
	if strings.TrimSpace(cfg.Storage.SlotKey) == "" {
		return fmt.Errorf("%w: empty slot key", ErrInvalidStorageConfigs)
	}

	if cfg.Media.MaxFileSize <= 0 {
		return fmt.Errorf("%w: max file size must be positive", ErrInvalidMediaConfigs)
	}
	if cfg.Media.MaxFileSize > DefaultMaxFileSize {
		return fmt.Errorf("%w: max file size %d exceeds %d", ErrInvalidMediaConfigs, cfg.Media.MaxFileSize, DefaultMaxFileSize)
	}
	if cfg.Media.Concurrency <= 0 {
		return fmt.Errorf("%w: concurrency must be positive", ErrInvalidMediaConfigs)
	}

	if cfg.Editor.MaxSuggestions <= 0 {
		return fmt.Errorf("%w: max suggestions must be positive", ErrInvalidEditorConfigs)
	}
	if cfg.Editor.BlurDelay < 0 {
		return fmt.Errorf("%w: negative blur delay", ErrInvalidEditorConfigs)
	}

	return nil
}

func hasSupportedScheme(dsn string) bool {
	for _, prefix := range supportedDSNPrefixes {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}
	return false
}
