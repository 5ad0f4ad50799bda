package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-course-sheet/internal/config"
	"github.com/MKhiriev/go-course-sheet/internal/logger"
)

// Medium identifies the kind of [SlotStorage] a DSN selects.
type Medium string

const (
	MediumSQLite   Medium = "sqlite"
	MediumPostgres Medium = "postgres"
	MediumFile     Medium = "file"
	MediumMemory   Medium = "memory"
)

// ParseDSN splits a storage DSN into its medium and the medium-specific
// target: a file path for sqlite and file, the full DSN for postgres.
func ParseDSN(dsn string) (Medium, string, error) {
	switch {
	case dsn == sqliteMemory:
		return MediumMemory, "", nil
	case strings.HasPrefix(dsn, "sqlite://"):
		target := strings.TrimPrefix(dsn, "sqlite://")
		if target == "" {
			return "", "", fmt.Errorf("%w: missing sqlite path", ErrUnsupportedDSN)
		}
		return MediumSQLite, target, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return MediumPostgres, dsn, nil
	case strings.HasPrefix(dsn, "file://"):
		target := strings.TrimPrefix(dsn, "file://")
		if target == "" {
			return "", "", fmt.Errorf("%w: missing directory", ErrUnsupportedDSN)
		}
		return MediumFile, target, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

// NewSlotStorage opens the medium selected by cfg.DSN. SQL media are
// connected and migrated before they are returned.
func NewSlotStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (SlotStorage, error) {
	medium, target, err := ParseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	log.Info().Str("func", "NewSlotStorage").Str("medium", string(medium)).Msg("opening record storage")

	switch medium {
	case MediumMemory:
		return NewMemorySlotStorage(0), nil
	case MediumFile:
		return NewFileSlotStorage(target, log)
	}

	var db *DB
	if medium == MediumPostgres {
		db, err = NewConnectPostgres(ctx, target, log)
	} else {
		db, err = NewConnectSQLite(ctx, target, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		log.Err(err).Str("func", "NewSlotStorage").Msg("migration failed")
		return nil, fmt.Errorf("%w: migration failed: %v", ErrStorageUnavailable, err)
	}

	return NewSQLSlotStorage(db, log), nil
}
