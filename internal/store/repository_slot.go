package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-course-sheet/internal/logger"
)

type sqlSlotStorage struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLSlotStorage returns a [SlotStorage] backed by the slots table of db.
// The schema must already be migrated.
func NewSQLSlotStorage(db *DB, logger *logger.Logger) SlotStorage {
	return &sqlSlotStorage{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqlSlotStorage) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := buildSelectSlotQuery(s.db.builder, key)
	if err != nil {
		s.logger.Err(err).Str("func", "sqlSlotStorage.Get").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, ErrBuildingSQLQuery)
	}

	var payload []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqlSlotStorage.Get").
			Str("key", key).
			Msg("failed to read slot")
		return nil, classify(s.db.errorClassificator, ErrScanningRow, err)
	}

	return payload, nil
}

// Put upserts the slot inside a transaction so a failure rolls back to the
// previous value.
func (s *sqlSlotStorage) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := buildUpsertSlotQuery(s.db.builder, key, value, s.now().UTC())
	if err != nil {
		s.logger.Err(err).Str("func", "sqlSlotStorage.Put").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, ErrBuildingSQLQuery)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Err(err).Str("func", "sqlSlotStorage.Put").Msg("failed to begin transaction")
		return classify(s.db.errorClassificator, ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlSlotStorage.Put").
			Str("key", key).
			Int("size", len(value)).
			Msg("failed to upsert slot")
		return classify(s.db.errorClassificator, ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Err(err).Str("func", "sqlSlotStorage.Put").Msg("failed to commit transaction")
		return classify(s.db.errorClassificator, ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sqlSlotStorage) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteSlotQuery(s.db.builder, key)
	if err != nil {
		s.logger.Err(err).Str("func", "sqlSlotStorage.Delete").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, ErrBuildingSQLQuery)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlSlotStorage.Delete").
			Str("key", key).
			Msg("failed to delete slot")
		return classify(s.db.errorClassificator, ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlSlotStorage) Close() error {
	return s.db.Close()
}
