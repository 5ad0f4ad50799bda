package store

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells which storage sentinel a driver error maps to.
type ErrorClassification int

const (
	// Unavailable is the default classification: the medium failed and the
	// operation did not take effect.
	Unavailable ErrorClassification = iota

	// QuotaExceeded means the medium is out of space or over a size limit.
	QuotaExceeded
)

// ErrorClassificator maps a driver-specific error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if isNoSpace(err) {
		return QuotaExceeded
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unavailable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// QuotaExceeded codes:
//   - Class 53: insufficient resources (53000, 53100, 53200, 53300)
//   - Class 54: program limit exceeded (54000)
//
// Any other code is classified as [Unavailable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.InsufficientResources, // 53000
		pgerrcode.DiskFull,             // 53100
		pgerrcode.OutOfMemory,          // 53200
		pgerrcode.TooManyConnections,   // 53300
		pgerrcode.ProgramLimitExceeded: // 54000
		return QuotaExceeded
	}

	return Unavailable
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. SQLITE_FULL and SQLITE_TOOBIG
// are reported as [QuotaExceeded].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if isNoSpace(err) {
		return QuotaExceeded
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrFull, sqlite3.ErrTooBig:
			return QuotaExceeded
		}
	}

	return Unavailable
}

func isNoSpace(err error) bool {
	return errors.Is(err, syscall.ENOSPC) || errors.Is(err, syscall.EDQUOT)
}

// classify wraps err with the sentinel chosen by c, keeping op and the
// original error in the message.
func classify(c ErrorClassificator, op, err error) error {
	sentinel := ErrStorageUnavailable
	if c != nil && c.Classify(err) == QuotaExceeded {
		sentinel = ErrQuotaExceeded
	}
	return fmt.Errorf("%w: %w: %v", sentinel, op, err)
}
