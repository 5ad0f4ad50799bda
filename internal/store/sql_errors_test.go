package store

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want ErrorClassification
	}{
		{code: pgerrcode.DiskFull, want: QuotaExceeded},
		{code: pgerrcode.OutOfMemory, want: QuotaExceeded},
		{code: pgerrcode.InsufficientResources, want: QuotaExceeded},
		{code: pgerrcode.ProgramLimitExceeded, want: QuotaExceeded},
		{code: pgerrcode.ConnectionFailure, want: Unavailable},
		{code: pgerrcode.UniqueViolation, want: Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPgError(&pgconn.PgError{Code: tt.code}))
		})
	}
}

func TestPostgresErrorClassifier_WrappedErrors(t *testing.T) {
	c := NewPostgresErrorClassifier()

	wrapped := fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.DiskFull})
	assert.Equal(t, QuotaExceeded, c.Classify(wrapped))
	assert.Equal(t, Unavailable, c.Classify(errors.New("boom")))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, QuotaExceeded, c.Classify(sqlite3.Error{Code: sqlite3.ErrFull}))
	assert.Equal(t, QuotaExceeded, c.Classify(sqlite3.Error{Code: sqlite3.ErrTooBig}))
	assert.Equal(t, Unavailable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Unavailable, c.Classify(errors.New("boom")))
}

func TestNoSpaceIsQuotaForEveryClassifier(t *testing.T) {
	err := &os.PathError{Op: "write", Path: "/tmp/x", Err: syscall.ENOSPC}

	for _, c := range []ErrorClassificator{NewPostgresErrorClassifier(), NewSQLiteErrorClassifier(), fileErrorClassifier{}} {
		assert.Equal(t, QuotaExceeded, c.Classify(err))
	}
}

func TestClassify_WrapsSentinelAndOperation(t *testing.T) {
	err := classify(NewSQLiteErrorClassifier(), ErrExecutingStatement, sqlite3.Error{Code: sqlite3.ErrFull})

	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}
