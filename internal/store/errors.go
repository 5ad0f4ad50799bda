package store

import "errors"

// Sentinel errors returned by [SlotStorage] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrSlotNotFound is returned by Get when nothing is stored under the key.
	ErrSlotNotFound = errors.New("slot is empty")

	// ErrStorageUnavailable is returned when the medium cannot be reached or
	// written for a reason other than lack of space.
	ErrStorageUnavailable = errors.New("storage is unavailable")

	// ErrQuotaExceeded is returned when the medium has no room for the value.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrUnsupportedDSN is returned for a DSN with an unknown scheme.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")
)

// Low-level database operation errors. These are wrapped by the SQL slot
// together with one of the sentinels above.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when reading the stored value fails.
	ErrScanningRow = errors.New("failed to scan slot row")
)
