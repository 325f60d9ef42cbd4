package store

import "errors"

// Sentinel errors returned by the ledger repository to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrLedgerNotFound is returned when the singleton ledger row is absent.
	// Startup initialization makes this unreachable in a healthy deployment.
	ErrLedgerNotFound = errors.New("ledger was not found")

	// ErrStorageUnavailable is returned when the database cannot be reached
	// or rejected the statement for a transient reason (connection loss,
	// serialization failure, busy database).
	ErrStorageUnavailable = errors.New("storage is unavailable")

	// ErrUnsupportedDSN is returned by [NewConnect] when the DSN scheme does
	// not select a known backend.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL statement
	// with squirrel fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails for a
	// non-retryable reason.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when the ledger column cannot be scanned.
	ErrScanningRow = errors.New("failed to scan ledger row")

	// ErrLedgerNotSaved is returned when an upsert reports zero affected rows.
	ErrLedgerNotSaved = errors.New("ledger was not saved")
)
