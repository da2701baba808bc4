package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAttemptAlreadyExists is returned when a payment attempt is reserved
	// under an idempotency key that is already in the ledger.
	ErrAttemptAlreadyExists = errors.New("payment attempt already exists")

	// ErrAttemptNotFound is returned when no payment attempt is stored under
	// the requested idempotency key.
	ErrAttemptNotFound = errors.New("payment attempt was not found")

	// ErrAttemptNotPending is returned when an outcome is recorded for an
	// attempt that already has one. The stored attempt is returned with it.
	ErrAttemptNotPending = errors.New("payment attempt is not pending")

	// ErrTransient wraps driver errors the classifier marks as retryable
	// (lost connection, serialization failure, locked database).
	ErrTransient = errors.New("transient database error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan payment attempt row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan payment attempt rows")

	// ErrUnsupportedDSN is returned when a DSN names neither PostgreSQL nor
	// a SQLite file.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)
