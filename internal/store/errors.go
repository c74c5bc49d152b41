package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBookingNotFound is returned when a query targets a booking that does
	// not exist in the database.
	ErrBookingNotFound = errors.New("booking was not found")

	// ErrPropertyNotFound is returned when a query targets a property that
	// does not exist in the database.
	ErrPropertyNotFound = errors.New("property was not found")

	// ErrCheckInDataNotFound is returned when a query targets a check-in
	// record (identified by booking id) that does not exist in the database.
	ErrCheckInDataNotFound = errors.New("check-in data was not found")

	// ErrCheckInDataNotSaved is returned when an upsert of an encrypted
	// check-in record completes without error but the number of affected rows
	// is zero, indicating that no data was actually persisted.
	ErrCheckInDataNotSaved = errors.New("check-in data was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
