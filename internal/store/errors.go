package store

import "errors"

// Sentinel errors returned by the storage port and the repositories built on
// top of it. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValueStorage.Get] when the requested
	// key is absent from the storage area. Absence is an expected state for
	// every key the system uses, never a fault.
	ErrKeyNotFound = errors.New("key not found in storage")

	// ErrCorruptState is returned when a stored value exists but cannot be
	// decoded into its expected record shape. A malformed "users" or
	// "currentSession" blob surfaces as this error instead of propagating an
	// invalid record into the service layer.
	ErrCorruptState = errors.New("stored value has corrupt shape")

	// ErrAccountNotFound is returned by account lookups that match nothing.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSessionNotFound is returned by [SessionRepository.Current] when no
	// session is active.
	ErrSessionNotFound = errors.New("no active session")
)

// Low-level database operation errors returned (or wrapped) by the
// SQLite-backed storage when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails before it reaches the database.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
