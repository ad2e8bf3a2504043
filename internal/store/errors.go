package store

import "errors"

// Low-level database operation errors. These are wrapped by the SQLite
// storage methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)

// Errors of the file and sealed storage backends.
var (
	// ErrPersistingStorage is returned when the JSON storage file cannot be
	// written.
	ErrPersistingStorage = errors.New("failed to persist local storage file")

	// ErrUnsealingValue is returned when a sealed value cannot be opened,
	// usually because the storage secret changed.
	ErrUnsealingValue = errors.New("failed to unseal stored value")
)
