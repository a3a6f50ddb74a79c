package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/client-keeper/internal/session"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user registers with an email
	// that already belongs to another account.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrClientNotFound is returned when no client of the owner matches the
	// identifier or email.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientEmailAlreadyExists is returned when the owner already has a
	// client with the same email.
	ErrClientEmailAlreadyExists = errors.New("client email already exists")

	// ErrResetTokenNotFound is returned when a password reset token is
	// unknown, already used or expired.
	ErrResetTokenNotFound = errors.New("reset token not found")

	// ErrStorageUnavailable is returned when the database reports a
	// transient failure (lost connection, deadlock, server starting up).
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")

	// ErrSessionNotFound is returned by the client session store when no
	// session was saved. It matches [session.ErrNoSession].
	ErrSessionNotFound = fmt.Errorf("local %w", session.ErrNoSession)
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
