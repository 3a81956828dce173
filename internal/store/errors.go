package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert or update would give
	// two users the same email, compared case-insensitively.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrRemoteIDAlreadyLinked is returned when a remote identifier is
	// already attached to another local user.
	ErrRemoteIDAlreadyLinked = errors.New("remote id already linked to another user")

	// ErrNoUserWasFound is returned when a lookup matches no user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUserNotSaved is returned when a write completes without error but
	// affects no rows.
	ErrUserNotSaved = errors.New("user was not saved")
)

// Low-level database operation errors. These wrap driver errors when a
// statement fails before any domain mapping can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when a single result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan user rows")
)
