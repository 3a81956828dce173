package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// sqliteConstraintError maps a unique constraint failure on the users table
// to a domain error. Any other error is returned unchanged.
func sqliteConstraintError(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return err
	}

	msg := sqliteErr.Error()
	switch {
	case strings.Contains(msg, "users.email"):
		return ErrEmailAlreadyExists
	case strings.Contains(msg, "users.remote_id"):
		return ErrRemoteIDAlreadyLinked
	}

	return err
}
