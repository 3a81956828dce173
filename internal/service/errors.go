package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidRole         = errors.New("invalid role")

	// ErrDuplicateEmail is returned when another user already holds the
	// email, compared case-insensitively.
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrUserNotFound   = errors.New("user not found")

	// ErrInactiveUser is returned by authentication against a deactivated
	// account whose password is correct.
	ErrInactiveUser = errors.New("inactive user")

	// ErrSyncUnavailable wraps every failure of a pull from the remote
	// directory.
	ErrSyncUnavailable = errors.New("sync unavailable")

	// ErrAlreadyBootstrapped is returned by first-admin creation once the
	// directory holds any user.
	ErrAlreadyBootstrapped = errors.New("directory already bootstrapped")

	ErrUnknownHashScheme     = errors.New("unknown password hash scheme")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenIsExpired        = errors.New("token is expired")
	ErrInvalidToken          = errors.New("invalid token")
)
