package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName         = errors.New("name is required")
	ErrEmptyEmail        = errors.New("email is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyPasswordHash = errors.New("password hash is required")
	ErrEmptyRemoteID     = errors.New("remote id is required")
	ErrInvalidRole       = errors.New("invalid role")
)
