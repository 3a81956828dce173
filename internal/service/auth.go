package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

type authenticator struct {
	users  UserService
	hasher PasswordHasher

	// decoy is verified against when the email is unknown so that both
	// no-match paths cost one hash.
	decoy string

	logger *logger.Logger
}

// NewAuthenticator constructs an [Authenticator] reading users through
// users and verifying passwords with hasher.
func NewAuthenticator(users UserService, hasher PasswordHasher, logger *logger.Logger) Authenticator {
	decoy, _ := hasher.Hash("decoy-password")
	return &authenticator{
		users:  users,
		hasher: hasher,
		decoy:  decoy,
		logger: logger,
	}
}

// Authenticate implements [Authenticator]. An inactive account fails with
// [ErrInactiveUser] whatever the password; the digest is still verified so
// every path that finds a record costs one hash.
func (a *authenticator) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		a.hasher.Verify(password, a.decoy)
		log.Info().Str("func", "authenticator.Authenticate").Msg("authentication rejected")
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "authenticator.Authenticate").Msg("error loading user")
		return nil, err
	}

	matched := a.hasher.Verify(password, user.SenhaHash)

	if !user.Ativo {
		log.Warn().Str("func", "authenticator.Authenticate").Str("user_id", user.ID).Msg("inactive user tried to authenticate")
		return nil, ErrInactiveUser
	}

	if !matched {
		log.Info().Str("func", "authenticator.Authenticate").Msg("authentication rejected")
		return nil, nil
	}

	log.Info().Str("func", "authenticator.Authenticate").Str("user_id", user.ID).Msg("user authenticated")
	return &user, nil
}
