package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/validators"
	"github.com/MKhiriev/go-user-directory/models"
)

type idGenerator interface {
	Generate() string
}

// userService implements [UserService] and [SyncWriter] on a
// [store.LocalUserRepository]. Writes are serialised by mu so that the
// email uniqueness check cannot race; the store's unique index backs it up.
type userService struct {
	repo      store.LocalUserRepository
	hasher    PasswordHasher
	validator validators.Validator
	ids       idGenerator
	now       func() time.Time

	mu     sync.Mutex
	events *notifier

	logger *logger.Logger
}

// NewUserService constructs the local [UserService].
func NewUserService(repo store.LocalUserRepository, hasher PasswordHasher, ids idGenerator, logger *logger.Logger) UserService {
	return newUserService(repo, hasher, ids, logger)
}

func newUserService(repo store.LocalUserRepository, hasher PasswordHasher, ids idGenerator, logger *logger.Logger) *userService {
	return &userService{
		repo:      repo,
		hasher:    hasher,
		validator: validators.NewUserValidator(),
		ids:       ids,
		now:       func() time.Time { return time.Now().UTC() },
		events:    newNotifier(),
		logger:    logger,
	}
}

func (s *userService) Subscribe(fn func(models.UserEvent)) func() {
	return s.events.subscribe(fn)
}

func (s *userService) Create(ctx context.Context, in models.NewUser) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		return models.User{}, mapValidationError(err)
	}
	email := models.NormalizeEmail(in.Email)

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := func() (models.User, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, err := s.repo.GetByEmail(ctx, email); err == nil {
			return models.User{}, ErrDuplicateEmail
		} else if !errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, err
		}

		now := s.now()
		user := models.User{
			ID:        s.ids.Generate(),
			Nome:      in.Nome,
			Email:     email,
			SenhaHash: digest,
			Role:      in.Role,
			FazendaID: in.FazendaID,
			Ativo:     true,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := s.repo.Insert(ctx, user); err != nil {
			return models.User{}, mapStoreError(err)
		}
		return user, nil
	}()
	if err != nil {
		log.Err(err).Str("func", "userService.Create").Str("email", email).Msg("error creating user")
		return models.User{}, err
	}

	log.Info().Str("func", "userService.Create").Str("user_id", user.ID).Str("role", user.Role.String()).Msg("user created")
	s.events.publish(models.UserEvent{Type: models.UserCreated, UserID: user.ID, User: &user})

	return user, nil
}

func (s *userService) Update(ctx context.Context, id string, patch models.UserPatch) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, patch); err != nil {
		return mapValidationError(err)
	}

	var digest string
	if patch.Password != nil {
		var err error
		if digest, err = s.hasher.Hash(*patch.Password); err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
	}

	user, err := func() (models.User, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		user, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return models.User{}, mapStoreError(err)
		}

		if patch.Nome != nil {
			user.Nome = *patch.Nome
		}
		if patch.Email != nil {
			email := models.NormalizeEmail(*patch.Email)
			other, err := s.repo.GetByEmail(ctx, email)
			switch {
			case err == nil && other.ID != id:
				return models.User{}, ErrDuplicateEmail
			case err != nil && !errors.Is(err, store.ErrNoUserWasFound):
				return models.User{}, err
			}
			user.Email = email
		}
		if patch.Password != nil {
			user.SenhaHash = digest
		}
		if patch.Role != nil {
			user.Role = *patch.Role
		}
		if patch.SetFazendaID {
			user.FazendaID = patch.FazendaID
		}
		if patch.Ativo != nil {
			user.Ativo = *patch.Ativo
		}

		user.UpdatedAt = s.now()
		user.Synced = false

		if err = s.repo.Update(ctx, user); err != nil {
			return models.User{}, mapStoreError(err)
		}
		return user, nil
	}()
	if err != nil {
		log.Err(err).Str("func", "userService.Update").Str("user_id", id).Msg("error updating user")
		return err
	}

	log.Info().Str("func", "userService.Update").Str("user_id", id).Msg("user updated")
	s.events.publish(models.UserEvent{Type: models.UserUpdated, UserID: id, User: &user})

	return nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	err := s.repo.Delete(ctx, id)
	s.mu.Unlock()
	if err != nil {
		log.Err(err).Str("func", "userService.Delete").Str("user_id", id).Msg("error deleting user")
		return mapStoreError(err)
	}

	log.Info().Str("func", "userService.Delete").Str("user_id", id).Msg("user deleted")
	s.events.publish(models.UserEvent{Type: models.UserDeleted, UserID: id})

	return nil
}

func (s *userService) GetByID(ctx context.Context, id string) (models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	return user, mapStoreError(err)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	return user, mapStoreError(err)
}

func (s *userService) ListAll(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// ApplyRemote implements [SyncWriter]. Remote fields overwrite the matched
// local record; the local id and creation time are kept.
func (s *userService) ApplyRemote(ctx context.Context, remote models.RemoteUser) (bool, error) {
	if err := s.validator.Validate(ctx, remote); err != nil {
		return false, mapValidationError(err)
	}

	user, created, err := func() (models.User, bool, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		local, err := s.repo.GetByRemoteID(ctx, remote.ID)
		if errors.Is(err, store.ErrNoUserWasFound) {
			local, err = s.repo.GetByEmail(ctx, remote.Email)
			// an email match already linked elsewhere is a collision
			if err == nil && local.RemoteID != nil {
				return models.User{}, false, fmt.Errorf("%w: local user %s is linked to remote %s", ErrDuplicateEmail, local.ID, *local.RemoteID)
			}
		}

		switch {
		case err == nil:
			local.Nome = remote.Nome
			local.Email = models.NormalizeEmail(remote.Email)
			local.SenhaHash = remote.SenhaHash
			local.Role = remote.Role
			local.FazendaID = remote.FazendaID
			local.Ativo = remote.Ativo
			local.UpdatedAt = orNow(remote.UpdatedAt, s.now)
			local.Synced = true
			local.RemoteID = &remote.ID

			if err = s.repo.Update(ctx, local); err != nil {
				return models.User{}, false, mapStoreError(err)
			}
			return local, false, nil

		case errors.Is(err, store.ErrNoUserWasFound):
			remoteID := remote.ID
			user := models.User{
				ID:        s.ids.Generate(),
				Nome:      remote.Nome,
				Email:     models.NormalizeEmail(remote.Email),
				SenhaHash: remote.SenhaHash,
				Role:      remote.Role,
				FazendaID: remote.FazendaID,
				Ativo:     remote.Ativo,
				CreatedAt: orNow(remote.CreatedAt, s.now),
				UpdatedAt: orNow(remote.UpdatedAt, s.now),
				Synced:    true,
				RemoteID:  &remoteID,
			}
			if err = s.repo.Insert(ctx, user); err != nil {
				return models.User{}, false, mapStoreError(err)
			}
			return user, true, nil

		default:
			return models.User{}, false, err
		}
	}()
	if err != nil {
		return false, err
	}

	s.events.publish(models.UserEvent{Type: models.UserPulled, UserID: user.ID, User: &user})
	return created, nil
}

// MarkSynced implements [SyncWriter]. UpdatedAt is left untouched.
func (s *userService) MarkSynced(ctx context.Context, id, remoteID string) error {
	if strings.TrimSpace(remoteID) == "" {
		return ErrInvalidDataProvided
	}

	user, err := func() (models.User, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		user, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return models.User{}, mapStoreError(err)
		}

		user.Synced = true
		user.RemoteID = &remoteID

		if err = s.repo.Update(ctx, user); err != nil {
			return models.User{}, mapStoreError(err)
		}
		return user, nil
	}()
	if err != nil {
		return err
	}

	s.events.publish(models.UserEvent{Type: models.UserSynced, UserID: id, User: &user})
	return nil
}

func orNow(t time.Time, now func() time.Time) time.Time {
	if t.IsZero() {
		return now()
	}
	return t.UTC()
}
