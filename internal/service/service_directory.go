package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/validators"
	"github.com/MKhiriev/go-user-directory/models"
)

type directoryService struct {
	repo      store.RemoteUserRepository
	hasher    PasswordHasher
	validator validators.Validator
	ids       idGenerator

	logger *logger.Logger
}

// NewDirectoryService constructs the server-side [DirectoryService].
// Passwords are hashed with the same scheme and secret the clients use.
func NewDirectoryService(repo store.RemoteUserRepository, hasher PasswordHasher, ids idGenerator, logger *logger.Logger) DirectoryService {
	return &directoryService{
		repo:      repo,
		hasher:    hasher,
		validator: validators.NewUserValidator(),
		ids:       ids,
		logger:    logger,
	}
}

func (d *directoryService) ListUsers(ctx context.Context) ([]models.RemoteUser, error) {
	return d.repo.ListUsers(ctx)
}

func (d *directoryService) ProvisionUser(ctx context.Context, req models.ProvisionUserRequest) (models.RemoteUser, error) {
	log := logger.FromContext(ctx)

	if err := d.validator.Validate(ctx, req); err != nil {
		return models.RemoteUser{}, mapValidationError(err)
	}

	digest, err := d.hasher.Hash(req.Password)
	if err != nil {
		return models.RemoteUser{}, fmt.Errorf("error hashing password: %w", err)
	}

	now := time.Now().UTC()
	created, err := d.repo.CreateUser(ctx, models.RemoteUser{
		ID:        d.ids.Generate(),
		Nome:      req.Nome,
		Email:     models.NormalizeEmail(req.Email),
		SenhaHash: digest,
		Role:      req.Role,
		FazendaID: req.FazendaID,
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Err(err).Str("func", "directoryService.ProvisionUser").Msg("error provisioning user")
		return models.RemoteUser{}, mapStoreError(err)
	}

	log.Info().Str("func", "directoryService.ProvisionUser").Str("user_id", created.ID).Msg("user provisioned")
	return created, nil
}
