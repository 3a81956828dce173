package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-directory/internal/adapter"
	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/models"
)

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	admin    config.Admin

	logger *logger.Logger
}

// NewApp opens the local store and wires the client services. An empty
// adapter address runs the device offline.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	var remote adapter.RemoteDirectory
	if !cfg.Offline() {
		if remote, err = adapter.NewHTTPRemoteDirectory(cfg.Adapter, cfg.App, logger); err != nil {
			storages.Close()
			return nil, fmt.Errorf("create remote directory adapter: %w", err)
		}
	} else {
		logger.Warn().Msg("no remote directory configured, running offline")
	}

	services, err := service.NewClientServices(storages, remote, cfg, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return &App{
		services: services,
		storages: storages,
		admin:    cfg.App.Admin,
		logger:   logger,
	}, nil
}

// Services exposes the wired client services to a UI.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run bootstraps the directory. When bootstrap ends with an empty directory
// and a complete admin seed is configured, the first admin is created and
// the result is reported as has_users.
func (a *App) Run(ctx context.Context) (models.BootstrapResult, error) {
	ctx = a.logger.WithContext(ctx)

	unsubscribe := a.services.Users.Subscribe(func(e models.UserEvent) {
		a.logger.Debug().Str("event", string(e.Type)).Str("user_id", e.UserID).Msg("directory changed")
	})
	defer unsubscribe()

	result, err := a.services.Bootstrap.Run(ctx)
	if err != nil {
		return models.BootstrapResult{}, fmt.Errorf("bootstrap: %w", err)
	}
	if result.PullErr != nil {
		a.logger.Warn().Err(result.PullErr).Msg("remote directory unavailable during bootstrap")
	}

	if result.Outcome != models.OutcomeNeedsBootstrap {
		return result, nil
	}
	if !a.hasAdminSeed() {
		a.logger.Info().Msg("directory is empty, first admin must be created")
		return result, nil
	}

	var fazendaID *string
	if a.admin.FazendaID != "" {
		fazendaID = &a.admin.FazendaID
	}

	admin, err := a.services.Bootstrap.CreateFirstAdmin(ctx, a.admin.Name, a.admin.Email, a.admin.Password, fazendaID)
	switch {
	case errors.Is(err, service.ErrAlreadyBootstrapped):
		a.logger.Info().Msg("first admin already present")
	case err != nil:
		return result, fmt.Errorf("create first admin: %w", err)
	default:
		a.logger.Info().Str("user_id", admin.ID).Str("email", admin.Email).Msg("first admin created from config")
	}

	result.Outcome = models.OutcomeHasUsers
	if result.Users, err = a.services.Users.Count(ctx); err != nil {
		return result, fmt.Errorf("count users: %w", err)
	}

	return result, nil
}

func (a *App) hasAdminSeed() bool {
	return a.admin.Email != "" && a.admin.Password != ""
}

func (a *App) Close() error {
	return a.storages.Close()
}
