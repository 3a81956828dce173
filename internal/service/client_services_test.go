package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/models"
)

func TestNewClientServices_OfflineFirstRun(t *testing.T) {
	ctx := context.Background()
	cfg := &config.ClientConfig{
		App:     config.ClientApp{PasswordHashKey: testSecret, PasswordHashScheme: HashSchemeSHA256},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "directory.db")}},
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	services, err := NewClientServices(storages, nil, cfg, logger.Nop())
	require.NoError(t, err)

	result, err := services.Bootstrap.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNeedsBootstrap, result.Outcome)
	assert.ErrorIs(t, result.PullErr, ErrSyncUnavailable)

	_, err = services.Bootstrap.CreateFirstAdmin(ctx, "Root", "root@farm.com", "s3cret", nil)
	require.NoError(t, err)

	user, err := services.Authenticator.Authenticate(ctx, "root@farm.com", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestNewClientServices_UnknownScheme(t *testing.T) {
	cfg := &config.ClientConfig{App: config.ClientApp{PasswordHashKey: testSecret, PasswordHashScheme: "md5"}}

	_, err := NewClientServices(&store.ClientStorages{}, nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownHashScheme)
}
