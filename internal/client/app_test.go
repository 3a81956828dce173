package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
)

const testHashKey = "app-secret"

func newTestConfig(t *testing.T) *config.ClientConfig {
	t.Helper()

	return &config.ClientConfig{
		App:     config.ClientApp{PasswordHashKey: testHashKey},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "directory.db")}},
		Adapter: config.ClientAdapter{RequestTimeout: time.Second},
		Workers: config.ClientWorkers{PullTimeout: 2 * time.Second},
	}
}

func runApp(t *testing.T, cfg *config.ClientConfig) (*App, models.BootstrapResult) {
	t.Helper()

	app, err := NewApp(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	result, err := app.Run(context.Background())
	require.NoError(t, err)
	return app, result
}

func TestApp_OfflineEmptyDirectory(t *testing.T) {
	_, result := runApp(t, newTestConfig(t))

	assert.Equal(t, models.OutcomeNeedsBootstrap, result.Outcome)
	assert.ErrorIs(t, result.PullErr, service.ErrSyncUnavailable)
}

func TestApp_SeedsFirstAdmin(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.App.Admin = config.Admin{Name: "Root", Email: "Root@Farm.com", Password: "s3cret", FazendaID: "faz-1"}

	app, result := runApp(t, cfg)
	assert.Equal(t, models.OutcomeHasUsers, result.Outcome)
	assert.Equal(t, 1, result.Users)

	user, err := app.Services().Authenticator.Authenticate(context.Background(), "root@farm.com", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleAdmin, user.Role)
	require.NotNil(t, user.FazendaID)
	assert.Equal(t, "faz-1", *user.FazendaID)
}

func TestApp_PullsFromRemoteDirectory(t *testing.T) {
	hasher, err := service.NewPasswordHasher(service.HashSchemeSHA256, testHashKey)
	require.NoError(t, err)
	digest, err := hasher.Hash("pw")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/", r.URL.Path)
		assert.Equal(t, "Bearer device-token", r.Header.Get("Authorization"))

		users := []models.RemoteUser{{
			ID: "r-1", Nome: "Ana", Email: "ana@x.com", SenhaHash: digest, Role: models.RoleGerente, Ativo: true,
		}}
		utils.WriteJSON(w, models.PullResponse{Users: users, Length: len(users)}, http.StatusOK)
	}))
	defer srv.Close()

	cfg := newTestConfig(t)
	cfg.Adapter.HTTPAddress = srv.URL
	cfg.Adapter.Token = "device-token"
	// ignored once the pull fills the directory
	cfg.App.Admin = config.Admin{Email: "root@farm.com", Password: "x"}

	app, result := runApp(t, cfg)
	assert.Equal(t, models.OutcomeHasUsers, result.Outcome)
	assert.True(t, result.Pulled)
	assert.NoError(t, result.PullErr)
	assert.Equal(t, 1, result.Users)

	user, err := app.Services().Authenticator.Authenticate(context.Background(), "ana@x.com", "pw")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.Synced)
}

func TestApp_SecondRunSkipsPull(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.App.Admin = config.Admin{Name: "Root", Email: "root@farm.com", Password: "s3cret"}

	first, _ := runApp(t, cfg)
	require.NoError(t, first.Close())

	_, result := runApp(t, cfg)
	assert.Equal(t, models.OutcomeHasUsers, result.Outcome)
	assert.False(t, result.Pulled)
}
