package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/utils"
)

const testSecret = "app-secret"

func newTestLocalRepo(t *testing.T) store.LocalUserRepository {
	t.Helper()

	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages.UserRepository
}

// fakeClock returns strictly increasing times one second apart.
type fakeClock struct {
	ticks atomic.Int64
	base  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{base: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.base.Add(time.Duration(c.ticks.Add(1)) * time.Second)
}

func newTestUserService(t *testing.T) (*userService, *fakeClock) {
	t.Helper()

	hasher, err := NewPasswordHasher(HashSchemeSHA256, testSecret)
	require.NoError(t, err)

	svc := newUserService(newTestLocalRepo(t), hasher, utils.NewUUIDGenerator(), logger.Nop())
	clock := newFakeClock()
	svc.now = clock.Now

	return svc, clock
}

func strPtr(s string) *string { return &s }
