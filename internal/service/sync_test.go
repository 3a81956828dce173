package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/mock"
	"github.com/MKhiriev/go-user-directory/models"
)

func remoteUser(id, email string, role models.Role) models.RemoteUser {
	return models.RemoteUser{
		ID:        id,
		Nome:      "User " + id,
		Email:     email,
		SenhaHash: "digest-" + id,
		Role:      role,
		Ativo:     true,
	}
}

func TestSyncReconciler_Pull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserService(t)
	ctx := context.Background()
	remote := mock.NewMockRemoteDirectory(ctrl)
	reconciler := NewSyncReconciler(remote, svc, logger.Nop())

	remote.EXPECT().PullUsers(gomock.Any()).Return([]models.RemoteUser{
		remoteUser("r-1", "ana@x.com", models.RoleAdmin),
		remoteUser("r-2", "bia@x.com", models.RolePeao),
		remoteUser("r-3", "caio@x.com", models.RoleVisitante),
	}, nil)

	result, err := reconciler.Pull(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PullResult{Received: 3, Created: 3}, result)

	users, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	for _, u := range users {
		assert.True(t, u.Synced)
		require.NotNil(t, u.RemoteID)
		assert.Equal(t, "digest-"+*u.RemoteID, u.SenhaHash)
	}
}

func TestSyncReconciler_Pull_Repeated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserService(t)
	ctx := context.Background()
	remote := mock.NewMockRemoteDirectory(ctrl)
	reconciler := NewSyncReconciler(remote, svc, logger.Nop())

	users := []models.RemoteUser{remoteUser("r-1", "ana@x.com", models.RoleAdmin)}
	remote.EXPECT().PullUsers(gomock.Any()).Return(users, nil).Times(2)

	_, err := reconciler.Pull(ctx)
	require.NoError(t, err)
	result, err := reconciler.Pull(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.PullResult{Received: 1, Updated: 1}, result)
	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSyncReconciler_Pull_SkipsInvalidRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserService(t)
	ctx := context.Background()
	remote := mock.NewMockRemoteDirectory(ctrl)
	reconciler := NewSyncReconciler(remote, svc, logger.Nop())

	noDigest := remoteUser("r-3", "caio@x.com", models.RolePeao)
	noDigest.SenhaHash = ""

	remote.EXPECT().PullUsers(gomock.Any()).Return([]models.RemoteUser{
		remoteUser("r-1", "ana@x.com", models.RoleAdmin),
		remoteUser("r-2", "bia@x.com", "superuser"),
		noDigest,
		remoteUser("", "dani@x.com", models.RolePeao),
	}, nil)

	result, err := reconciler.Pull(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PullResult{Received: 4, Created: 1, Skipped: 3}, result)

	_, err = svc.GetByEmail(ctx, "ana@x.com")
	assert.NoError(t, err)
	_, err = svc.GetByEmail(ctx, "bia@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSyncReconciler_Pull_MergesLocalUserByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserService(t)
	ctx := context.Background()
	remote := mock.NewMockRemoteDirectory(ctrl)
	reconciler := NewSyncReconciler(remote, svc, logger.Nop())

	local, err := svc.Create(ctx, models.NewUser{Nome: "Ana", Email: "ana@x.com", Password: "p", Role: models.RolePeao})
	require.NoError(t, err)

	remote.EXPECT().PullUsers(gomock.Any()).Return([]models.RemoteUser{
		remoteUser("r-1", "ANA@x.com", models.RoleGerente),
	}, nil)

	result, err := reconciler.Pull(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PullResult{Received: 1, Updated: 1}, result)

	got, err := svc.GetByID(ctx, local.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleGerente, got.Role)
	assert.True(t, got.Synced)
	require.NotNil(t, got.RemoteID)
	assert.Equal(t, "r-1", *got.RemoteID)
}

func TestSyncReconciler_Pull_SkipsEmailCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserService(t)
	ctx := context.Background()
	remote := mock.NewMockRemoteDirectory(ctrl)
	reconciler := NewSyncReconciler(remote, svc, logger.Nop())

	remote.EXPECT().PullUsers(gomock.Any()).Return([]models.RemoteUser{
		remoteUser("r-1", "ana@x.com", models.RolePeao),
		remoteUser("r-2", "bia@x.com", models.RolePeao),
	}, nil)
	_, err := reconciler.Pull(ctx)
	require.NoError(t, err)

	// r-2 now claims the email r-1 owns locally
	remote.EXPECT().PullUsers(gomock.Any()).Return([]models.RemoteUser{
		remoteUser("r-2", "ana@x.com", models.RolePeao),
	}, nil)
	result, err := reconciler.Pull(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PullResult{Received: 1, Skipped: 1}, result)
}

func TestSyncReconciler_Pull_KeepsExistingRemoteLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserService(t)
	ctx := context.Background()
	remote := mock.NewMockRemoteDirectory(ctrl)
	reconciler := NewSyncReconciler(remote, svc, logger.Nop())

	remote.EXPECT().PullUsers(gomock.Any()).Return([]models.RemoteUser{
		remoteUser("r-1", "ana@x.com", models.RolePeao),
	}, nil)
	_, err := reconciler.Pull(ctx)
	require.NoError(t, err)

	// r-9 is unknown locally but its email belongs to the user linked to r-1
	remote.EXPECT().PullUsers(gomock.Any()).Return([]models.RemoteUser{
		remoteUser("r-9", "Ana@X.com", models.RoleAdmin),
	}, nil)
	result, err := reconciler.Pull(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PullResult{Received: 1, Skipped: 1}, result)

	got, err := svc.GetByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.NotNil(t, got.RemoteID)
	assert.Equal(t, "r-1", *got.RemoteID)
	assert.Equal(t, models.RolePeao, got.Role)
}

func TestSyncReconciler_Pull_TransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserService(t)
	remote := mock.NewMockRemoteDirectory(ctrl)
	reconciler := NewSyncReconciler(remote, svc, logger.Nop())

	transportErr := errors.New("connection refused")
	remote.EXPECT().PullUsers(gomock.Any()).Return(nil, transportErr)

	result, err := reconciler.Pull(context.Background())
	assert.ErrorIs(t, err, ErrSyncUnavailable)
	assert.ErrorIs(t, err, transportErr)
	assert.Equal(t, models.PullResult{}, result)
}

func TestSyncReconciler_Pull_Offline(t *testing.T) {
	svc, _ := newTestUserService(t)
	reconciler := NewSyncReconciler(nil, svc, logger.Nop())

	_, err := reconciler.Pull(context.Background())
	assert.ErrorIs(t, err, ErrSyncUnavailable)
}

func TestSyncReconciler_Pull_CanceledMidway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserService(t)
	remote := mock.NewMockRemoteDirectory(ctrl)
	reconciler := NewSyncReconciler(remote, svc, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	remote.EXPECT().PullUsers(gomock.Any()).DoAndReturn(func(context.Context) ([]models.RemoteUser, error) {
		cancel()
		return []models.RemoteUser{remoteUser("r-1", "ana@x.com", models.RolePeao)}, nil
	})

	result, err := reconciler.Pull(ctx)
	assert.ErrorIs(t, err, ErrSyncUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, result.Received)
	assert.Zero(t, result.Created)
}

func TestSyncReconciler_MarkSynced(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()
	reconciler := NewSyncReconciler(nil, svc, logger.Nop())

	user, err := svc.Create(ctx, models.NewUser{Nome: "Ana", Email: "ana@x.com", Password: "p", Role: models.RolePeao})
	require.NoError(t, err)

	require.NoError(t, reconciler.MarkSynced(ctx, user.ID, "r-9"))

	got, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.Synced)
	require.NotNil(t, got.RemoteID)
	assert.Equal(t, "r-9", *got.RemoteID)
}
