package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/mock"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
)

func TestAuthenticator_Authenticate(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()
	auth := NewAuthenticator(svc, svc.hasher, logger.Nop())

	active, err := svc.Create(ctx, models.NewUser{Nome: "Ana", Email: "ana@x.com", Password: "secret1", Role: models.RolePeao})
	require.NoError(t, err)
	inactive, err := svc.Create(ctx, models.NewUser{Nome: "Bia", Email: "bia@x.com", Password: "secret2", Role: models.RoleGerente})
	require.NoError(t, err)
	ativo := false
	require.NoError(t, svc.Update(ctx, inactive.ID, models.UserPatch{Ativo: &ativo}))

	tests := []struct {
		name     string
		email    string
		password string
		wantID   string
		wantErr  error
	}{
		{name: "correct credentials", email: "ana@x.com", password: "secret1", wantID: active.ID},
		{name: "email case is ignored", email: "ANA@X.com", password: "secret1", wantID: active.ID},
		{name: "unknown email", email: "nobody@x.com", password: "secret1"},
		{name: "wrong password", email: "ana@x.com", password: "secret2"},
		{name: "empty password", email: "ana@x.com", password: ""},
		{name: "inactive user", email: "bia@x.com", password: "secret2", wantErr: ErrInactiveUser},
		{name: "inactive user with wrong password", email: "bia@x.com", password: "nope", wantErr: ErrInactiveUser},
		{name: "inactive user with empty password", email: "bia@x.com", password: "", wantErr: ErrInactiveUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := auth.Authenticate(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			if tt.wantID == "" {
				assert.Nil(t, user)
				return
			}
			require.NotNil(t, user)
			assert.Equal(t, tt.wantID, user.ID)
		})
	}
}

func TestAuthenticator_MalformedPulledDigest(t *testing.T) {
	ctx := context.Background()
	hasher := fastArgon2idHasher()
	svc := newUserService(newTestLocalRepo(t), hasher, utils.NewUUIDGenerator(), logger.Nop())
	auth := NewAuthenticator(svc, hasher, logger.Nop())

	for i, digest := range []string{
		"$argon2id$v=19$m=1024,t=0,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=0$c2FsdA$a2V5",
		"$argon2id$v=19$m=4294967295,t=1,p=1$c2FsdA$a2V5",
	} {
		remote := remoteUser(fmt.Sprintf("r-%d", i), fmt.Sprintf("user%d@x.com", i), models.RolePeao)
		remote.SenhaHash = digest
		_, err := svc.ApplyRemote(ctx, remote)
		require.NoError(t, err)

		var user *models.User
		require.NotPanics(t, func() {
			user, err = auth.Authenticate(ctx, remote.Email, "whatever")
		}, digest)
		assert.NoError(t, err)
		assert.Nil(t, user)
	}
}

func TestAuthenticator_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockLocalUserRepository(ctrl)
	hasher, err := NewPasswordHasher(HashSchemeSHA256, testSecret)
	require.NoError(t, err)
	users := NewUserService(repo, hasher, utils.NewUUIDGenerator(), logger.Nop())
	auth := NewAuthenticator(users, hasher, logger.Nop())

	dbErr := errors.New("database is closed")
	repo.EXPECT().GetByEmail(gomock.Any(), "ana@x.com").Return(models.User{}, dbErr)

	user, err := auth.Authenticate(context.Background(), "ana@x.com", "secret1")
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, user)
}
