package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

func newTestLocalRepo(t *testing.T) LocalUserRepository {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())

	return NewLocalUserRepository(db, logger.Nop())
}

func strPtr(s string) *string { return &s }

func testUser(id, email string) models.User {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return models.User{
		ID:        id,
		Nome:      "User " + id,
		Email:     email,
		SenhaHash: "digest-" + id,
		Role:      models.RolePeao,
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestLocalUserRepository_InsertAndGet(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	user := testUser("u1", "Ana@X.com")
	user.FazendaID = strPtr("faz-1")
	require.NoError(t, repo.Insert(ctx, user))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", got.Email)
	assert.Equal(t, user.Nome, got.Nome)
	assert.Equal(t, user.SenhaHash, got.SenhaHash)
	assert.Equal(t, models.RolePeao, got.Role)
	require.NotNil(t, got.FazendaID)
	assert.Equal(t, "faz-1", *got.FazendaID)
	assert.Nil(t, got.RemoteID)
	assert.True(t, got.Ativo)
	assert.False(t, got.Synced)
	assert.True(t, user.CreatedAt.Equal(got.CreatedAt))

	byEmail, err := repo.GetByEmail(ctx, "ANA@x.COM")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)
}

func TestLocalUserRepository_NotFound(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	_, err = repo.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	_, err = repo.GetByRemoteID(ctx, "r-1")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	err = repo.Update(ctx, testUser("missing", "m@x.com"))
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestLocalUserRepository_DuplicateEmail(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testUser("u1", "ana@x.com")))

	err := repo.Insert(ctx, testUser("u2", "ANA@X.COM"))
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	require.NoError(t, repo.Insert(ctx, testUser("u3", "bia@x.com")))
	other, err := repo.GetByID(ctx, "u3")
	require.NoError(t, err)
	other.Email = "Ana@x.com"
	assert.ErrorIs(t, repo.Update(ctx, other), ErrEmailAlreadyExists)
}

func TestLocalUserRepository_RemoteIDLinkedOnce(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	first := testUser("u1", "ana@x.com")
	first.RemoteID = strPtr("r-1")
	require.NoError(t, repo.Insert(ctx, first))

	second := testUser("u2", "bia@x.com")
	second.RemoteID = strPtr("r-1")
	assert.ErrorIs(t, repo.Insert(ctx, second), ErrRemoteIDAlreadyLinked)

	got, err := repo.GetByRemoteID(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestLocalUserRepository_UpdateOverwritesMutableColumns(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	user := testUser("u1", "ana@x.com")
	user.FazendaID = strPtr("faz-1")
	require.NoError(t, repo.Insert(ctx, user))

	user.Nome = "Ana Maria"
	user.Role = models.RoleGerente
	user.FazendaID = nil
	user.Ativo = false
	user.Synced = true
	user.RemoteID = strPtr("r-9")
	user.UpdatedAt = user.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Nome)
	assert.Equal(t, models.RoleGerente, got.Role)
	assert.Nil(t, got.FazendaID)
	assert.False(t, got.Ativo)
	assert.True(t, got.Synced)
	require.NotNil(t, got.RemoteID)
	assert.Equal(t, "r-9", *got.RemoteID)
	assert.True(t, user.UpdatedAt.Equal(got.UpdatedAt))
}

func TestLocalUserRepository_DeleteListCount(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	a := testUser("u1", "a@x.com")
	b := testUser("u2", "b@x.com")
	b.CreatedAt = a.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Insert(ctx, b))
	require.NoError(t, repo.Insert(ctx, a))

	users, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "u2", users[1].ID)

	require.NoError(t, repo.Delete(ctx, "u1"))
	require.NoError(t, repo.Delete(ctx, "u1"), "deleting a missing user is not an error")

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func newMockLocalRepo(t *testing.T) (LocalUserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return NewLocalUserRepository(&DB{DB: db, logger: l}, l), mock
}

func TestLocalUserRepository_DriverErrors(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("disk I/O error")

	t.Run("insert", func(t *testing.T) {
		repo, mock := newMockLocalRepo(t)
		mock.ExpectExec("INSERT INTO users").WillReturnError(dbErr)

		err := repo.Insert(ctx, testUser("u1", "a@x.com"))
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get by id", func(t *testing.T) {
		repo, mock := newMockLocalRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = ?").WithArgs("u1").WillReturnError(dbErr)

		_, err := repo.GetByID(ctx, "u1")
		assert.ErrorIs(t, err, ErrScanningRow)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("list", func(t *testing.T) {
		repo, mock := newMockLocalRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM users ORDER BY").WillReturnError(dbErr)

		_, err := repo.List(ctx)
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("list scan", func(t *testing.T) {
		repo, mock := newMockLocalRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM users ORDER BY").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u1"))

		_, err := repo.List(ctx)
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("count", func(t *testing.T) {
		repo, mock := newMockLocalRepo(t)
		mock.ExpectQuery("SELECT COUNT").WillReturnError(dbErr)

		_, err := repo.Count(ctx)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("update rows affected", func(t *testing.T) {
		repo, mock := newMockLocalRepo(t)
		mock.ExpectExec("UPDATE users SET").WillReturnResult(sqlmock.NewErrorResult(dbErr))

		err := repo.Update(ctx, testUser("u1", "a@x.com"))
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})

	t.Run("delete", func(t *testing.T) {
		repo, mock := newMockLocalRepo(t)
		mock.ExpectExec("DELETE FROM users").WithArgs("u1").WillReturnError(dbErr)

		err := repo.Delete(ctx, "u1")
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestLocalUserRepository_BusyIsNotRetried(t *testing.T) {
	ctx := context.Background()
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	t.Run("insert", func(t *testing.T) {
		repo, mock := newMockLocalRepo(t)
		mock.ExpectExec("INSERT INTO users").WillReturnError(busy)

		err := repo.Insert(ctx, testUser("u1", "a@x.com"))
		assert.ErrorIs(t, err, ErrExecutingStatement)

		var sqliteErr sqlite3.Error
		require.ErrorAs(t, err, &sqliteErr)
		assert.Equal(t, sqlite3.ErrBusy, sqliteErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update", func(t *testing.T) {
		repo, mock := newMockLocalRepo(t)
		mock.ExpectExec("UPDATE users SET").WillReturnError(busy)

		err := repo.Update(ctx, testUser("u1", "a@x.com"))
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete", func(t *testing.T) {
		repo, mock := newMockLocalRepo(t)
		mock.ExpectExec("DELETE FROM users").WithArgs("u1").WillReturnError(busy)

		err := repo.Delete(ctx, "u1")
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
