package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

// localUserRepository is the SQLite-backed implementation of
// [LocalUserRepository]. All methods log through the context-scoped logger
// and never log password digests.
type localUserRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalUserRepository constructs a [LocalUserRepository] on db.
func NewLocalUserRepository(db *DB, logger *logger.Logger) LocalUserRepository {
	return &localUserRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocalUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		role      string
		fazendaID sql.NullString
		remoteID  sql.NullString
	)

	err := row.Scan(
		&user.ID,
		&user.Nome,
		&user.Email,
		&user.SenhaHash,
		&role,
		&fazendaID,
		&user.Ativo,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Synced,
		&remoteID,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Role = models.Role(role)
	user.FazendaID = stringPtr(fazendaID)
	user.RemoteID = stringPtr(remoteID)

	return user, nil
}

func (l *localUserRepository) Insert(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertLocalUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "localUserRepository.Insert").Msg("failed to create query")
		return err
	}

	if _, err = l.ExecContext(ctx, query, args...); err != nil {
		if mapped := sqliteConstraintError(err); mapped != err {
			log.Warn().Err(err).
				Str("func", "localUserRepository.Insert").
				Str("user_id", user.ID).
				Msg("constraint violation on insert")
			return mapped
		}

		log.Err(err).
			Str("func", "localUserRepository.Insert").
			Str("user_id", user.ID).
			Msg("failed to execute insert for user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localUserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	return l.getOne(ctx, "localUserRepository.GetByID", sq.Eq{"id": id})
}

func (l *localUserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return l.getOne(ctx, "localUserRepository.GetByEmail", sq.Eq{"email": models.NormalizeEmail(email)})
}

func (l *localUserRepository) GetByRemoteID(ctx context.Context, remoteID string) (models.User, error) {
	return l.getOne(ctx, "localUserRepository.GetByRemoteID", sq.Eq{"remote_id": remoteID})
}

func (l *localUserRepository) getOne(ctx context.Context, funcName string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLocalUserQuery(where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return models.User{}, err
	}

	user, err := scanLocalUser(l.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (l *localUserRepository) Update(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateLocalUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "localUserRepository.Update").Msg("failed to create query")
		return err
	}

	result, err := l.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := sqliteConstraintError(err); mapped != err {
			log.Warn().Err(err).
				Str("func", "localUserRepository.Update").
				Str("user_id", user.ID).
				Msg("constraint violation on update")
			return mapped
		}

		log.Err(err).
			Str("func", "localUserRepository.Update").
			Str("user_id", user.ID).
			Msg("failed to execute update for user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "localUserRepository.Update").
			Str("user_id", user.ID).
			Msg("failed to get rows affected after update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (l *localUserRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteLocalUserQuery(id)
	if err != nil {
		log.Err(err).Str("func", "localUserRepository.Delete").Msg("failed to create query")
		return err
	}

	if _, err = l.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localUserRepository.Delete").
			Str("user_id", id).
			Msg("failed to execute delete for user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localUserRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLocalUserQuery(nil)
	if err != nil {
		log.Err(err).Str("func", "localUserRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := l.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localUserRepository.List").Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		user, scanErr := scanLocalUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "localUserRepository.List").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "localUserRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

func (l *localUserRepository) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountLocalUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "localUserRepository.Count").Msg("failed to create query")
		return 0, err
	}

	var count int
	if err = l.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "localUserRepository.Count").Msg("failed to count users")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
