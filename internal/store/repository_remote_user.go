package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

// remoteUserRepository is the PostgreSQL-backed implementation of
// [RemoteUserRepository] used by the remote directory server.
type remoteUserRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRemoteUserRepository constructs a [RemoteUserRepository] on db.
func NewRemoteUserRepository(db *DB, logger *logger.Logger) RemoteUserRepository {
	logger.Debug().Msg("creating remote user repository")
	return &remoteUserRepository{
		db:     db,
		logger: logger,
	}
}

// ListUsers returns every user of the directory ordered by creation time.
func (r *remoteUserRepository) ListUsers(ctx context.Context) ([]models.RemoteUser, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRemoteUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*remoteUserRepository.ListUsers").Msg("failed to create query")
		return nil, err
	}

	var rows *sql.Rows
	err = r.db.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = r.db.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*remoteUserRepository.ListUsers").Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.RemoteUser, 0, 16)
	for rows.Next() {
		var (
			user      models.RemoteUser
			role      string
			fazendaID sql.NullString
		)

		scanErr := rows.Scan(
			&user.ID,
			&user.Nome,
			&user.Email,
			&user.SenhaHash,
			&role,
			&fazendaID,
			&user.Ativo,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*remoteUserRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		user.Role = models.Role(role)
		user.FazendaID = stringPtr(fazendaID)
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*remoteUserRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// CreateUser inserts user and returns it with the stored id and timestamps.
//
// PostgreSQL unique_violation (23505) is reported as [ErrEmailAlreadyExists].
func (r *remoteUserRepository) CreateUser(ctx context.Context, user models.RemoteUser) (models.RemoteUser, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRemoteUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*remoteUserRepository.CreateUser").Msg("failed to create query")
		return models.RemoteUser{}, err
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	})
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Warn().Str("func", "*remoteUserRepository.CreateUser").Msg("email already exists")
			return models.RemoteUser{}, ErrEmailAlreadyExists
		default:
			log.Err(err).Str("func", "*remoteUserRepository.CreateUser").Msg("failed to insert user")
			return models.RemoteUser{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	user.Email = models.NormalizeEmail(user.Email)
	return user, nil
}
