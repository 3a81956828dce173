package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// UserRepository is the SQLite-backed local user directory.
	UserRepository LocalUserRepository

	db *DB
}

// NewClientStorages opens the SQLite file at cfg.DB.DSN (creating it when
// missing), applies pending migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		UserRepository: NewLocalUserRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
