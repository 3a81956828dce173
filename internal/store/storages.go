package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
)

// Storages groups the repositories of the remote directory server.
type Storages struct {
	UserRepository RemoteUserRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and wires the
// server repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository: NewRemoteUserRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
