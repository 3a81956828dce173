// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/migrations"
)

// retryDelays are the pauses between attempts of a server statement whose
// error is classified as [Retryable]. The local SQLite store has no
// classifier and never retries.
var retryDelays = []time.Duration{
	50 * time.Millisecond,
	150 * time.Millisecond,
	400 * time.Millisecond,
}

// DB wraps *sql.DB with the migration dialect and a driver-specific error
// classifier.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema matching the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	for attempt := 0; err != nil && attempt < len(retryDelays); attempt++ {
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt+1).
			Msg("retryable database error, retrying")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(retryDelays[attempt]):
		}

		err = op()
	}

	return err
}
