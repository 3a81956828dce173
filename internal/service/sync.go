package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-directory/internal/adapter"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

type syncReconciler struct {
	remote adapter.RemoteDirectory
	writer SyncWriter

	logger *logger.Logger
}

// NewSyncReconciler constructs a [SyncReconciler]. A nil remote means the
// device runs offline and every pull fails with [ErrSyncUnavailable].
func NewSyncReconciler(remote adapter.RemoteDirectory, writer SyncWriter, logger *logger.Logger) SyncReconciler {
	return &syncReconciler{
		remote: remote,
		writer: writer,
		logger: logger,
	}
}

// Pull implements [SyncReconciler]. Malformed remote records and records
// whose email collides with a different local user are skipped. A local
// store failure stops the pull and is returned with the partial result.
func (s *syncReconciler) Pull(ctx context.Context) (models.PullResult, error) {
	log := logger.FromContext(ctx)

	if s.remote == nil {
		return models.PullResult{}, fmt.Errorf("%w: no remote directory configured", ErrSyncUnavailable)
	}

	remoteUsers, err := s.remote.PullUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "syncReconciler.Pull").Msg("error pulling remote users")
		return models.PullResult{}, fmt.Errorf("%w: %w", ErrSyncUnavailable, err)
	}

	result := models.PullResult{Received: len(remoteUsers)}
	for _, remote := range remoteUsers {
		if err = ctx.Err(); err != nil {
			return result, fmt.Errorf("%w: %w", ErrSyncUnavailable, err)
		}

		created, applyErr := s.writer.ApplyRemote(ctx, remote)
		switch {
		case applyErr == nil && created:
			result.Created++
		case applyErr == nil:
			result.Updated++
		case errors.Is(applyErr, ErrInvalidDataProvided),
			errors.Is(applyErr, ErrInvalidRole),
			errors.Is(applyErr, ErrDuplicateEmail):
			log.Warn().Err(applyErr).
				Str("func", "syncReconciler.Pull").
				Str("remote_id", remote.ID).
				Msg("skipping remote user")
			result.Skipped++
		default:
			log.Err(applyErr).
				Str("func", "syncReconciler.Pull").
				Str("remote_id", remote.ID).
				Msg("error applying remote user")
			return result, fmt.Errorf("error applying remote user %q: %w", remote.ID, applyErr)
		}
	}

	log.Info().
		Str("func", "syncReconciler.Pull").
		Int("received", result.Received).
		Int("created", result.Created).
		Int("updated", result.Updated).
		Int("skipped", result.Skipped).
		Msg("pull finished")

	return result, nil
}

func (s *syncReconciler) MarkSynced(ctx context.Context, id, remoteID string) error {
	return s.writer.MarkSynced(ctx, id, remoteID)
}
