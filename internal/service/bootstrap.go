// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

const defaultPullTimeout = 15 * time.Second

type bootstrapCoordinator struct {
	users       UserService
	reconciler  SyncReconciler
	pullTimeout time.Duration

	// runMu serialises Run and CreateFirstAdmin.
	runMu sync.Mutex

	stateMu sync.RWMutex
	state   models.BootstrapState

	logger *logger.Logger
}

// NewBootstrapCoordinator constructs a [BootstrapCoordinator] starting in
// the checking state. pullTimeout bounds the whole remote pull; a
// non-positive value selects 15s.
func NewBootstrapCoordinator(users UserService, reconciler SyncReconciler, pullTimeout time.Duration, logger *logger.Logger) BootstrapCoordinator {
	if pullTimeout <= 0 {
		pullTimeout = defaultPullTimeout
	}

	return &bootstrapCoordinator{
		users:       users,
		reconciler:  reconciler,
		pullTimeout: pullTimeout,
		state:       models.BootstrapChecking,
		logger:      logger,
	}
}

func (b *bootstrapCoordinator) State() models.BootstrapState {
	b.stateMu.RLock()
	defer b.stateMu.RUnlock()
	return b.state
}

func (b *bootstrapCoordinator) setState(state models.BootstrapState) {
	b.stateMu.Lock()
	b.state = state
	b.stateMu.Unlock()
}

func (b *bootstrapCoordinator) Run(ctx context.Context) (models.BootstrapResult, error) {
	log := logger.FromContext(ctx)

	b.runMu.Lock()
	defer b.runMu.Unlock()

	b.setState(models.BootstrapChecking)

	count, err := b.users.Count(ctx)
	if err != nil {
		log.Err(err).Str("func", "bootstrapCoordinator.Run").Msg("error counting local users")
		return models.BootstrapResult{}, fmt.Errorf("error counting local users: %w", err)
	}

	var result models.BootstrapResult
	if count == 0 {
		b.setState(models.BootstrapSyncing)
		result.Pulled = true
		result.PullErr = b.pull(ctx)

		if count, err = b.users.Count(ctx); err != nil {
			log.Err(err).Str("func", "bootstrapCoordinator.Run").Msg("error counting local users after pull")
			return models.BootstrapResult{}, fmt.Errorf("error counting local users: %w", err)
		}
	}

	result.Users = count
	result.Outcome = models.OutcomeNeedsBootstrap
	if count > 0 {
		result.Outcome = models.OutcomeHasUsers
	}
	b.setState(models.BootstrapReady)

	log.Info().
		Str("func", "bootstrapCoordinator.Run").
		Str("outcome", string(result.Outcome)).
		Bool("pulled", result.Pulled).
		Int("users", result.Users).
		Msg("bootstrap finished")

	return result, nil
}

// pull runs one pull bounded by pullTimeout, even when the reconciler
// ignores cancellation, and returns its failure wrapped in ErrSyncUnavailable.
func (b *bootstrapCoordinator) pull(ctx context.Context) error {
	log := logger.FromContext(ctx)

	pullCtx, cancel := context.WithTimeout(ctx, b.pullTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, pullErr := b.reconciler.Pull(pullCtx)
		done <- pullErr
	}()

	var err error
	select {
	case err = <-done:
	case <-pullCtx.Done():
		err = pullCtx.Err()
	}
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrSyncUnavailable) {
		err = fmt.Errorf("%w: %w", ErrSyncUnavailable, err)
	}

	log.Warn().Err(err).Str("func", "bootstrapCoordinator.pull").Msg("remote pull failed, continuing with local directory")
	return err
}

func (b *bootstrapCoordinator) CreateFirstAdmin(ctx context.Context, nome, email, password string, fazendaID *string) (models.User, error) {
	b.runMu.Lock()
	defer b.runMu.Unlock()

	count, err := b.users.Count(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("error counting local users: %w", err)
	}
	if count > 0 {
		return models.User{}, ErrAlreadyBootstrapped
	}

	return b.users.Create(ctx, models.NewUser{
		Nome:      nome,
		Email:     email,
		Password:  password,
		Role:      models.RoleAdmin,
		FazendaID: fazendaID,
	})
}
