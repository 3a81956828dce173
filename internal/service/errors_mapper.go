// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/validators"
)

// mapStoreError translates repository sentinels into service errors.
// Unknown errors are returned unchanged.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrDuplicateEmail
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	}

	return err
}

// mapValidationError wraps a validator failure in ErrInvalidRole or
// ErrInvalidDataProvided, keeping the validator's reason in the chain.
func mapValidationError(err error) error {
	if errors.Is(err, validators.ErrInvalidRole) {
		return fmt.Errorf("%w: %w", ErrInvalidRole, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
