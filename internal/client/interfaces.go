// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

// Client is the lifecycle of a directory client process.
type Client interface {
	// Run performs the first-run bootstrap and reports where the user
	// should be routed next.
	Run(ctx context.Context) (models.BootstrapResult, error)

	// Close releases the local store.
	Close() error
}
