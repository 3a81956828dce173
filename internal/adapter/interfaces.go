// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the remote user
// directory.
//
// [RemoteDirectory] decouples the sync reconciler from the protocol. The
// package ships an HTTP/REST implementation ([NewHTTPRemoteDirectory]).
// Error values in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (for example
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_directory_mock.go -package=mock

// RemoteDirectory is the read side of the remote user directory.
type RemoteDirectory interface {
	// PullUsers returns the full remote user list. The response is checked
	// for integrity before it is returned; a failed check is an error and no
	// users are returned.
	PullUsers(ctx context.Context) ([]models.RemoteUser, error)
}
