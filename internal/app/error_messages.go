// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains response messages shared by the directory server's
// handlers and middleware.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or misses required fields.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidRole is returned for a role outside admin, gerente, peao
	// and visitante.
	MsgInvalidRole = "invalid role"

	// MsgEmailAlreadyExists is returned when provisioning a user whose email
	// is taken, regardless of case.
	MsgEmailAlreadyExists = "email already exists"

	MsgUserNotFound = "user not found"

	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a device token is well formed but
	// past its expiry.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a device token cannot be
	// verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
)
