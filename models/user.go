// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// User is the local directory record of an application user.
// SenhaHash holds a password digest and must never be exposed in plaintext
// form nor written to logs.
type User struct {
	// ID is the locally generated UUID. It never changes once assigned.
	ID string `json:"id"`

	// Nome is the display name of the user.
	Nome string `json:"nome"`

	// Email is the login identifier. Stored lower-cased and unique
	// across the directory regardless of case.
	Email string `json:"email"`

	// SenhaHash is the derived password digest.
	SenhaHash string `json:"senhaHash"`

	Role Role `json:"role"`

	// FazendaID references the organizational unit of the user, if any.
	FazendaID *string `json:"fazendaId,omitempty"`

	// Ativo reports whether the account may authenticate.
	Ativo bool `json:"ativo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Synced is true only right after a successful pull or push; every
	// local mutation resets it.
	Synced bool `json:"synced"`

	// RemoteID correlates the record with its remote counterpart. Nil until
	// the first successful sync.
	RemoteID *string `json:"remoteId,omitempty"`
}

// NormalizeEmail returns the canonical stored form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserPatch is a partial update of a [User]. Nil fields are left untouched.
// Password is plaintext and is hashed before it reaches the store.
type UserPatch struct {
	Nome     *string
	Email    *string
	Password *string
	Role     *Role

	// FazendaID replaces the organizational unit when SetFazendaID is true.
	// A nil FazendaID together with SetFazendaID clears the reference.
	FazendaID    *string
	SetFazendaID bool

	Ativo *bool
}

// NewUser carries the input of a user creation call.
type NewUser struct {
	Nome      string
	Email     string
	Password  string
	Role      Role
	FazendaID *string
}
