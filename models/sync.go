package models

import "time"

// RemoteUser is the wire representation of a user held by the remote
// directory. ID is the remote identifier and becomes User.RemoteID locally.
type RemoteUser struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	SenhaHash string    `json:"senhaHash"`
	Role      Role      `json:"role"`
	FazendaID *string   `json:"fazendaId,omitempty"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PullResult summarises one pull of the remote directory into the local store.
type PullResult struct {
	// Received is the number of records returned by the remote directory.
	Received int
	// Created counts records inserted as new local users.
	Created int
	// Updated counts existing local users overwritten by remote state.
	Updated int
	// Skipped counts malformed remote records that were ignored.
	Skipped int
}
