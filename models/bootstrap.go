// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BootstrapState is the phase of the first-run bootstrap state machine.
type BootstrapState string

const (
	BootstrapChecking BootstrapState = "checking"
	BootstrapSyncing  BootstrapState = "syncing"
	BootstrapReady    BootstrapState = "ready"
)

// BootstrapOutcome is the terminal decision reached once bootstrap is ready.
type BootstrapOutcome string

const (
	// OutcomeUnknown is reported while bootstrap has not reached ready.
	OutcomeUnknown BootstrapOutcome = ""
	// OutcomeHasUsers routes the caller to the login flow.
	OutcomeHasUsers BootstrapOutcome = "has_users"
	// OutcomeNeedsBootstrap asks the caller to create the first admin.
	OutcomeNeedsBootstrap BootstrapOutcome = "needs_bootstrap"
)

// BootstrapResult is returned by a completed bootstrap run.
type BootstrapResult struct {
	Outcome BootstrapOutcome
	// Pulled is true when a pull from the remote directory was attempted.
	Pulled bool
	// PullErr holds the absorbed pull failure, if any. It is informational
	// only and never turns the run into a failure.
	PullErr error
	// Users is the number of local users after the run.
	Users int
}
