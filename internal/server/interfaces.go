// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of the remote directory's listener.
type Server interface {
	// RunServer serves the directory API until a termination signal
	// arrives, then shuts down gracefully.
	RunServer()

	// Shutdown stops accepting requests and drains in-flight ones.
	Shutdown()
}
