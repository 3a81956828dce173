// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the local user directory: the SQLite store, the
// optional remote directory adapter and the client services, and runs the
// first-run bootstrap.
package client
