// Package http implements the REST surface of the remote directory server.
//
// It wires chi routes for pulling and provisioning users, and the
// middleware that traces, logs, authenticates devices and signs responses
// before requests reach the service layer.
package http
