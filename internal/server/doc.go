// Package server runs the remote directory's HTTP server, including signal
// handling and graceful shutdown.
package server
