// Package config provides configuration loading, merging, and validation
// for the directory client and the remote directory server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetServerConfig] returns the server view, [GetClientConfig] the client view.
package config
