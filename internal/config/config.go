// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration shared by the directory
// client and the remote directory server. It is populated by merging env
// variables, command-line flags and an optional JSON file.
type StructuredConfig struct {
	// App holds password hashing, token and admin-seed settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings. The client reads a SQLite file
	// path from it, the server a PostgreSQL DSN.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the remote directory server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the remote directory.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds bounds for the client's one-shot pull.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional JSON config file merged last.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds application-level values controlling security and versioning.
type App struct {
	// PasswordHashKey is the application-wide secret mixed into every
	// password digest. Client and server must share it.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// PasswordHashScheme selects the digest format: "sha256" (default,
	// deterministic and compatible with existing digests) or "argon2id".
	// Env: APP_PASSWORD_HASH_SCHEME
	PasswordHashScheme string `env:"PASSWORD_HASH_SCHEME"`

	// TokenSignKey signs and verifies device tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of device tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued device token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key of the HashSHA256 response header.
	// Distinct from PasswordHashKey.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogDir is where the client writes its log file.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`

	// Admin optionally seeds the first admin on a headless first run.
	Admin Admin `envPrefix:"ADMIN_"`
}

// Admin is the first-admin seed. It is used only when bootstrap ends in
// the needs-bootstrap outcome.
type Admin struct {
	Name      string `env:"NAME"`
	Email     string `env:"EMAIL"`
	Password  string `env:"PASSWORD"`
	FazendaID string `env:"FAZENDA_ID"`
}

// Server holds network settings of the remote directory server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN is a SQLite file path on the client and a PostgreSQL
	// connection string on the server.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client's connection settings for the remote directory.
type Adapter struct {
	// HTTPAddress is the base address of the remote directory. Empty means
	// the device runs offline.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the device bearer token issued by cmd/tokengen.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers bounds background-ish work of the client.
type Workers struct {
	// PullTimeout bounds the bootstrap pull as a whole.
	// Env: WORKERS_PULL_TIMEOUT
	PullTimeout time.Duration `env:"PULL_TIMEOUT"`
}

// GetStructuredConfig loads and merges configuration in the following
// priority order (last source wins for non-zero fields):
//  0. Built-in defaults (sha256 scheme, timeouts, token duration)
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetServerConfig returns the structured config validated for running the
// remote directory server.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
