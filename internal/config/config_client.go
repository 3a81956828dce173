package config

import (
	"fmt"
	"time"
)

const (
	defaultRequestTimeout = 10 * time.Second
	defaultPullTimeout    = 15 * time.Second
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// PasswordHashKey is the shared password digest secret.
	PasswordHashKey string
	// PasswordHashScheme is the digest format, see [App.PasswordHashScheme].
	PasswordHashScheme string
	// HashKey verifies the HashSHA256 header of remote responses.
	HashKey string
	// LogDir is the client log directory.
	LogDir string
	// Admin is the optional first-admin seed.
	Admin Admin
}

// ClientAdapter holds network settings used by the remote directory client.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	Token          string
}

// ClientDB contains local database settings.
type ClientDB struct {
	// DSN is the path of the SQLite database file.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers bounds the client's pull.
type ClientWorkers struct {
	PullTimeout time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// Offline reports whether no remote directory is configured.
func (c *ClientConfig) Offline() bool {
	return c.Adapter.HTTPAddress == ""
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration. Zero timeouts are replaced with defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			PasswordHashKey:    cfg.App.PasswordHashKey,
			PasswordHashScheme: cfg.App.PasswordHashScheme,
			HashKey:            cfg.App.HashKey,
			LogDir:             cfg.App.LogDir,
			Admin:              cfg.App.Admin,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{PullTimeout: cfg.Workers.PullTimeout},
	}

	if clientCfg.Adapter.RequestTimeout <= 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Workers.PullTimeout <= 0 {
		clientCfg.Workers.PullTimeout = defaultPullTimeout
	}

	return clientCfg
}
