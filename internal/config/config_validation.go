// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

var knownHashSchemes = map[string]struct{}{
	"":         {},
	"sha256":   {},
	"argon2id": {},
}

// validate checks the merged [StructuredConfig]. Role-specific rules live
// in validateServer and [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if _, ok := knownHashSchemes[cfg.App.PasswordHashScheme]; !ok {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.PasswordHashKey == "" || cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if !cfg.Offline() && cfg.Adapter.Token == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.PasswordHashKey == "" {
		return ErrInvalidAppConfigs
	}

	if _, ok := knownHashSchemes[cfg.App.PasswordHashScheme]; !ok {
		return ErrInvalidAppConfigs
	}

	return nil
}
