package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"dario.cat/mergo"
)

const (
	defaultHashScheme           = "sha256"
	defaultTokenDuration        = 30 * 24 * time.Hour
	defaultServerRequestTimeout = 30 * time.Second
)

// configBuilder collects partial configs from each source in priority
// order and merges them in build. Source errors are joined, not returned
// early, so one build reports every broken source.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	merged.App.PasswordHashScheme = strings.ToLower(strings.TrimSpace(merged.App.PasswordHashScheme))
	merged.App.Admin.Email = strings.TrimSpace(merged.App.Admin.Email)

	return merged, merged.validate()
}

// withDefaults adds the lowest-priority source. Any other source that sets
// a field wins over it.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			PasswordHashScheme: defaultHashScheme,
			TokenDuration:      defaultTokenDuration,
		},
		Server:  Server{RequestTimeout: defaultServerRequestTimeout},
		Adapter: Adapter{RequestTimeout: defaultRequestTimeout},
		Workers: Workers{PullTimeout: defaultPullTimeout},
	})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args ...string) *configBuilder {
	if args == nil {
		args = os.Args[1:]
	}

	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withJSON loads the file named by the last source that set a path.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("config file %s: %w", jsonPath, err))
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
