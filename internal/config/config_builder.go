package config

import (
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
)

// configBuilder collects config layers in priority order: defaults, env,
// flags, then the JSON file named by any of them. Later layers override
// non-zero fields of earlier ones. Source errors are collected, not
// short-circuited, so one run reports every broken source.
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
		return nil, fmt.Errorf("config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("config: merging layers: %w", err)
		}
	}

	// an unset external dir means the hub runs directly on the host
	if config.Storage.ExternalDataDir == "" {
		config.Storage.ExternalDataDir = config.Storage.DataDir
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, Defaults())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("env: %w", err))
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("flags: %w", err))
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var path string
	for _, cfg := range slices.Backward(b.configs) {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
			break
		}
	}
	if path == "" {
		return b
	}

	jsonCfg, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("json file %s: %w", path, err))
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
