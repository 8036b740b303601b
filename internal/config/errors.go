package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates missing session or hashing settings
	// (for example, an empty session secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty data directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an empty listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidInstancesConfigs indicates invalid lifecycle manager settings
	// (for example, zero capacity or an empty wait schedule).
	ErrInvalidInstancesConfigs = errors.New("invalid instances configuration")
)
