// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-sync-hub server. It aggregates all sub-configurations and is populated
// by merging built-in defaults, environment variables, command-line flags and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session, password hashing and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the registry and per-user directories.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Instances holds the settings of the per-user instance lifecycle
	// manager.
	Instances Instances `envPrefix:"INSTANCES_"`

	// Gateway holds reverse proxy settings.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control sessions,
// password hashing and logging.
type App struct {
	// SessionSecret is the HMAC key used to sign and verify session tokens.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// TokenIssuer is the "iss" claim embedded in every session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the session lifetime; it is also the cookie Max-Age.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost used for new password hashes.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage holds filesystem locations.
type Storage struct {
	// DataDir holds users.json and the users/<name> instance directories.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// ExternalDataDir is DataDir as seen by the container runtime on the
	// host. It differs from DataDir when the hub itself runs in a container.
	// Env: STORAGE_DATA_DIR_EXTERNAL
	ExternalDataDir string `env:"DATA_DIR_EXTERNAL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds API requests. Proxied requests are not bounded.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown including stopping every
	// user's containers.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Instances configures the instance lifecycle manager.
type Instances struct {
	// MaxUsers is the registry capacity.
	// Env: INSTANCES_MAX_USERS
	MaxUsers int `env:"MAX_USERS"`

	// DisableContainers turns every orchestration call into a no-op.
	// Env: INSTANCES_DISABLE_CONTAINERS
	DisableContainers bool `env:"DISABLE_CONTAINERS"`

	// DisableFileBrowser removes the file-browser service, its reconciler and
	// its gateway.
	// Env: INSTANCES_DISABLE_FILE_BROWSER
	DisableFileBrowser bool `env:"DISABLE_FILE_BROWSER"`

	// ComposeCommand is the orchestration command; "up -d" and "down" are
	// appended to it.
	// Env: INSTANCES_COMPOSE_COMMAND
	ComposeCommand string `env:"COMPOSE_COMMAND"`

	// CommandTimeout bounds one orchestration invocation.
	// Env: INSTANCES_COMMAND_TIMEOUT
	CommandTimeout time.Duration `env:"COMMAND_TIMEOUT"`

	// SyncImage is the sync-engine container image.
	// Env: INSTANCES_SYNC_IMAGE
	SyncImage string `env:"SYNC_IMAGE"`

	// FileBrowserImage is the file-browser container image.
	// Env: INSTANCES_FILE_BROWSER_IMAGE
	FileBrowserImage string `env:"FILE_BROWSER_IMAGE"`

	// ConfigWaitSchedule is the list of pauses used while waiting for a
	// freshly started instance to write its config file.
	// Env: INSTANCES_CONFIG_WAIT_SCHEDULE (comma separated, e.g. "5s,10s,15s")
	ConfigWaitSchedule []time.Duration `env:"CONFIG_WAIT_SCHEDULE" envSeparator:","`

	// RestartDelay is the pause between "down" and "up" of a restart.
	// Env: INSTANCES_RESTART_DELAY
	RestartDelay time.Duration `env:"RESTART_DELAY"`

	// BootConcurrency bounds how many instances the boot sweep handles at
	// once.
	// Env: INSTANCES_BOOT_CONCURRENCY
	BootConcurrency int `env:"BOOT_CONCURRENCY"`
}

// Gateway configures the reverse proxy gateway.
type Gateway struct {
	// UpstreamHost is the host of every per-user backend.
	// Env: GATEWAY_UPSTREAM_HOST
	UpstreamHost string `env:"UPSTREAM_HOST"`

	// LoginPath receives requests that carry no valid session.
	// Env: GATEWAY_LOGIN_PATH
	LoginPath string `env:"LOGIN_PATH"`

	// ErrorPath is the diagnostic page; the message is passed as ?msg=.
	// Env: GATEWAY_ERROR_PATH
	ErrorPath string `env:"ERROR_PATH"`

	// SecureCookie adds the Secure attribute to the session cookie.
	// Env: GATEWAY_SECURE_COOKIE
	SecureCookie bool `env:"SECURE_COOKIE"`

	// MaxBufferedBody limits request bodies on the buffered proxy path.
	// Env: GATEWAY_MAX_BUFFERED_BODY
	MaxBufferedBody int64 `env:"MAX_BUFFERED_BODY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
