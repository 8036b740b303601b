// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults returns the built-in configuration every other source is merged
// on top of. SessionSecret has no default and must be supplied.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "go-sync-hub",
			TokenDuration:    7 * 24 * time.Hour,
			PasswordHashCost: 10,
			LogLevel:         "debug",
		},
		Storage: Storage{
			DataDir: "/data",
		},
		Server: Server{
			HTTPAddress:     "0.0.0.0:3000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: time.Minute,
		},
		Instances: Instances{
			MaxUsers:           10,
			ComposeCommand:     "docker compose",
			CommandTimeout:     5 * time.Minute,
			SyncImage:          "syncthing/syncthing:2.0.3",
			FileBrowserImage:   "machines/filestash:latest",
			ConfigWaitSchedule: []time.Duration{5 * time.Second, 10 * time.Second, 15 * time.Second},
			RestartDelay:       2 * time.Second,
			BootConcurrency:    4,
		},
		Gateway: Gateway{
			UpstreamHost:    "127.0.0.1",
			LoginPath:       "/login",
			ErrorPath:       "/error",
			MaxBufferedBody: 10 << 20,
		},
	}
}
