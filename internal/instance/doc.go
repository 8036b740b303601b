// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package instance manages the per-user sync-engine and file-browser
// instances: directory layout, orchestration manifest, container start and
// stop, and the one-shot "wait for config files, reconcile, restart only if
// changed" sequence.
//
// Instance lifecycle:
//
//	absent → directories created → manifest written → containers starting
//	       → awaiting config files → reconciled (no-op | changed)
//	       → restart cycle (only if changed) → running
//
// Orchestration failures (up/down) are logged and never fail StartInstance
// or StopInstance. Config read/parse/write failures are returned as
// *ConfigError.
package instance
