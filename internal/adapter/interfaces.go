// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the per-user backends the hub runs.
//
// The primary abstraction is [HealthChecker], which asks a user's
// sync-engine instance whether it is up. The HTTP implementation
// ([NewHTTPHealthChecker]) calls the unauthenticated health endpoint on the
// port derived from the user's index.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// statusError so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sync-hub/models"
)

// HealthChecker checks the health of per-user instances.
type HealthChecker interface {
	// SyncEngineHealth checks the sync-engine of the user with index.
	// An unreachable or unhealthy instance is reported through the returned
	// status; the error is non-nil only when the request itself is invalid.
	SyncEngineHealth(ctx context.Context, username string, index int) (models.InstanceStatus, error)
}
