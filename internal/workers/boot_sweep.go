// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-hub/internal/logger"
)

// BootSweep starts the instances of all users that existed before the
// process started. Instances whose configuration already matches policy
// are only brought up, not restarted.
type BootSweep struct {
	booter InstanceBooter
	logger *logger.Logger
}

func NewBootSweep(booter InstanceBooter, logger *logger.Logger) *BootSweep {
	return &BootSweep{booter: booter, logger: logger}
}

func (b *BootSweep) Name() string {
	return "boot-sweep"
}

// Run ignores cancellation of ctx once started: a reconcile/restart cycle
// always runs to completion.
func (b *BootSweep) Run(ctx context.Context) error {
	start := time.Now()

	err := b.booter.StartAllInstances(context.WithoutCancel(ctx))

	b.logger.Info().Dur("duration", time.Since(start)).Bool("ok", err == nil).Msg("boot sweep done")
	return err
}
