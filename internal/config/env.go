// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment following the env/envPrefix tags
// of [StructuredConfig]. Every bad variable is reported, not just the first.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var agg env.AggregateError
	if errors.As(err, &agg) {
		return fmt.Errorf("reading environment: %w", errors.Join(agg.Errors...))
	}
	return fmt.Errorf("reading environment: %w", err)
}
