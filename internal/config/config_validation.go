// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSecret == "" {
		return fmt.Errorf("%w: empty session secret", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: non-positive token duration", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d out of range", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
	}

	if cfg.Storage.DataDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Instances.MaxUsers < 1 {
		return fmt.Errorf("%w: max users must be positive", ErrInvalidInstancesConfigs)
	}
	if len(cfg.Instances.ConfigWaitSchedule) == 0 {
		return fmt.Errorf("%w: empty config wait schedule", ErrInvalidInstancesConfigs)
	}
	if strings.TrimSpace(cfg.Instances.ComposeCommand) == "" && !cfg.Instances.DisableContainers {
		return fmt.Errorf("%w: empty compose command", ErrInvalidInstancesConfigs)
	}

	return nil
}
