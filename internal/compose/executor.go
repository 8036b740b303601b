// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package compose

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/go-sync-hub/internal/logger"
)

const (
	// ManifestFile is the compose file every instance directory holds.
	ManifestFile = "docker-compose.yaml"

	projectPrefix = "sync-hub-"
)

// projectPattern is what compose accepts as a project name without
// rewriting it, so distinct directories never map to one project.
var projectPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ProjectName is the compose project of the instance directory dir:
// "sync-hub-" plus the directory name, which must already be a valid
// project name.
func ProjectName(dir string) (string, error) {
	base := filepath.Base(dir)
	if !projectPattern.MatchString(base) {
		return "", fmt.Errorf("%w: %q", ErrInvalidProject, base)
	}
	return projectPrefix + base, nil
}

// runFunc runs name with args in dir and returns the combined output.
type runFunc func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

type executor struct {
	command []string
	timeout time.Duration
	run     runFunc
	logger  *logger.Logger
}

// NewExecutor returns an [Executor] invoking command, e.g. "docker compose".
// A zero timeout leaves invocations bounded only by ctx.
func NewExecutor(command string, timeout time.Duration, log *logger.Logger) (Executor, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}

	return &executor{
		command: fields,
		timeout: timeout,
		run:     runInDir,
		logger:  log,
	}, nil
}

func (e *executor) Up(ctx context.Context, dir string) error {
	return e.invoke(ctx, dir, "up", "-d")
}

func (e *executor) Down(ctx context.Context, dir string) error {
	return e.invoke(ctx, dir, "down")
}

func (e *executor) invoke(ctx context.Context, dir string, args ...string) error {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	project, err := ProjectName(dir)
	if err != nil {
		return err
	}

	argv := append([]string{}, e.command[1:]...)
	argv = append(argv, "-p", project, "-f", ManifestFile)
	argv = append(argv, args...)

	started := time.Now()
	out, err := e.run(ctx, dir, e.command[0], argv...)
	elapsed := time.Since(started)

	if err != nil {
		e.logger.Error().Err(err).
			Str("func", "compose.invoke").
			Str("dir", dir).
			Strs("args", argv).
			Dur("elapsed", elapsed).
			Str("output", strings.TrimSpace(string(out))).
			Msg("orchestration command failed")
		return fmt.Errorf("%w: %s %s: %w: %s",
			ErrCommandFailed, e.command[0], strings.Join(argv, " "), err, strings.TrimSpace(string(out)))
	}

	e.logger.Debug().
		Str("func", "compose.invoke").
		Str("dir", dir).
		Strs("args", argv).
		Dur("elapsed", elapsed).
		Msg("orchestration command finished")
	return nil
}

func runInDir(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// nopExecutor is used when containers are disabled.
type nopExecutor struct {
	logger *logger.Logger
}

// NewNopExecutor returns an [Executor] that only logs what it would do.
func NewNopExecutor(log *logger.Logger) Executor {
	return &nopExecutor{logger: log}
}

func (n *nopExecutor) Up(_ context.Context, dir string) error {
	n.logger.Debug().Str("func", "compose.nop").Str("dir", dir).Msg("containers disabled, skipping up")
	return nil
}

func (n *nopExecutor) Down(_ context.Context, dir string) error {
	n.logger.Debug().Str("func", "compose.nop").Str("dir", dir).Msg("containers disabled, skipping down")
	return nil
}
