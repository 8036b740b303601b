// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package instance

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/MKhiriev/go-sync-hub/internal/compose"
	"github.com/MKhiriev/go-sync-hub/internal/config"
	"github.com/MKhiriev/go-sync-hub/internal/crypto"
	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/internal/reconcile"
	"github.com/MKhiriev/go-sync-hub/internal/utils"
	"github.com/MKhiriev/go-sync-hub/models"
)

const (
	syncDocument        = "sync-engine"
	fileBrowserDocument = "file-browser"
)

// Manager drives the lifecycle of per-user instances.
type Manager struct {
	layout       Layout
	manifest     ManifestOptions
	schedule     []time.Duration
	restartDelay time.Duration

	executor compose.Executor
	codec    crypto.ConfigCodec
	logger   *logger.Logger
}

// NewManager builds a Manager from the instance and storage settings.
func NewManager(
	instances config.Instances,
	storage config.Storage,
	executor compose.Executor,
	codec crypto.ConfigCodec,
	log *logger.Logger,
) *Manager {
	log.Debug().Msg("creating instance manager")

	return &Manager{
		layout: NewLayout(storage.DataDir, storage.ExternalDataDir),
		manifest: ManifestOptions{
			SyncImage:         instances.SyncImage,
			FileBrowserImage:  instances.FileBrowserImage,
			EnableFileBrowser: !instances.DisableFileBrowser,
		},
		schedule:     slices.Clone(instances.ConfigWaitSchedule),
		restartDelay: instances.RestartDelay,
		executor:     executor,
		codec:        codec,
		logger:       log,
	}
}

// StartInstance prepares and starts the user's containers, waits for both
// services to write their config files, reconciles them and restarts the
// containers only when a document changed.
func (m *Manager) StartInstance(ctx context.Context, username string, index int) error {
	if err := m.prepare(ctx, username, index); err != nil {
		return err
	}

	return m.awaitAndReconcile(ctx, username, index)
}

// EnsureInstance is the boot-time variant of StartInstance. The full
// reconcile-and-restart cycle only runs when NeedsUpdate reports drift.
func (m *Manager) EnsureInstance(ctx context.Context, username string, index int) error {
	if err := m.prepare(ctx, username, index); err != nil {
		return err
	}

	needs, err := m.NeedsUpdate(ctx, username, index)
	if err != nil {
		return err
	}
	if !needs {
		m.logger.ForUser(username).Debug().
			Str("func", "*Manager.EnsureInstance").
			Msg("instance config up to date")
		return nil
	}

	return m.awaitAndReconcile(ctx, username, index)
}

// NeedsUpdate runs the reconcilers without writing anything. A config file
// that does not exist yet counts as drift.
func (m *Manager) NeedsUpdate(_ context.Context, username string, index int) (bool, error) {
	if err := ValidateUsername(username); err != nil {
		return false, err
	}

	for _, path := range m.configFiles(username) {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
	}

	changes, err := m.reconcile(username, index)
	if err != nil {
		return false, err
	}
	return len(changes) > 0, nil
}

// StopInstance stops the user's containers. Orchestration failures are
// logged only.
func (m *Manager) StopInstance(ctx context.Context, username string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}

	m.down(ctx, username)
	return nil
}

// RemoveInstanceAndData stops the containers and deletes the user's
// directory tree. Only the deletion can fail.
func (m *Manager) RemoveInstanceAndData(ctx context.Context, username string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}

	m.down(ctx, username)

	dir := m.layout.UserDir(username)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove %s: %w", dir, err)
	}

	m.logger.ForUser(username).Info().
		Str("func", "*Manager.RemoveInstanceAndData").
		Str("dir", dir).
		Msg("instance data removed")
	return nil
}

// prepare creates the directories, writes the manifest and starts the
// containers.
func (m *Manager) prepare(ctx context.Context, username string, index int) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}

	if err := m.layout.EnsureDirs(username); err != nil {
		return err
	}

	manifest, err := BuildManifest(m.layout, username, index, m.manifest)
	if err != nil {
		return err
	}
	if err := utils.WriteFileAtomic(m.layout.ComposeFile(username), manifest, fileMode); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	m.up(ctx, username)
	return nil
}

// configChange is a reconciled document waiting to be written.
type configChange struct {
	document string
	path     string
	mode     os.FileMode
	result   models.ReconcileResult
}

// reconcile reads and reconciles every config file of the user.
func (m *Manager) reconcile(username string, index int) ([]configChange, error) {
	var changes []configChange

	syncPath := m.layout.SyncConfigFile(username)
	change, err := m.reconcileFile(syncDocument, syncPath, func(doc []byte) (models.ReconcileResult, error) {
		return reconcile.SyncEngineConfig(doc, index)
	})
	if err != nil {
		return nil, err
	}
	if change != nil {
		changes = append(changes, *change)
	}

	if !m.manifest.EnableFileBrowser {
		return changes, nil
	}

	fbPath := m.layout.FileBrowserConfigFile(username)
	change, err = m.reconcileFile(fileBrowserDocument, fbPath, func(doc []byte) (models.ReconcileResult, error) {
		return reconcile.FileBrowserConfig(doc, m.codec)
	})
	if err != nil {
		return nil, err
	}
	if change != nil {
		changes = append(changes, *change)
	}

	return changes, nil
}

func (m *Manager) reconcileFile(
	document, path string,
	fn func([]byte) (models.ReconcileResult, error),
) (*configChange, error) {
	info, err := os.Stat(path)
	if err != nil {
		reconcileTotal.WithLabelValues(document, "error").Inc()
		return nil, &ConfigError{Path: path, Err: err}
	}
	doc, err := os.ReadFile(path)
	if err != nil {
		reconcileTotal.WithLabelValues(document, "error").Inc()
		return nil, &ConfigError{Path: path, Err: err}
	}

	result, err := fn(doc)
	if err != nil {
		reconcileTotal.WithLabelValues(document, "error").Inc()
		return nil, &ConfigError{Path: path, Err: err}
	}

	if !result.Updated {
		reconcileTotal.WithLabelValues(document, "unchanged").Inc()
		return nil, nil
	}

	reconcileTotal.WithLabelValues(document, "updated").Inc()
	return &configChange{document: document, path: path, mode: info.Mode().Perm(), result: result}, nil
}

// awaitAndReconcile waits for every config file and then reconciles.
func (m *Manager) awaitAndReconcile(ctx context.Context, username string, index int) error {
	for _, path := range m.configFiles(username) {
		if err := waitForFile(ctx, path, m.schedule); err != nil {
			m.logger.ForUser(username).Error().Err(err).
				Str("func", "*Manager.awaitAndReconcile").
				Str("path", path).
				Msg("config file did not appear")
			return &ConfigError{Path: path, Err: err}
		}
	}

	return m.reconcileAndRestart(ctx, username, index)
}

// reconcileAndRestart writes every changed document, keeping the permission
// bits the service gave it, and restarts the containers if there was at
// least one.
func (m *Manager) reconcileAndRestart(ctx context.Context, username string, index int) error {
	changes, err := m.reconcile(username, index)
	if err != nil {
		m.logger.ForUser(username).Error().Err(err).
			Str("func", "*Manager.reconcileAndRestart").
			Msg("config reconciliation failed")
		return err
	}

	if len(changes) == 0 {
		m.logger.ForUser(username).Info().
			Str("func", "*Manager.reconcileAndRestart").
			Int("index", index).
			Msg("no config changes, restart skipped")
		return nil
	}

	for _, c := range changes {
		if err := utils.WriteFileAtomic(c.path, c.result.Document, c.mode); err != nil {
			m.logger.ForUser(username).Error().Err(err).
				Str("func", "*Manager.reconcileAndRestart").
				Str("path", c.path).
				Msg("could not write reconciled config")
			return &ConfigError{Path: c.path, Err: err}
		}

		m.logger.ForUser(username).Info().
			Str("func", "*Manager.reconcileAndRestart").
			Str("document", c.document).
			Str("path", c.path).
			Strs("reasons", c.result.Reasons).
			Msg("config updated")
	}

	return m.restart(ctx, username)
}

func (m *Manager) restart(ctx context.Context, username string) error {
	restartTotal.Inc()
	m.down(ctx, username)

	if m.restartDelay > 0 {
		timer := time.NewTimer(m.restartDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	m.up(ctx, username)
	return nil
}

func (m *Manager) up(ctx context.Context, username string) {
	if err := m.executor.Up(ctx, m.layout.UserDir(username)); err != nil {
		orchestrationFailures.WithLabelValues("up").Inc()
		m.logger.ForUser(username).Error().Err(err).
			Str("func", "*Manager.up").
			Msg("could not start containers")
	}
}

// down never fails: an already stopped instance is not an error.
func (m *Manager) down(ctx context.Context, username string) {
	if err := m.executor.Down(ctx, m.layout.UserDir(username)); err != nil {
		orchestrationFailures.WithLabelValues("down").Inc()
		m.logger.ForUser(username).Warn().Err(err).
			Str("func", "*Manager.down").
			Msg("could not stop containers")
	}
}

// configFiles lists the config files the managed services must write.
func (m *Manager) configFiles(username string) []string {
	files := []string{m.layout.SyncConfigFile(username)}
	if m.manifest.EnableFileBrowser {
		files = append(files, m.layout.FileBrowserConfigFile(username))
	}
	return files
}
