// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/internal/utils"
	"github.com/MKhiriev/go-sync-hub/models"
)

const registryFileMode os.FileMode = 0o600

// registryFile is the JSON-document implementation of [UserRepository].
//
// The document is loaded lazily on first use and cached. Every mutation
// builds the next state, writes the whole document atomically and only then
// swaps it into the cache, so a failed write leaves memory and disk in
// agreement.
type registryFile struct {
	path     string
	maxUsers int
	logger   *logger.Logger

	mu          sync.Mutex
	loaded      bool
	users       map[string]models.User
	latestIndex int
}

// NewRegistryFile returns a [UserRepository] stored at path holding at most
// maxUsers users.
func NewRegistryFile(path string, maxUsers int, logger *logger.Logger) UserRepository {
	logger.Debug().Str("path", path).Msg("creating registry file repository")
	return &registryFile{
		path:     path,
		maxUsers: maxUsers,
		logger:   logger,
	}
}

func (r *registryFile) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return r.create(ctx, user, false)
}

func (r *registryFile) CreateFirstUser(ctx context.Context, user models.User) (models.User, error) {
	return r.create(ctx, user, true)
}

// create checks and writes under one lock, so of two racing first-user
// requests exactly one succeeds.
func (r *registryFile) create(ctx context.Context, user models.User, onlyIfEmpty bool) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return models.User{}, err
	}

	if onlyIfEmpty && len(r.users) > 0 {
		return models.User{}, ErrRegistryNotEmpty
	}
	if _, ok := r.users[user.Username]; ok {
		return models.User{}, ErrUserAlreadyExists
	}
	if len(r.users) >= r.maxUsers {
		return models.User{}, ErrCapacityExceeded
	}

	user.Index = r.latestIndex + 1
	user.SyncInstance = user.Username
	if len(r.users) == 0 {
		user.IsAdmin = true
	}

	next := maps.Clone(r.users)
	next[user.Username] = user
	if err := r.commit(next, user.Index); err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*registryFile.CreateUser").
		Str("username", user.Username).
		Int("index", user.Index).
		Bool("is_admin", user.IsAdmin).
		Msg("user created")
	return user, nil
}

func (r *registryFile) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return models.User{}, err
	}

	user, ok := r.users[username]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *registryFile) UpdateUser(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return err
	}

	current, ok := r.users[user.Username]
	if !ok {
		return ErrUserNotFound
	}
	user.Index = current.Index
	user.SyncInstance = current.SyncInstance

	next := maps.Clone(r.users)
	next[user.Username] = user
	return r.commit(next, r.latestIndex)
}

func (r *registryFile) DeleteUser(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return err
	}

	if _, ok := r.users[username]; !ok {
		return ErrUserNotFound
	}

	next := maps.Clone(r.users)
	delete(next, username)
	if err := r.commit(next, r.latestIndex); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*registryFile.DeleteUser").
		Str("username", username).
		Msg("user deleted")
	return nil
}

func (r *registryFile) ListUsers(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	return sortedUsers(r.users), nil
}

func (r *registryFile) CountUsers(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return 0, err
	}
	return len(r.users), nil
}

func (r *registryFile) Reload(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loaded = false
	return r.ensureLoaded()
}

// ensureLoaded reads the document on first use. A missing file is an empty
// registry. Must be called with mu held.
func (r *registryFile) ensureLoaded() error {
	if r.loaded {
		return nil
	}

	users, latest, err := readRegistry(r.path)
	if err != nil {
		r.logger.Error().Err(err).
			Str("func", "*registryFile.ensureLoaded").
			Str("path", r.path).
			Msg("could not load registry")
		return err
	}

	r.users = users
	r.latestIndex = max(latest, r.latestIndex)
	r.loaded = true
	return nil
}

// commit writes next to disk and makes it the cached state. Must be called
// with mu held.
func (r *registryFile) commit(next map[string]models.User, latestIndex int) error {
	latestIndex = max(latestIndex, r.latestIndex)

	doc := models.RegistryDocument{
		Users:       sortedUsers(next),
		LatestIndex: latestIndex,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistingRegistry, err)
	}

	if err := utils.WriteFileAtomic(r.path, data, registryFileMode); err != nil {
		r.logger.Error().Err(err).
			Str("func", "*registryFile.commit").
			Str("path", r.path).
			Msg("could not write registry")
		return fmt.Errorf("%w: %w", ErrPersistingRegistry, err)
	}

	r.users = next
	r.latestIndex = latestIndex
	return nil
}

// readRegistry parses the document at path. Besides the current
// {users, latestIndex} shape it accepts a bare array of users.
func readRegistry(path string) (map[string]models.User, int, error) {
	users := make(map[string]models.User)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return users, models.InitialLatestIndex, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read registry: %w", err)
	}

	var (
		list   []models.User
		latest int
	)
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		return users, models.InitialLatestIndex, nil
	case trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrCorruptRegistry, err)
		}
		latest = len(list)
	default:
		var doc models.RegistryDocument
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrCorruptRegistry, err)
		}
		list = doc.Users
		latest = doc.LatestIndex
		if latest == 0 && len(list) == 0 {
			latest = models.InitialLatestIndex
		}
	}

	for _, u := range list {
		if u.SyncInstance == "" {
			u.SyncInstance = u.Username
		}
		users[u.Username] = u
		latest = max(latest, u.Index)
	}

	return users, latest, nil
}

func sortedUsers(users map[string]models.User) []models.User {
	return slices.SortedFunc(maps.Values(users), func(a, b models.User) int {
		return a.Index - b.Index
	})
}
