// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-sync-hub/internal/config"
	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/internal/store"
	"github.com/MKhiriev/go-sync-hub/models"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

// dummyPassword is hashed once and compared against when the username is
// unknown, so that both failure paths cost one bcrypt comparison.
const dummyPassword = "go-sync-hub:no-such-user"

// userRegistry is the concrete implementation of UserRegistry.
// Registry writes always happen before the instance manager is notified; a
// failing instance operation therefore never leaves the registry half
// updated.
type userRegistry struct {
	// users is the persistence layer holding the registry document.
	users store.UserRepository

	// instances receives start/teardown notifications.
	instances InstanceManager

	// hashCost is the bcrypt cost of newly created hashes.
	hashCost int

	// bootConcurrency bounds StartAllInstances.
	bootConcurrency int

	dummyHash func() []byte

	// pending tracks instance starts running in the background.
	pending sync.WaitGroup

	// instanceLocks serializes start and teardown of one user's instance.
	locksMu       sync.Mutex
	instanceLocks map[string]*sync.Mutex

	logger *logger.Logger
}

// NewUserRegistry constructs a UserRegistry backed by users and notifying
// instances.
func NewUserRegistry(
	users store.UserRepository,
	instances InstanceManager,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) UserRegistry {
	cost := cfg.App.PasswordHashCost
	return &userRegistry{
		users:           users,
		instances:       instances,
		hashCost:        cost,
		bootConcurrency: max(cfg.Instances.BootConcurrency, 1),
		dummyHash: sync.OnceValue(func() []byte {
			hash, _ := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
			return hash
		}),
		instanceLocks: make(map[string]*sync.Mutex),
		logger:        logger,
	}
}

// Register adds the very first user. The emptiness check runs under the
// store lock, so of two concurrent registrations exactly one succeeds.
func (r *userRegistry) Register(ctx context.Context, username, password string) (models.User, error) {
	open, err := r.IsRegistrationOpen(ctx)
	if err != nil {
		return models.User{}, err
	}
	if !open {
		return models.User{}, ErrRegistrationClosed
	}

	user, err := r.addUser(ctx, username, password, false, r.users.CreateFirstUser)
	if errors.Is(err, store.ErrRegistryNotEmpty) {
		return models.User{}, ErrRegistrationClosed
	}
	return user, err
}

// AddUser persists a new user and starts their instance in the background.
//
// Returns the stored user or:
//   - ErrInvalidDataProvided if username or password is empty or the
//     password is longer than bcrypt accepts.
//   - store.ErrUserAlreadyExists or store.ErrCapacityExceeded (wrapped).
func (r *userRegistry) AddUser(ctx context.Context, username, password string, isAdmin bool) (models.User, error) {
	return r.addUser(ctx, username, password, isAdmin, r.users.CreateUser)
}

func (r *userRegistry) addUser(
	ctx context.Context,
	username, password string,
	isAdmin bool,
	create func(context.Context, models.User) (models.User, error),
) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := r.hashPassword(password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.User{}, err
	}

	user, err := create(ctx, models.User{
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().
		Str("username", user.Username).
		Int("index", user.Index).
		Bool("isAdmin", user.IsAdmin).
		Msg("user added")

	r.startInBackground(ctx, user)

	return user, nil
}

func (r *userRegistry) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := r.users.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(r.dummyHash(), []byte(password))
		log.Debug().Str("username", username).Msg("authentication failed: unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Debug().Str("username", username).Msg("authentication failed: wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (r *userRegistry) PromoteToAdmin(ctx context.Context, username string) error {
	user, err := r.users.FindUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("user search by username failed: %w", err)
	}
	if user.IsAdmin {
		return nil
	}

	user.IsAdmin = true
	if err = r.users.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("promoting user failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("username", username).Msg("user promoted to admin")
	return nil
}

func (r *userRegistry) UpdatePassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return ErrInvalidDataProvided
	}

	user, err := r.users.FindUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("user search by username failed: %w", err)
	}

	user.PasswordHash, err = r.hashPassword(newPassword)
	if err != nil {
		return err
	}

	if err = r.users.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("updating password failed: %w", err)
	}
	return nil
}

// RemoveUser deletes the user from the registry, then stops their instance
// and deletes its directory. The registry change stands even if the
// teardown fails; that case is reported as ErrInstanceTeardown.
func (r *userRegistry) RemoveUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	if err := r.users.DeleteUser(ctx, username); err != nil {
		return fmt.Errorf("user removal failed: %w", err)
	}
	log.Info().Str("username", username).Msg("user removed")

	unlock := r.lockInstance(username)
	defer unlock()

	if err := r.instances.RemoveInstanceAndData(ctx, username); err != nil {
		log.Err(err).Str("username", username).Msg("instance teardown failed")
		return fmt.Errorf("%w: %w", ErrInstanceTeardown, err)
	}
	return nil
}

func (r *userRegistry) GetUser(ctx context.Context, username string) (models.User, error) {
	return r.users.FindUserByUsername(ctx, username)
}

func (r *userRegistry) ListUsers(ctx context.Context) ([]models.User, error) {
	return r.users.ListUsers(ctx)
}

func (r *userRegistry) IsRegistrationOpen(ctx context.Context) (bool, error) {
	count, err := r.users.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("counting users failed: %w", err)
	}
	return count == 0, nil
}

func (r *userRegistry) Reload(ctx context.Context) error {
	return r.users.Reload(ctx)
}

// StartAllInstances runs EnsureInstance for every user, at most
// bootConcurrency at a time. One user's failure does not stop the others;
// the failures are joined under ErrInstanceBoot.
func (r *userRegistry) StartAllInstances(ctx context.Context) error {
	users, err := r.users.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("listing users failed: %w", err)
	}

	r.logger.Info().Int("users", len(users)).Msg("starting all instances")

	var (
		mu     sync.Mutex
		failed []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.bootConcurrency)
	for _, user := range users {
		g.Go(func() error {
			unlock := r.lockInstance(user.Username)
			defer unlock()

			if err := r.instances.EnsureInstance(gctx, user.Username, user.Index); err != nil {
				r.logger.Error().Err(err).
					Str("func", "*userRegistry.StartAllInstances").
					Str("username", user.Username).
					Int("index", user.Index).
					Msg("instance failed to start")

				mu.Lock()
				failed = append(failed, fmt.Errorf("%s: %w", user.Username, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(failed) > 0 {
		return fmt.Errorf("%w: %w", ErrInstanceBoot, errors.Join(failed...))
	}
	return nil
}

func (r *userRegistry) StopAllInstances(ctx context.Context) error {
	users, err := r.users.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("listing users failed: %w", err)
	}

	r.logger.Info().Int("users", len(users)).Msg("stopping all instances")
	for _, user := range users {
		if err = r.instances.StopInstance(ctx, user.Username); err != nil {
			r.logger.Error().Err(err).
				Str("func", "*userRegistry.StopAllInstances").
				Str("username", user.Username).
				Msg("instance failed to stop")
		}
	}
	return nil
}

func (r *userRegistry) Wait() {
	r.pending.Wait()
}

// startInBackground starts the user's instance detached from the request
// that created the user. The start is skipped when the user was removed (or
// removed and re-added) before the instance lock was acquired.
func (r *userRegistry) startInBackground(ctx context.Context, user models.User) {
	ctx = context.WithoutCancel(ctx)
	r.pending.Go(func() {
		unlock := r.lockInstance(user.Username)
		defer unlock()

		current, err := r.users.FindUserByUsername(ctx, user.Username)
		if err != nil || current.Index != user.Index {
			logger.FromContext(ctx).Info().
				Str("username", user.Username).
				Msg("user gone before instance start, skipping")
			return
		}

		if err = r.instances.StartInstance(ctx, user.Username, user.Index); err != nil {
			logger.FromContext(ctx).Error().Err(err).
				Str("func", "*userRegistry.startInBackground").
				Str("username", user.Username).
				Int("index", user.Index).
				Msg("starting instance for new user failed")
		}
	})
}

// lockInstance acquires the per-user instance lock and returns its release.
func (r *userRegistry) lockInstance(username string) func() {
	r.locksMu.Lock()
	mu, ok := r.instanceLocks[username]
	if !ok {
		mu = new(sync.Mutex)
		r.instanceLocks[username] = mu
	}
	r.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

func (r *userRegistry) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		return "", fmt.Errorf("hashing password failed: %w", err)
	}
	return string(hash), nil
}
