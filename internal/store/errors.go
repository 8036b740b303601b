package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when the username is taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no user has the given username.
	ErrUserNotFound = errors.New("user not found")

	// ErrCapacityExceeded is returned when the registry already holds the
	// maximum number of users.
	ErrCapacityExceeded = errors.New("maximum number of users reached")

	// ErrRegistryNotEmpty is returned by CreateFirstUser once any user
	// exists.
	ErrRegistryNotEmpty = errors.New("registry already has users")
)

// Document-level errors.
var (
	// ErrCorruptRegistry is returned when users.json exists but cannot be
	// parsed.
	ErrCorruptRegistry = errors.New("registry document is corrupt")

	// ErrPersistingRegistry is returned when the registry document could not
	// be written. The in-memory state is left as it was before the call.
	ErrPersistingRegistry = errors.New("failed to persist registry")
)
