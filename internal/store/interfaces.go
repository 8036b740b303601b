package store

import (
	"context"

	"github.com/MKhiriev/go-sync-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists the user registry.
type UserRepository interface {
	// CreateUser stores user under the next free index and returns it as
	// stored. The first user of an empty registry is always an admin.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// CreateFirstUser is CreateUser that succeeds only while the registry
	// is empty and fails with ErrRegistryNotEmpty otherwise. The check and
	// the write are atomic.
	CreateFirstUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// UpdateUser replaces the record with the same username. Index is
	// never changed.
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, username string) error
	// ListUsers returns every user ordered by index.
	ListUsers(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (int, error)
	// Reload drops the cache and re-reads the document from disk.
	Reload(ctx context.Context) error
}
