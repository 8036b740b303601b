package service

import (
	"context"

	"github.com/MKhiriev/go-sync-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/instance_manager_mock.go -package=mock -exclude_interfaces=UserRegistry,SessionService

// UserRegistry is the authoritative view of registered users. It owns
// credential hashing and notifies the InstanceManager when users come and go.
type UserRegistry interface {
	// Register adds the very first user. It fails with ErrRegistrationClosed
	// once anyone is registered.
	Register(ctx context.Context, username, password string) (models.User, error)
	AddUser(ctx context.Context, username, password string, isAdmin bool) (models.User, error)
	// Authenticate never tells an unknown user apart from a wrong password;
	// both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	PromoteToAdmin(ctx context.Context, username string) error
	UpdatePassword(ctx context.Context, username, newPassword string) error
	RemoveUser(ctx context.Context, username string) error
	GetUser(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	IsRegistrationOpen(ctx context.Context) (bool, error)
	Reload(ctx context.Context) error

	// StartAllInstances brings every registered user's instance up to date.
	StartAllInstances(ctx context.Context) error
	// StopAllInstances stops every registered user's containers.
	StopAllInstances(ctx context.Context) error
	// Wait blocks until background instance starts have finished.
	Wait()
}

// SessionService issues and verifies session tokens.
type SessionService interface {
	CreateSession(ctx context.Context, user models.User) (models.Token, error)
	// RefreshSession re-issues a token for an already verified session.
	RefreshSession(ctx context.Context, session models.Session) (models.Token, error)
	ParseSession(ctx context.Context, tokenString string) (models.Session, error)
}

// InstanceManager drives the per-user container instances.
type InstanceManager interface {
	StartInstance(ctx context.Context, username string, index int) error
	// EnsureInstance starts the instance and runs the reconcile/restart
	// cycle only when its configuration has drifted.
	EnsureInstance(ctx context.Context, username string, index int) error
	NeedsUpdate(ctx context.Context, username string, index int) (bool, error)
	StopInstance(ctx context.Context, username string) error
	RemoveInstanceAndData(ctx context.Context, username string) error
}
