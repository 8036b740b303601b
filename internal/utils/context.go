// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, session
// tokens and cookies, atomic file writes, HTTP response writing and HTTP
// client initialization.
package utils

import (
	"context"

	"github.com/MKhiriev/go-sync-hub/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the caller's [models.Session] in
// the context once the session cookie has been verified.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionCtxKey, session)
var SessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the verified session from the context.
//
// Returns the session and an ok flag:
//   - ok == true:  value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}
