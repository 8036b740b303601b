// Package validators checks API request bodies and bare usernames before
// they reach the registry. Every rule violation wraps ErrValidation so the
// HTTP layer can answer 400 with a readable message.
package validators

import "context"

// Validator validates a request body or a bare username.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
