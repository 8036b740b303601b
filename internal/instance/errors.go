package instance

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigReconciliation is matched by every *ConfigError.
	ErrConfigReconciliation = errors.New("config reconciliation failed")

	// ErrConfigNeverAppeared is returned when a managed service did not
	// write its config file within the wait schedule.
	ErrConfigNeverAppeared = errors.New("config file never appeared")

	// ErrInvalidUsername is returned for usernames that cannot be used as a
	// directory name.
	ErrInvalidUsername = errors.New("username cannot be used as a directory name")
)

// ConfigError reports a config file that could not be waited for, read,
// reconciled or written.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrConfigReconciliation) true for any ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfigReconciliation
}
