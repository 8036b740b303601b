package compose

import "errors"

var (
	// ErrCommandFailed is returned when the orchestration command exits
	// with an error.
	ErrCommandFailed = errors.New("orchestration command failed")

	// ErrEmptyCommand is returned by NewExecutor for a blank command line.
	ErrEmptyCommand = errors.New("orchestration command is empty")

	// ErrInvalidProject is returned when an instance directory name is not
	// usable as a compose project name.
	ErrInvalidProject = errors.New("invalid compose project name")
)
