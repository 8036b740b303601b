package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation wraps every rule violation.
	ErrValidation = errors.New("validation failed")
)
