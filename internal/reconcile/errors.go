package reconcile

import "errors"

var (
	// ErrMalformedDocument is returned when a config document cannot be
	// parsed.
	ErrMalformedDocument = errors.New("malformed config document")

	// ErrSecretGeneration is returned when a missing file-browser secret
	// could not be generated.
	ErrSecretGeneration = errors.New("could not generate secret key")

	// ErrParamsEncryption is returned when middleware parameters could not
	// be encrypted.
	ErrParamsEncryption = errors.New("could not encrypt middleware params")
)
