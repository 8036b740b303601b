package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrRegistrationClosed = errors.New("registration is closed")
	ErrNotAdmin           = errors.New("admin privileges required")
	ErrSelfRemoval        = errors.New("cannot remove yourself")

	ErrInstanceTeardown = errors.New("instance teardown failed")
	ErrInstanceBoot     = errors.New("some instances failed to start")
)
