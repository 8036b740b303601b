package adapter

import "errors"

var (
	ErrUnreachable      = errors.New("instance unreachable")
	ErrUnhealthy        = errors.New("instance reported unhealthy status")
	ErrUnexpectedStatus = errors.New("unexpected http status")
	ErrInvalidIndex     = errors.New("invalid instance index")
)
