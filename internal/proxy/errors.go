package proxy

import "errors"

// ErrUpstreamUnavailable wraps every failure to reach a per-user backend.
// It is never written to the client; the gateway redirects to the error
// page instead.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")
