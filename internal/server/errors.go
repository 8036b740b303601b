package server

import "errors"

// errNothingToServe is returned by NewServer when no HTTP handler or listen
// address was configured.
var errNothingToServe = errors.New("server: no HTTP handler or listen address configured")
