// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMalformedJSON is returned when a request body cannot be decoded.
	ErrMalformedJSON = errors.New("malformed JSON body")

	// ErrMissingUsername is returned when an admin endpoint is called
	// without the ?username= query parameter.
	ErrMissingUsername = errors.New("username query parameter is required")
)
