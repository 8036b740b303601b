// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by a session token.
type SessionClaims struct {
	Username string `json:"username"`
	Index    int    `json:"index"`

	jwt.RegisteredClaims
}

// Session is the identity resolved from a valid session token.
type Session struct {
	Username string
	Index    int
}

// Token is a freshly signed session token.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string

	// MaxAge is the token lifetime in whole seconds, suitable for a
	// cookie's Max-Age attribute.
	MaxAge int
}
