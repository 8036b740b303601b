package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-hub/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 session token.
//
// The token carries the username and index of the session plus the
// standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the username
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// The role is deliberately not part of the token; it is looked up on every
// request instead.
//
// Returns an error if issuer, signKey or the username is empty or
// tokenDuration is zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-sync-hub", session, time.Hour, "secret")
func GenerateJWTToken(issuer string, session models.Session, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || session.Username == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.SessionClaims{
		Username: session.Username,
		Index:    session.Index,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   session.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, MaxAge: int(tokenDuration / time.Second)}, nil
}

// ValidateAndParseJWTToken validates a session token and extracts the
// session.
//
// Validation includes:
//   - HS256 as the only accepted signing method
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Username presence, matching the subject
//
// Example usage:
//
//	session, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "go-sync-hub")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Session, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Username == "" {
		return models.Session{}, errors.New("empty username in token")
	}
	if claims.Subject != claims.Username {
		return models.Session{}, errors.New("token subject does not match username")
	}

	return models.Session{Username: claims.Username, Index: claims.Index}, nil
}
