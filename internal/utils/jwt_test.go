package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-sync-hub/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSession = models.Session{Username: "alice", Index: 3}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testSession, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, 3600, token.MaxAge)

	claims := &models.SessionClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token.SignedString, claims)
	require.NoError(t, err)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, 3, claims.Index)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		session  models.Session
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testSession, time.Hour, "key"},
		{"zero duration", "iss", testSession, 0, "key"},
		{"empty key", "iss", testSession, time.Hour, ""},
		{"empty username", "iss", models.Session{Index: 3}, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.session, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testSession, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	session, err := ValidateAndParseJWTToken(token.SignedString, "secret-key", "test-issuer")
	require.NoError(t, err)
	assert.Equal(t, testSession, session)
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testSession, time.Hour, "correct-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "wrong-key", "test-issuer")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testSession, -time.Second, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "key", "test-issuer")
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired), "got %v", err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("real-issuer", testSession, time.Hour, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "key", "fake-issuer")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := &models.SessionClaims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_SubjectMismatch(t *testing.T) {
	claims := &models.SessionClaims{
		Username: "alice",
		Index:    3,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   "mallory",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss")
	assert.Error(t, err)
}
