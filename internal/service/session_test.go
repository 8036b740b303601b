package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-sync-hub/internal/config"
	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(duration time.Duration) SessionService {
	return NewSessionService(config.App{
		SessionSecret: "test-secret",
		TokenIssuer:   "go-sync-hub",
		TokenDuration: duration,
	}, logger.Nop())
}

func TestSessionService_CreateAndParse(t *testing.T) {
	s := newTestSessionService(time.Hour)
	ctx := context.Background()

	token, err := s.CreateSession(ctx, models.User{Username: "alice", Index: 3, IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, 3600, token.MaxAge)

	session, err := s.ParseSession(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.Session{Username: "alice", Index: 3}, session)
}

func TestSessionService_Refresh(t *testing.T) {
	s := newTestSessionService(time.Minute)
	ctx := context.Background()

	token, err := s.RefreshSession(ctx, models.Session{Username: "bob", Index: 7})
	require.NoError(t, err)

	session, err := s.ParseSession(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, 7, session.Index)
}

func TestSessionService_ParseRejects(t *testing.T) {
	ctx := context.Background()
	good := newTestSessionService(time.Hour)
	token, err := good.CreateSession(ctx, models.User{Username: "alice", Index: 3})
	require.NoError(t, err)

	expired, err := newTestSessionService(-time.Minute).CreateSession(ctx, models.User{Username: "alice", Index: 3})
	require.NoError(t, err)

	otherKey := NewSessionService(config.App{
		SessionSecret: "other-secret",
		TokenIssuer:   "go-sync-hub",
		TokenDuration: time.Hour,
	}, logger.Nop())

	tests := []struct {
		name    string
		service SessionService
		token   string
	}{
		{"empty", good, ""},
		{"garbage", good, "garbage"},
		{"expired", good, expired.SignedString},
		{"wrong key", otherKey, token.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.service.ParseSession(ctx, tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestSessionService_CreateFailsWithoutSecret(t *testing.T) {
	s := NewSessionService(config.App{TokenIssuer: "iss", TokenDuration: time.Hour}, logger.Nop())

	_, err := s.CreateSession(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
