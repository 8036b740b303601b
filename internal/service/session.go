package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-hub/internal/config"
	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/internal/utils"
	"github.com/MKhiriev/go-sync-hub/models"
)

// sessionService is the concrete implementation of SessionService.
// Tokens are stateless HS256 JWTs carrying the username and index only; the
// admin flag is looked up in the registry on every request instead.
type sessionService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewSessionService constructs a SessionService from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewSessionService(cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		tokenSignKey:  cfg.SessionSecret,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateSession issues a token for an authenticated user.
func (s *sessionService) CreateSession(ctx context.Context, user models.User) (models.Token, error) {
	return s.RefreshSession(ctx, models.Session{Username: user.Username, Index: user.Index})
}

// RefreshSession issues a fresh token with a full lifetime.
func (s *sessionService) RefreshSession(ctx context.Context, session models.Session) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, session, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", session.Username).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseSession validates a raw token. Any validation failure (expired,
// wrong issuer, malformed, bad signature) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (s *sessionService) ParseSession(ctx context.Context, tokenString string) (models.Session, error) {
	if tokenString == "" {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	return session, nil
}
