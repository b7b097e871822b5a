package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jmcabral/registra/internal/app/models"
	"github.com/jmcabral/registra/internal/pkg/apperrors"
	"github.com/jmcabral/registra/internal/pkg/auth"
)

// UserStore is the user lookup the auth service needs.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// SessionStore is the session persistence the auth service needs.
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) error
}

// AuthService manages login sessions. Unknown users and wrong passwords
// are indistinguishable to the caller.
type AuthService struct {
	users      UserStore
	sessions   SessionStore
	sessionTTL time.Duration
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(users UserStore, sessions SessionStore, sessionTTL time.Duration, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Login verifies the credentials and opens a new session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Opportunistic cleanup; expired sessions are already treated as absent.
	if err := s.sessions.DeleteExpired(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to purge expired sessions")
	}

	now := time.Now()
	session := &models.Session{
		ID:        uuid.NewString(),
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout ends the session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Validate resolves a session cookie value to a live session. Expired
// sessions count as not found.
func (s *AuthService) Validate(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, apperrors.ErrSessionNotFound
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, apperrors.ErrSessionNotFound
	}
	return session, nil
}
