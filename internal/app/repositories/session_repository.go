package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmcabral/registra/internal/app/models"
	"github.com/jmcabral/registra/internal/pkg/apperrors"
)

// SessionRepository stores server-side login sessions.
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create persists a new session.
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sessions (id, username, created_at, expires_at) VALUES ($1, $2, $3, $4)`,
		session.ID, session.Username, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

// Get retrieves a session by its opaque ID. Returns ErrSessionNotFound
// when no such session exists.
func (r *SessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	err := r.db.QueryRow(ctx,
		`SELECT id, username, created_at, expires_at FROM sessions WHERE id = $1`, id).
		Scan(&session.ID, &session.Username, &session.CreatedAt, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("retrieving session: %w", err)
	}
	return &session, nil
}

// Delete removes a session, ending the login.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// DeleteExpired purges sessions past their expiry.
func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at < NOW()`)
	if err != nil {
		return fmt.Errorf("purging expired sessions: %w", err)
	}
	return nil
}
