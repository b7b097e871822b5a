package models

import "time"

// User is an administrative account that can log in to the backend.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Session is a server-side login session. The ID is the opaque value
// stored in the session cookie.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
