package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmcabral/registra/internal/app/models"
	"github.com/jmcabral/registra/internal/app/models/dto"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "registra_session"

// sessionKey is the context key the resolved session is stored under.
const sessionKey = "session"

// SessionValidator resolves a session cookie value to a live session.
type SessionValidator interface {
	Validate(ctx context.Context, sessionID string) (*models.Session, error)
}

// SessionAuth gates requests on a valid login session.
type SessionAuth struct {
	sessions SessionValidator
}

// NewSessionAuth creates the session middleware.
func NewSessionAuth(sessions SessionValidator) *SessionAuth {
	return &SessionAuth{sessions: sessions}
}

// RequireSession rejects requests without a valid session cookie. The
// message is uniform regardless of why validation failed.
func (m *SessionAuth) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := m.Resolve(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MutationResponse{
				Success: false,
				Message: "Authentication required",
			})
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// Resolve looks up the request's session cookie without writing a
// response. Used by both the API gate and the SPA route guard.
func (m *SessionAuth) Resolve(c *gin.Context) (*models.Session, bool) {
	sessionID, err := c.Cookie(SessionCookie)
	if err != nil || sessionID == "" {
		return nil, false
	}
	session, err := m.sessions.Validate(c.Request.Context(), sessionID)
	if err != nil {
		return nil, false
	}
	return session, true
}

// CurrentSession returns the session set by RequireSession.
func CurrentSession(c *gin.Context) (*models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	session, ok := v.(*models.Session)
	return session, ok
}
