package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jmcabral/registra/internal/app/models"
	"github.com/jmcabral/registra/internal/app/models/dto"
	"github.com/jmcabral/registra/internal/pkg/apperrors"
)

type stubValidator struct {
	sessions map[string]*models.Session
}

func (s *stubValidator) Validate(ctx context.Context, sessionID string) (*models.Session, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return session, nil
}

func gatedRouter(auth *SessionAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/colleges", auth.RequireSession(), func(c *gin.Context) {
		session, ok := CurrentSession(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": session.Username})
	})
	return router
}

func TestRequireSession(t *testing.T) {
	auth := NewSessionAuth(&stubValidator{sessions: map[string]*models.Session{
		"good": {ID: "good", Username: "admin"},
	}})
	router := gatedRouter(auth)

	tests := []struct {
		name       string
		cookie     string
		wantStatus int
	}{
		{name: "valid session", cookie: "good", wantStatus: http.StatusOK},
		{name: "unknown session", cookie: "bad", wantStatus: http.StatusUnauthorized},
		{name: "no cookie", cookie: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/colleges", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tc.cookie})
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantStatus == http.StatusUnauthorized {
				var resp dto.MutationResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decoding response: %v", err)
				}
				if resp.Success || resp.Message != "Authentication required" {
					t.Errorf("body = %+v, want {false, Authentication required}", resp)
				}
			}
		})
	}
}

func TestResolveWritesNothing(t *testing.T) {
	auth := NewSessionAuth(&stubValidator{sessions: map[string]*models.Session{}})

	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/student-information", nil)
	c.Request.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})

	if _, ok := auth.Resolve(c); ok {
		t.Error("Resolve() = true for unknown session")
	}
	if rec.Body.Len() != 0 {
		t.Errorf("Resolve() wrote a response body: %q", rec.Body.String())
	}
}
