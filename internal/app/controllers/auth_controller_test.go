package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jmcabral/registra/internal/app/models"
	"github.com/jmcabral/registra/internal/middleware"
	"github.com/jmcabral/registra/internal/pkg/apperrors"
)

type stubAuthService struct {
	session   *models.Session
	loginErr  error
	loggedOut []string
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.session, nil
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	s.loggedOut = append(s.loggedOut, sessionID)
	return nil
}

func authTestRouter(svc AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctl := NewAuthController(svc, 3600, false)
	router.POST("/api/login", ctl.Login)
	router.POST("/api/logout", ctl.Logout)
	return router
}

func TestAuthControllerLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		wantStatus int
		wantMsg    string
		wantCookie bool
	}{
		{
			name:       "success sets session cookie",
			body:       `{"username":"admin","password":"secret"}`,
			wantStatus: http.StatusOK,
			wantMsg:    "Login successful",
			wantCookie: true,
		},
		{
			name:       "missing credentials",
			body:       `{"username":"admin"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Missing credentials",
		},
		{
			name:       "invalid credentials",
			body:       `{"username":"admin","password":"wrong"}`,
			loginErr:   apperrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid username or password",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubAuthService{
				session:  &models.Session{ID: "session-id-1", Username: "admin"},
				loginErr: tc.loginErr,
			}
			router := authTestRouter(svc)
			rec := doJSON(t, router, http.MethodPost, "/api/login", tc.body)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if msg := decodeMutation(t, rec).Message; msg != tc.wantMsg {
				t.Errorf("message = %q, want %q", msg, tc.wantMsg)
			}

			var cookie *http.Cookie
			for _, c := range rec.Result().Cookies() {
				if c.Name == middleware.SessionCookie {
					cookie = c
				}
			}
			if !tc.wantCookie {
				if cookie != nil {
					t.Errorf("unexpected session cookie %q", cookie.Value)
				}
				return
			}
			if cookie == nil {
				t.Fatal("session cookie not set")
			}
			if cookie.Value != "session-id-1" {
				t.Errorf("cookie value = %q, want session-id-1", cookie.Value)
			}
			if !cookie.HttpOnly {
				t.Error("session cookie is not HttpOnly")
			}
		})
	}
}

func TestAuthControllerLogout(t *testing.T) {
	svc := &stubAuthService{}
	router := authTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "session-id-1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(svc.loggedOut) != 1 || svc.loggedOut[0] != "session-id-1" {
		t.Errorf("logged out sessions = %v, want [session-id-1]", svc.loggedOut)
	}

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			cleared = c
		}
	}
	if cleared == nil {
		t.Fatal("session cookie not cleared")
	}
	if cleared.Value != "" || cleared.MaxAge >= 0 {
		t.Errorf("cookie value = %q maxAge = %d, want empty and negative", cleared.Value, cleared.MaxAge)
	}
}

func TestAuthControllerLogoutWithoutCookie(t *testing.T) {
	svc := &stubAuthService{}
	router := authTestRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/api/logout", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(svc.loggedOut) != 0 {
		t.Errorf("logged out sessions = %v, want none", svc.loggedOut)
	}
	if !strings.Contains(rec.Body.String(), "Logged out") {
		t.Errorf("body = %q, want Logged out message", rec.Body.String())
	}
}
