package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmcabral/registra/internal/app/models"
	"github.com/jmcabral/registra/internal/app/models/dto"
	"github.com/jmcabral/registra/internal/middleware"
)

// AuthService is the service surface the auth controller needs.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthController handles login and logout.
type AuthController struct {
	service      AuthService
	cookieMaxAge int
	cookieSecure bool
}

// NewAuthController creates a new AuthController. cookieMaxAge is the
// session cookie lifetime in seconds.
func NewAuthController(service AuthService, cookieMaxAge int, cookieSecure bool) *AuthController {
	return &AuthController{
		service:      service,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

// Login handles POST /api/login.
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Success: false, Message: "Missing credentials"})
		return
	}

	session, err := ctl.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, session.ID, ctl.cookieMaxAge, "/", "", ctl.cookieSecure, true)
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Message: "Login successful"})
}

// Logout handles POST /api/logout.
func (ctl *AuthController) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(middleware.SessionCookie); err == nil && sessionID != "" {
		if err := ctl.service.Logout(c.Request.Context(), sessionID); err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", ctl.cookieSecure, true)
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Message: "Logged out"})
}
