package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmcabral/registra/internal/app/models/dto"
	"github.com/jmcabral/registra/internal/pkg/apperrors"
	"github.com/jmcabral/registra/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the API's {success, message}
// envelope. Expected business conditions become 400 with their message;
// authentication failures become 401; anything else is logged and
// surfaced as a generic 500 with no internal detail.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.IsBusinessError(err):
		c.JSON(http.StatusBadRequest, dto.MutationResponse{
			Success: false,
			Message: err.Error(),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.MutationResponse{
			Success: false,
			Message: "Invalid username or password",
		})
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.MutationResponse{
			Success: false,
			Message: "Database error",
		})
	}
}
