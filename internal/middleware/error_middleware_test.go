package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jmcabral/registra/internal/app/models/dto"
	"github.com/jmcabral/registra/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation error",
			err:        apperrors.NewValidationError("College code and name are required."),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "College code and name are required.",
		},
		{
			name:       "conflict error",
			err:        apperrors.NewConflictError("Cannot delete program: There are students enrolled in it."),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Cannot delete program: There are students enrolled in it.",
		},
		{
			name:       "not found error",
			err:        apperrors.NewNotFoundError("Student not found."),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Student not found.",
		},
		{
			name:       "invalid credentials",
			err:        apperrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid username or password",
		},
		{
			name:       "unexpected error hides detail",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Database error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/colleges/add", nil)

			HandleAPIError(c, tc.err)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			var resp dto.MutationResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp.Success {
				t.Error("success = true, want false")
			}
			if resp.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", resp.Message, tc.wantMsg)
			}
		})
	}
}
