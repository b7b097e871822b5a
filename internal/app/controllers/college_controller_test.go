package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jmcabral/registra/internal/app/models/dto"
	"github.com/jmcabral/registra/internal/app/query"
	"github.com/jmcabral/registra/internal/pkg/apperrors"
)

type stubCollegeService struct {
	listResp *dto.ListResponse
	err      error
}

func (s *stubCollegeService) List(ctx context.Context, filters query.Filters, p query.Params) (*dto.ListResponse, error) {
	return s.listResp, s.err
}

func (s *stubCollegeService) Search(ctx context.Context, q string, p query.Params) (*dto.ListResponse, error) {
	return s.listResp, s.err
}

func (s *stubCollegeService) Add(ctx context.Context, req dto.AddCollegeRequest) error {
	return s.err
}

func (s *stubCollegeService) Update(ctx context.Context, req dto.UpdateCollegeRequest) error {
	return s.err
}

func (s *stubCollegeService) Delete(ctx context.Context, req dto.DeleteCollegeRequest) error {
	return s.err
}

func collegeTestRouter(svc CollegeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctl := NewCollegeController(svc)
	router.GET("/api/colleges", ctl.List)
	router.GET("/api/colleges/search", ctl.Search)
	router.POST("/api/colleges/add", ctl.Add)
	router.PUT("/api/colleges/update", ctl.Update)
	router.DELETE("/api/colleges/delete", ctl.Delete)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeMutation(t *testing.T, rec *httptest.ResponseRecorder) dto.MutationResponse {
	t.Helper()
	var resp dto.MutationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return resp
}

func TestCollegeControllerAdd(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "created",
			body:       `{"college_code":"CCS","college_name":"College of Computer Studies"}`,
			wantStatus: http.StatusCreated,
			wantMsg:    "College added successfully.",
		},
		{
			name:       "malformed body",
			body:       `{"college_code":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request body.",
		},
		{
			name:       "business error",
			body:       `{"college_code":"CCS","college_name":"College of Computer Studies"}`,
			svcErr:     apperrors.NewAlreadyExistsError("College code already exists."),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "College code already exists.",
		},
		{
			name:       "internal error",
			body:       `{"college_code":"CCS","college_name":"College of Computer Studies"}`,
			svcErr:     context.DeadlineExceeded,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Database error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := collegeTestRouter(&stubCollegeService{err: tc.svcErr})
			rec := doJSON(t, router, http.MethodPost, "/api/colleges/add", tc.body)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			resp := decodeMutation(t, rec)
			if resp.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", resp.Message, tc.wantMsg)
			}
			if resp.Success != (tc.wantStatus < 300) {
				t.Errorf("success = %v with status %d", resp.Success, rec.Code)
			}
		})
	}
}

func TestCollegeControllerUpdateAndDelete(t *testing.T) {
	router := collegeTestRouter(&stubCollegeService{})

	rec := doJSON(t, router, http.MethodPut, "/api/colleges/update",
		`{"college_code":"CCS","new_college_name":"Renamed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, want 200", rec.Code)
	}
	if msg := decodeMutation(t, rec).Message; msg != "College updated successfully." {
		t.Errorf("update message = %q", msg)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/colleges/delete", `{"college_code":"CCS"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", rec.Code)
	}
	if msg := decodeMutation(t, rec).Message; msg != "College deleted successfully." {
		t.Errorf("delete message = %q", msg)
	}
}

func TestCollegeControllerList(t *testing.T) {
	svc := &stubCollegeService{listResp: &dto.ListResponse{
		Rows:       []dto.CollegeRow{{CollegeCode: "CCS", CollegeName: "College of Computer Studies"}},
		TotalCount: 1,
	}}
	router := collegeTestRouter(svc)

	rec := doJSON(t, router, http.MethodGet, "/api/colleges?limit=10", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Rows       []dto.CollegeRow `json:"rows"`
		TotalCount int64            `json:"totalCount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.TotalCount != 1 || len(resp.Rows) != 1 {
		t.Errorf("got %d rows, totalCount %d", len(resp.Rows), resp.TotalCount)
	}
	if resp.Rows[0].CollegeCode != "CCS" {
		t.Errorf("row code = %q, want CCS", resp.Rows[0].CollegeCode)
	}
}
