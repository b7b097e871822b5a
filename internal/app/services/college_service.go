package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmcabral/registra/internal/app/models"
	"github.com/jmcabral/registra/internal/app/models/dto"
	"github.com/jmcabral/registra/internal/app/query"
	"github.com/jmcabral/registra/internal/pkg/apperrors"
)

// CollegeStore is the repository surface the college service needs.
type CollegeStore interface {
	List(ctx context.Context, filters query.Filters, p query.Params) ([]dto.CollegeRow, error)
	Count(ctx context.Context, filters query.Filters) (int64, error)
	Search(ctx context.Context, q string, p query.Params) (int64, []dto.CollegeRow, error)
	Exists(ctx context.Context, code string) (bool, error)
	HasPrograms(ctx context.Context, code string) (bool, error)
	Insert(ctx context.Context, college *models.College) error
	UpdateName(ctx context.Context, code, name string) error
	Delete(ctx context.Context, code string) error
}

// CollegeService enforces the business rules around colleges.
type CollegeService struct {
	colleges CollegeStore
}

// NewCollegeService creates a new college service.
func NewCollegeService(colleges CollegeStore) *CollegeService {
	return &CollegeService{colleges: colleges}
}

// List returns a page of colleges plus the unpaginated total.
func (s *CollegeService) List(ctx context.Context, filters query.Filters, p query.Params) (*dto.ListResponse, error) {
	rows, err := s.colleges.List(ctx, filters, p)
	if err != nil {
		return nil, err
	}
	count, err := s.colleges.Count(ctx, filters)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.CollegeRow{}
	}
	return &dto.ListResponse{Rows: rows, TotalCount: count}, nil
}

// Search returns a page of free-text matches plus the matching total.
func (s *CollegeService) Search(ctx context.Context, q string, p query.Params) (*dto.ListResponse, error) {
	count, rows, err := s.colleges.Search(ctx, q, p)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.CollegeRow{}
	}
	return &dto.ListResponse{Rows: rows, TotalCount: count}, nil
}

// Add creates a new college.
func (s *CollegeService) Add(ctx context.Context, req dto.AddCollegeRequest) error {
	code := strings.TrimSpace(req.CollegeCode)
	name := strings.TrimSpace(req.CollegeName)
	if code == "" || name == "" {
		return apperrors.NewValidationError("College code and name are required.")
	}

	exists, err := s.colleges.Exists(ctx, code)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewAlreadyExistsError("College code already exists.")
	}

	err = s.colleges.Insert(ctx, &models.College{Code: code, Name: name})
	if errors.Is(err, apperrors.ErrAlreadyExists) {
		// Lost the race to a concurrent create; same outcome for the caller.
		return apperrors.NewAlreadyExistsError("College code already exists.")
	}
	return err
}

// Update renames a college. The new name must be explicitly supplied.
func (s *CollegeService) Update(ctx context.Context, req dto.UpdateCollegeRequest) error {
	code := strings.TrimSpace(req.CollegeCode)
	if code == "" {
		return apperrors.NewValidationError("College code is required.")
	}
	if req.NewCollegeName == nil {
		return &apperrors.CustomError{Err: apperrors.ErrNothingToUpdate, Message: "No fields to update."}
	}
	name := strings.TrimSpace(*req.NewCollegeName)
	if name == "" {
		return apperrors.NewValidationError("College name cannot be empty.")
	}

	err := s.colleges.UpdateName(ctx, code, name)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError("College not found.")
	}
	return err
}

// Delete removes a college, refusing while programs still reference it.
func (s *CollegeService) Delete(ctx context.Context, req dto.DeleteCollegeRequest) error {
	code := strings.TrimSpace(req.CollegeCode)
	if code == "" {
		return apperrors.NewValidationError("College code is required.")
	}

	exists, err := s.colleges.Exists(ctx, code)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFoundError("College not found.")
	}

	hasPrograms, err := s.colleges.HasPrograms(ctx, code)
	if err != nil {
		return err
	}
	if hasPrograms {
		return apperrors.NewConflictError("Cannot delete college: There are programs under it.")
	}

	err = s.colleges.Delete(ctx, code)
	if errors.Is(err, apperrors.ErrConflict) {
		return apperrors.NewConflictError("Cannot delete college: There are programs under it.")
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError("College not found.")
	}
	if err != nil {
		return fmt.Errorf("deleting college %q: %w", code, err)
	}
	return nil
}
