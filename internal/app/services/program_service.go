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

// ProgramStore is the repository surface the program service needs.
type ProgramStore interface {
	List(ctx context.Context, filters query.Filters, p query.Params) ([]dto.ProgramRow, error)
	Count(ctx context.Context, filters query.Filters) (int64, error)
	Search(ctx context.Context, q string, p query.Params) (int64, []dto.ProgramRow, error)
	Exists(ctx context.Context, code string) (bool, error)
	HasStudents(ctx context.Context, code string) (bool, error)
	Insert(ctx context.Context, program *models.Program) error
	Update(ctx context.Context, code string, req dto.UpdateProgramRequest) error
	Delete(ctx context.Context, code string) error
}

// CollegeChecker is the college lookup the program service needs for
// referential checks.
type CollegeChecker interface {
	Exists(ctx context.Context, code string) (bool, error)
}

// ProgramService enforces the business rules around programs.
type ProgramService struct {
	programs ProgramStore
	colleges CollegeChecker
}

// NewProgramService creates a new program service.
func NewProgramService(programs ProgramStore, colleges CollegeChecker) *ProgramService {
	return &ProgramService{programs: programs, colleges: colleges}
}

// List returns a page of programs plus the unpaginated total.
func (s *ProgramService) List(ctx context.Context, filters query.Filters, p query.Params) (*dto.ListResponse, error) {
	rows, err := s.programs.List(ctx, filters, p)
	if err != nil {
		return nil, err
	}
	count, err := s.programs.Count(ctx, filters)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.ProgramRow{}
	}
	return &dto.ListResponse{Rows: rows, TotalCount: count}, nil
}

// Search returns a page of free-text matches plus the matching total.
func (s *ProgramService) Search(ctx context.Context, q string, p query.Params) (*dto.ListResponse, error) {
	count, rows, err := s.programs.Search(ctx, q, p)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.ProgramRow{}
	}
	return &dto.ListResponse{Rows: rows, TotalCount: count}, nil
}

// Add creates a new program under an existing college.
func (s *ProgramService) Add(ctx context.Context, req dto.AddProgramRequest) error {
	code := strings.TrimSpace(req.ProgramCode)
	name := strings.TrimSpace(req.ProgramName)
	collegeCode := strings.TrimSpace(req.CollegeCode)
	if code == "" || name == "" || collegeCode == "" {
		return apperrors.NewValidationError("Program code, name, and college code are required.")
	}

	collegeExists, err := s.colleges.Exists(ctx, collegeCode)
	if err != nil {
		return err
	}
	if !collegeExists {
		return apperrors.NewNotFoundError(fmt.Sprintf("College with code '%s' not found.", collegeCode))
	}

	exists, err := s.programs.Exists(ctx, code)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewAlreadyExistsError(fmt.Sprintf("Program with code '%s' already exists.", code))
	}

	err = s.programs.Insert(ctx, &models.Program{Code: code, Name: name, CollegeCode: collegeCode})
	if errors.Is(err, apperrors.ErrAlreadyExists) {
		return apperrors.NewAlreadyExistsError(fmt.Sprintf("Program with code '%s' already exists.", code))
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError(fmt.Sprintf("College with code '%s' not found.", collegeCode))
	}
	return err
}

// Update applies the explicitly supplied changes to a program, checking
// the new college when the reference is being moved.
func (s *ProgramService) Update(ctx context.Context, req dto.UpdateProgramRequest) error {
	code := strings.TrimSpace(req.ProgramCode)
	if code == "" {
		return apperrors.NewValidationError("Program code is required.")
	}

	exists, err := s.programs.Exists(ctx, code)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFoundError("Program not found.")
	}

	if req.NewProgramName != nil && strings.TrimSpace(*req.NewProgramName) == "" {
		return apperrors.NewValidationError("Program name cannot be empty.")
	}
	if req.NewCollegeCode != nil {
		collegeExists, err := s.colleges.Exists(ctx, strings.TrimSpace(*req.NewCollegeCode))
		if err != nil {
			return err
		}
		if !collegeExists {
			return apperrors.NewNotFoundError("College code does not exist.")
		}
	}

	err = s.programs.Update(ctx, code, req)
	if errors.Is(err, apperrors.ErrNothingToUpdate) {
		return &apperrors.CustomError{Err: apperrors.ErrNothingToUpdate, Message: "No fields to update."}
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError("Program not found.")
	}
	return err
}

// Delete removes a program, refusing while students are enrolled in it.
func (s *ProgramService) Delete(ctx context.Context, req dto.DeleteProgramRequest) error {
	code := strings.TrimSpace(req.ProgramCode)
	if code == "" {
		return apperrors.NewValidationError("Program code is required.")
	}

	exists, err := s.programs.Exists(ctx, code)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFoundError("Program not found.")
	}

	hasStudents, err := s.programs.HasStudents(ctx, code)
	if err != nil {
		return err
	}
	if hasStudents {
		return apperrors.NewConflictError("Cannot delete program: There are students enrolled in it.")
	}

	err = s.programs.Delete(ctx, code)
	if errors.Is(err, apperrors.ErrConflict) {
		return apperrors.NewConflictError("Cannot delete program: There are students enrolled in it.")
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError("Program not found.")
	}
	return err
}
