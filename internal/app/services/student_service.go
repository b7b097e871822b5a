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

// StudentStore is the repository surface the student service needs.
type StudentStore interface {
	List(ctx context.Context, filters query.Filters, p query.Params) ([]dto.StudentRow, error)
	Count(ctx context.Context, filters query.Filters) (int64, error)
	Search(ctx context.Context, q string, p query.Params) (int64, []dto.StudentRow, error)
	Exists(ctx context.Context, idNumber string) (bool, error)
	Insert(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, idNumber string, req dto.UpdateStudentRequest) error
	Delete(ctx context.Context, idNumber string) error
}

// ProgramChecker is the program lookup the student service needs for
// referential checks.
type ProgramChecker interface {
	Exists(ctx context.Context, code string) (bool, error)
}

// StudentService enforces the business rules around students.
type StudentService struct {
	students StudentStore
	programs ProgramChecker
}

// NewStudentService creates a new student service.
func NewStudentService(students StudentStore, programs ProgramChecker) *StudentService {
	return &StudentService{students: students, programs: programs}
}

// List returns a page of students plus the unpaginated total.
func (s *StudentService) List(ctx context.Context, filters query.Filters, p query.Params) (*dto.ListResponse, error) {
	rows, err := s.students.List(ctx, filters, p)
	if err != nil {
		return nil, err
	}
	count, err := s.students.Count(ctx, filters)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.StudentRow{}
	}
	return &dto.ListResponse{Rows: rows, TotalCount: count}, nil
}

// Search returns a page of free-text matches plus the matching total.
func (s *StudentService) Search(ctx context.Context, q string, p query.Params) (*dto.ListResponse, error) {
	count, rows, err := s.students.Search(ctx, q, p)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.StudentRow{}
	}
	return &dto.ListResponse{Rows: rows, TotalCount: count}, nil
}

// Add creates a new student enrolled in an existing program.
func (s *StudentService) Add(ctx context.Context, req dto.AddStudentRequest) error {
	idNumber := strings.TrimSpace(req.IDNumber)
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	gender := strings.TrimSpace(req.Gender)
	programCode := strings.TrimSpace(req.ProgramCode)
	if idNumber == "" || firstName == "" || lastName == "" || gender == "" || programCode == "" || req.YearLevel == 0 {
		return apperrors.NewValidationError("All required fields must be provided.")
	}
	if req.YearLevel < 1 {
		return apperrors.NewValidationError("Year level must be a positive number.")
	}

	programExists, err := s.programs.Exists(ctx, programCode)
	if err != nil {
		return err
	}
	if !programExists {
		return apperrors.NewNotFoundError(fmt.Sprintf("Program with code '%s' not found.", programCode))
	}

	exists, err := s.students.Exists(ctx, idNumber)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewAlreadyExistsError(fmt.Sprintf("Student with ID '%s' already exists.", idNumber))
	}

	student := &models.Student{
		IDNumber:    idNumber,
		FirstName:   firstName,
		LastName:    lastName,
		Gender:      gender,
		YearLevel:   req.YearLevel,
		ProgramCode: programCode,
	}
	if middle := strings.TrimSpace(req.MiddleName); middle != "" {
		student.MiddleName = &middle
	}

	err = s.students.Insert(ctx, student)
	if errors.Is(err, apperrors.ErrAlreadyExists) {
		return apperrors.NewAlreadyExistsError(fmt.Sprintf("Student with ID '%s' already exists.", idNumber))
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError(fmt.Sprintf("Program with code '%s' not found.", programCode))
	}
	return err
}

// Update applies the explicitly supplied changes to a student. A field is
// supplied when present in the request body, regardless of its value.
func (s *StudentService) Update(ctx context.Context, req dto.UpdateStudentRequest) error {
	idNumber := strings.TrimSpace(req.IDNumber)
	if idNumber == "" {
		return apperrors.NewValidationError("id_number is required.")
	}

	exists, err := s.students.Exists(ctx, idNumber)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFoundError("Student not found.")
	}

	if req.NewYearLevel != nil && *req.NewYearLevel < 1 {
		return apperrors.NewValidationError("Year level must be a positive number.")
	}
	if req.NewProgramCode != nil {
		programExists, err := s.programs.Exists(ctx, strings.TrimSpace(*req.NewProgramCode))
		if err != nil {
			return err
		}
		if !programExists {
			return apperrors.NewNotFoundError("Invalid program_code: does not exist.")
		}
	}

	err = s.students.Update(ctx, idNumber, req)
	if errors.Is(err, apperrors.ErrNothingToUpdate) {
		return &apperrors.CustomError{Err: apperrors.ErrNothingToUpdate, Message: "No fields to update."}
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError("Student not found.")
	}
	return err
}

// Delete removes a student record.
func (s *StudentService) Delete(ctx context.Context, req dto.DeleteStudentRequest) error {
	idNumber := strings.TrimSpace(req.IDNumber)
	if idNumber == "" {
		return apperrors.NewValidationError("Student ID number is required.")
	}

	err := s.students.Delete(ctx, idNumber)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError("Student not found.")
	}
	return err
}
