package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmcabral/registra/internal/app/models"
	"github.com/jmcabral/registra/internal/app/models/dto"
	"github.com/jmcabral/registra/internal/app/query"
	"github.com/jmcabral/registra/internal/pkg/apperrors"
	"github.com/jmcabral/registra/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students.
type StudentRepository struct {
	db    *pgxpool.Pool
	store *query.Store[dto.StudentRow]
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db:    db,
		store: query.NewStore(db, studentDescriptor()),
	}
}

// List fetches a filtered, ordered page of students with their program and
// college names.
func (r *StudentRepository) List(ctx context.Context, filters query.Filters, p query.Params) ([]dto.StudentRow, error) {
	return r.store.List(ctx, filters, p)
}

// Count returns the number of students matching the filters.
func (r *StudentRepository) Count(ctx context.Context, filters query.Filters) (int64, error) {
	return r.store.Count(ctx, filters)
}

// Search runs the two-phase free-text search over students. A single-digit
// query of 1-4 ranks exact year-level matches first.
func (r *StudentRepository) Search(ctx context.Context, q string, p query.Params) (int64, []dto.StudentRow, error) {
	return r.store.Search(ctx, q, p)
}

// Exists checks whether a student with the given ID number exists.
func (r *StudentRepository) Exists(ctx context.Context, idNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE id_number = $1)`, idNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking student existence: %w", err)
	}
	return exists, nil
}

// Insert creates a new student record.
func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO students
			(id_number, first_name, middle_name, last_name, gender, year_level, program_code, profile_image_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		student.IDNumber, student.FirstName, student.MiddleName, student.LastName,
		student.Gender, student.YearLevel, student.ProgramCode, student.ProfileImagePath)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("inserting student: %w", err)
	}
	return nil
}

// Update applies the explicitly supplied field changes to a student.
// Omitted fields are left untouched; explicitly empty values are written.
func (r *StudentRepository) Update(ctx context.Context, idNumber string, req dto.UpdateStudentRequest) error {
	var upd partialUpdate
	SetPresent(&upd, "first_name", req.NewFirstName)
	SetPresent(&upd, "middle_name", req.NewMiddleName)
	SetPresent(&upd, "last_name", req.NewLastName)
	SetPresent(&upd, "gender", req.NewGender)
	SetPresent(&upd, "year_level", req.NewYearLevel)
	SetPresent(&upd, "program_code", req.NewProgramCode)
	if upd.Empty() {
		return apperrors.ErrNothingToUpdate
	}

	sql, args := upd.SQL("students", "id_number", idNumber)
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a student by ID number.
func (r *StudentRepository) Delete(ctx context.Context, idNumber string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id_number = $1`, idNumber)
	if err != nil {
		return fmt.Errorf("deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
