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

// ProgramRepository handles database operations for programs.
type ProgramRepository struct {
	db    *pgxpool.Pool
	store *query.Store[dto.ProgramRow]
}

// NewProgramRepository creates a new program repository.
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db:    db,
		store: query.NewStore(db, programDescriptor()),
	}
}

// List fetches a filtered, ordered page of programs with their college names.
func (r *ProgramRepository) List(ctx context.Context, filters query.Filters, p query.Params) ([]dto.ProgramRow, error) {
	return r.store.List(ctx, filters, p)
}

// Count returns the number of programs matching the filters.
func (r *ProgramRepository) Count(ctx context.Context, filters query.Filters) (int64, error) {
	return r.store.Count(ctx, filters)
}

// Search runs the two-phase free-text search over programs.
func (r *ProgramRepository) Search(ctx context.Context, q string, p query.Params) (int64, []dto.ProgramRow, error) {
	return r.store.Search(ctx, q, p)
}

// Exists checks whether a program with the given code exists.
func (r *ProgramRepository) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM programs WHERE program_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking program existence: %w", err)
	}
	return exists, nil
}

// HasStudents checks whether any student is enrolled in the program.
func (r *ProgramRepository) HasStudents(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE program_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking program students: %w", err)
	}
	return exists, nil
}

// Insert creates a new program.
func (r *ProgramRepository) Insert(ctx context.Context, program *models.Program) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO programs (program_code, program_name, college_code) VALUES ($1, $2, $3)`,
		program.Code, program.Name, program.CollegeCode)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("inserting program: %w", err)
	}
	return nil
}

// Update applies the explicitly supplied field changes to a program.
func (r *ProgramRepository) Update(ctx context.Context, code string, req dto.UpdateProgramRequest) error {
	var upd partialUpdate
	SetPresent(&upd, "program_name", req.NewProgramName)
	SetPresent(&upd, "college_code", req.NewCollegeCode)
	if upd.Empty() {
		return apperrors.ErrNothingToUpdate
	}

	sql, args := upd.SQL("programs", "program_code", code)
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("updating program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a program by code.
func (r *ProgramRepository) Delete(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM programs WHERE program_code = $1`, code)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("deleting program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
