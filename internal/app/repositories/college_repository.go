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

// CollegeRepository handles database operations for colleges.
type CollegeRepository struct {
	db    *pgxpool.Pool
	store *query.Store[dto.CollegeRow]
}

// NewCollegeRepository creates a new college repository.
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{
		db:    db,
		store: query.NewStore(db, collegeDescriptor()),
	}
}

// List fetches a filtered, ordered page of colleges.
func (r *CollegeRepository) List(ctx context.Context, filters query.Filters, p query.Params) ([]dto.CollegeRow, error) {
	return r.store.List(ctx, filters, p)
}

// Count returns the number of colleges matching the filters.
func (r *CollegeRepository) Count(ctx context.Context, filters query.Filters) (int64, error) {
	return r.store.Count(ctx, filters)
}

// Search runs the two-phase free-text search over colleges.
func (r *CollegeRepository) Search(ctx context.Context, q string, p query.Params) (int64, []dto.CollegeRow, error) {
	return r.store.Search(ctx, q, p)
}

// Exists checks whether a college with the given code exists.
func (r *CollegeRepository) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM colleges WHERE college_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking college existence: %w", err)
	}
	return exists, nil
}

// HasPrograms checks whether any program references the college.
func (r *CollegeRepository) HasPrograms(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM programs WHERE college_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking college programs: %w", err)
	}
	return exists, nil
}

// Insert creates a new college. A primary-key race with a concurrent
// create surfaces as ErrAlreadyExists.
func (r *CollegeRepository) Insert(ctx context.Context, college *models.College) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO colleges (college_code, college_name) VALUES ($1, $2)`,
		college.Code, college.Name)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyExists
		}
		return fmt.Errorf("inserting college: %w", err)
	}
	return nil
}

// UpdateName renames a college.
func (r *CollegeRepository) UpdateName(ctx context.Context, code, name string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE colleges SET college_name = $1 WHERE college_code = $2`, name, code)
	if err != nil {
		return fmt.Errorf("updating college: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a college by code.
func (r *CollegeRepository) Delete(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM colleges WHERE college_code = $1`, code)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("deleting college: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
