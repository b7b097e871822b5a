package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jmcabral/registra/internal/app/models"
	"github.com/jmcabral/registra/internal/app/models/dto"
	"github.com/jmcabral/registra/internal/app/query"
	"github.com/jmcabral/registra/internal/pkg/apperrors"
)

type fakeCollegeStore struct {
	existing    map[string]bool
	hasPrograms map[string]bool

	rows  []dto.CollegeRow
	total int64

	inserted []models.College
	updated  map[string]string
	deleted  []string
}

func newFakeCollegeStore() *fakeCollegeStore {
	return &fakeCollegeStore{
		existing:    map[string]bool{},
		hasPrograms: map[string]bool{},
		updated:     map[string]string{},
	}
}

func (f *fakeCollegeStore) List(ctx context.Context, filters query.Filters, p query.Params) ([]dto.CollegeRow, error) {
	return f.rows, nil
}

func (f *fakeCollegeStore) Count(ctx context.Context, filters query.Filters) (int64, error) {
	return f.total, nil
}

func (f *fakeCollegeStore) Search(ctx context.Context, q string, p query.Params) (int64, []dto.CollegeRow, error) {
	return f.total, f.rows, nil
}

func (f *fakeCollegeStore) Exists(ctx context.Context, code string) (bool, error) {
	return f.existing[code], nil
}

func (f *fakeCollegeStore) HasPrograms(ctx context.Context, code string) (bool, error) {
	return f.hasPrograms[code], nil
}

func (f *fakeCollegeStore) Insert(ctx context.Context, college *models.College) error {
	f.inserted = append(f.inserted, *college)
	return nil
}

func (f *fakeCollegeStore) UpdateName(ctx context.Context, code, name string) error {
	if !f.existing[code] {
		return apperrors.ErrNotFound
	}
	f.updated[code] = name
	return nil
}

func (f *fakeCollegeStore) Delete(ctx context.Context, code string) error {
	if !f.existing[code] {
		return apperrors.ErrNotFound
	}
	f.deleted = append(f.deleted, code)
	return nil
}

func TestCollegeServiceAdd(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.AddCollegeRequest
		existing []string
		wantErr  error
		wantMsg  string
	}{
		{
			name: "created",
			req:  dto.AddCollegeRequest{CollegeCode: "CCS", CollegeName: "College of Computer Studies"},
		},
		{
			name:    "missing code",
			req:     dto.AddCollegeRequest{CollegeName: "College of Computer Studies"},
			wantErr: apperrors.ErrValidation,
			wantMsg: "College code and name are required.",
		},
		{
			name:    "missing name",
			req:     dto.AddCollegeRequest{CollegeCode: "CCS"},
			wantErr: apperrors.ErrValidation,
			wantMsg: "College code and name are required.",
		},
		{
			name:     "duplicate code",
			req:      dto.AddCollegeRequest{CollegeCode: "CCS", CollegeName: "College of Computer Studies"},
			existing: []string{"CCS"},
			wantErr:  apperrors.ErrAlreadyExists,
			wantMsg:  "College code already exists.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeCollegeStore()
			for _, code := range tc.existing {
				store.existing[code] = true
			}
			svc := NewCollegeService(store)

			err := svc.Add(context.Background(), tc.req)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Add() error = %v, want nil", err)
				}
				if len(store.inserted) != 1 {
					t.Fatalf("inserted %d colleges, want 1", len(store.inserted))
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Add() error = %v, want %v", err, tc.wantErr)
			}
			if err.Error() != tc.wantMsg {
				t.Errorf("Add() message = %q, want %q", err.Error(), tc.wantMsg)
			}
			if len(store.inserted) != 0 {
				t.Errorf("inserted %d colleges, want none", len(store.inserted))
			}
		})
	}
}

func TestCollegeServiceAddInsertRace(t *testing.T) {
	store := newFakeCollegeStore()
	svc := NewCollegeService(&racingCollegeStore{fakeCollegeStore: store})

	err := svc.Add(context.Background(), dto.AddCollegeRequest{CollegeCode: "CCS", CollegeName: "College of Computer Studies"})
	if !errors.Is(err, apperrors.ErrAlreadyExists) {
		t.Fatalf("Add() error = %v, want %v", err, apperrors.ErrAlreadyExists)
	}
	if err.Error() != "College code already exists." {
		t.Errorf("Add() message = %q", err.Error())
	}
}

// racingCollegeStore reports the code as free but fails the insert with a
// uniqueness error, as a concurrent create would.
type racingCollegeStore struct {
	*fakeCollegeStore
}

func (r *racingCollegeStore) Insert(ctx context.Context, college *models.College) error {
	return apperrors.ErrAlreadyExists
}

func TestCollegeServiceUpdate(t *testing.T) {
	name := "College of Engineering"
	empty := "  "

	tests := []struct {
		name    string
		req     dto.UpdateCollegeRequest
		wantErr error
		wantMsg string
	}{
		{
			name: "renamed",
			req:  dto.UpdateCollegeRequest{CollegeCode: "COE", NewCollegeName: &name},
		},
		{
			name:    "no new name supplied",
			req:     dto.UpdateCollegeRequest{CollegeCode: "COE"},
			wantErr: apperrors.ErrNothingToUpdate,
			wantMsg: "No fields to update.",
		},
		{
			name:    "explicit empty name",
			req:     dto.UpdateCollegeRequest{CollegeCode: "COE", NewCollegeName: &empty},
			wantErr: apperrors.ErrValidation,
			wantMsg: "College name cannot be empty.",
		},
		{
			name:    "unknown college",
			req:     dto.UpdateCollegeRequest{CollegeCode: "NOPE", NewCollegeName: &name},
			wantErr: apperrors.ErrNotFound,
			wantMsg: "College not found.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeCollegeStore()
			store.existing["COE"] = true
			svc := NewCollegeService(store)

			err := svc.Update(context.Background(), tc.req)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Update() error = %v, want nil", err)
				}
				if store.updated["COE"] != name {
					t.Errorf("updated name = %q, want %q", store.updated["COE"], name)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Update() error = %v, want %v", err, tc.wantErr)
			}
			if err.Error() != tc.wantMsg {
				t.Errorf("Update() message = %q, want %q", err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestCollegeServiceDelete(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		hasPrograms bool
		wantErr     error
		wantMsg     string
	}{
		{
			name: "deleted",
			code: "CCS",
		},
		{
			name:        "blocked by dependent programs",
			code:        "CCS",
			hasPrograms: true,
			wantErr:     apperrors.ErrConflict,
			wantMsg:     "Cannot delete college: There are programs under it.",
		},
		{
			name:    "unknown college",
			code:    "NOPE",
			wantErr: apperrors.ErrNotFound,
			wantMsg: "College not found.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeCollegeStore()
			store.existing["CCS"] = true
			store.hasPrograms["CCS"] = tc.hasPrograms
			svc := NewCollegeService(store)

			err := svc.Delete(context.Background(), dto.DeleteCollegeRequest{CollegeCode: tc.code})
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Delete() error = %v, want nil", err)
				}
				if len(store.deleted) != 1 || store.deleted[0] != tc.code {
					t.Errorf("deleted = %v, want [%s]", store.deleted, tc.code)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Delete() error = %v, want %v", err, tc.wantErr)
			}
			if err.Error() != tc.wantMsg {
				t.Errorf("Delete() message = %q, want %q", err.Error(), tc.wantMsg)
			}
			if len(store.deleted) != 0 {
				t.Errorf("deleted = %v, want none", store.deleted)
			}
		})
	}
}

func TestCollegeServiceListEmptyPage(t *testing.T) {
	store := newFakeCollegeStore()
	store.total = 42
	svc := NewCollegeService(store)

	resp, err := svc.List(context.Background(), nil, query.Params{Limit: 20, Offset: 100})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	rows, ok := resp.Rows.([]dto.CollegeRow)
	if !ok {
		t.Fatalf("List() rows type = %T", resp.Rows)
	}
	if rows == nil {
		t.Error("List() rows is nil, want empty slice")
	}
	if resp.TotalCount != 42 {
		t.Errorf("List() totalCount = %d, want 42", resp.TotalCount)
	}
}
