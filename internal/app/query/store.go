package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store executes the descriptor's listing, counting and search statements
// against a connection pool.
type Store[T any] struct {
	db   *pgxpool.Pool
	desc Descriptor[T]
}

// NewStore creates a store for one entity descriptor.
func NewStore[T any](db *pgxpool.Pool, desc Descriptor[T]) *Store[T] {
	return &Store[T]{db: db, desc: desc}
}

// List fetches the filtered, ordered page of rows.
func (s *Store[T]) List(ctx context.Context, filters Filters, p Params) ([]T, error) {
	sql, args := s.desc.buildList(filters, p)

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("listing rows: %w", err)
	}
	out, err := pgx.CollectRows(rows, s.desc.Scan)
	if err != nil {
		return nil, fmt.Errorf("scanning rows: %w", err)
	}
	return out, nil
}

// Count returns the number of rows matching the same filter predicate,
// with no pagination applied.
func (s *Store[T]) Count(ctx context.Context, filters Filters) (int64, error) {
	sql, args := s.desc.buildCount(filters)

	var count int64
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting rows: %w", err)
	}
	return count, nil
}

// Search runs the two-phase free-text search: the whole trimmed query as
// one substring pattern first, then per-token matching when the exact
// phase finds nothing. The returned count belongs to whichever phase
// produced the effective predicate.
func (s *Store[T]) Search(ctx context.Context, q string, p Params) (int64, []T, error) {
	exact := true
	count, err := s.searchCount(ctx, q, exact)
	if err != nil {
		return 0, nil, err
	}

	if count == 0 && strings.TrimSpace(q) != "" {
		exact = false
		count, err = s.searchCount(ctx, q, exact)
		if err != nil {
			return 0, nil, err
		}
	}

	sql, args := s.desc.buildSearch(q, exact, p)
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return 0, nil, fmt.Errorf("searching rows: %w", err)
	}
	out, err := pgx.CollectRows(rows, s.desc.Scan)
	if err != nil {
		return 0, nil, fmt.Errorf("scanning search rows: %w", err)
	}
	return count, out, nil
}

func (s *Store[T]) searchCount(ctx context.Context, q string, exact bool) (int64, error) {
	sql, args := s.desc.buildSearchCount(q, exact)

	var count int64
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting search rows: %w", err)
	}
	return count, nil
}
