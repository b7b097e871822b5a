// Package query implements the filtered, paginated, sortable listing and
// two-phase free-text search shared by every listable entity. Callers
// describe an entity once with a Descriptor; all SQL is rendered from the
// descriptor's allow-list so no caller-supplied string ever reaches the
// statement as a column or table name.
package query

import (
	"strings"

	"github.com/jackc/pgx/v5"
)

// Column maps a caller-facing field name to a trusted, fully qualified
// column expression.
type Column struct {
	Name string
	Expr string
}

// Descriptor describes one listable entity. T is the row type; Scan adapts
// a fetched row to it (typically pgx.RowToStructByName).
type Descriptor[T any] struct {
	// Select lists the projected expressions, From the table and joins.
	Select string
	From   string

	// Columns is the allow-list for filters and order-by.
	Columns []Column

	// DefaultOrder is the logical field ordering falls back to when the
	// requested order_by is not in the allow-list.
	DefaultOrder string

	// SearchExprs are the expressions matched by free-text search.
	SearchExprs []string

	// BoostExpr, when set, is compared against a single-digit year-level
	// query (1-4) and used as an ordering boost ahead of the requested
	// order. It never narrows the result set.
	BoostExpr string

	Scan func(row pgx.CollectableRow) (T, error)
}

// Filters are exact-match field filters, AND-combined. Keys not in the
// entity's allow-list are dropped silently.
type Filters map[string]string

// Params control ordering and pagination. A negative Limit disables
// pagination entirely.
type Params struct {
	OrderBy   string
	Direction string
	Limit     int
	Offset    int
}

// columnExpr resolves a logical field name through the allow-list.
func (d *Descriptor[T]) columnExpr(name string) (string, bool) {
	for _, c := range d.Columns {
		if c.Name == name {
			return c.Expr, true
		}
	}
	return "", false
}

// orderExpr resolves the order-by field, falling back to DefaultOrder for
// anything outside the allow-list.
func (d *Descriptor[T]) orderExpr(orderBy string) string {
	if expr, ok := d.columnExpr(orderBy); ok {
		return expr
	}
	expr, _ := d.columnExpr(d.DefaultOrder)
	return expr
}

// NormalizeDirection coerces anything that is not ASC or DESC (after
// uppercasing) to ASC.
func NormalizeDirection(direction string) string {
	switch strings.ToUpper(direction) {
	case "DESC":
		return "DESC"
	default:
		return "ASC"
	}
}

// yearLevelQuery reports whether a trimmed search query is the single-digit
// year level that triggers the ordering boost.
func yearLevelQuery(q string) bool {
	return len(q) == 1 && q[0] >= '1' && q[0] <= '4'
}
