package query

import (
	"fmt"
	"sort"
	"strings"
)

// filterWhere renders the AND-of-equalities predicate for the allow-listed
// subset of filters. Keys are sorted so the generated SQL is deterministic.
func (d *Descriptor[T]) filterWhere(filters Filters, args []any) (string, []any) {
	if len(filters) == 0 {
		return "", args
	}

	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var clauses []string
	for _, k := range keys {
		expr, ok := d.columnExpr(k)
		if !ok {
			continue
		}
		args = append(args, filters[k])
		clauses = append(clauses, fmt.Sprintf("%s = $%d", expr, len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// buildList renders the listing statement. Limit < 0 produces an unbounded
// listing with no LIMIT/OFFSET clause.
func (d *Descriptor[T]) buildList(filters Filters, p Params) (string, []any) {
	where, args := d.filterWhere(filters, nil)

	sql := fmt.Sprintf("SELECT %s %s%s ORDER BY %s %s",
		d.Select, d.From, where, d.orderExpr(p.OrderBy), NormalizeDirection(p.Direction))

	if p.Limit >= 0 {
		args = append(args, p.Limit, p.Offset)
		sql += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}
	return sql, args
}

// buildCount renders the count statement for the same filter predicate,
// with no pagination.
func (d *Descriptor[T]) buildCount(filters Filters) (string, []any) {
	where, args := d.filterWhere(filters, nil)
	return fmt.Sprintf("SELECT COUNT(*) %s%s", d.From, where), args
}
