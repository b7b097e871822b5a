package query

import (
	"fmt"
	"strings"
)

// searchWhere renders the predicate for one search phase. In the exact
// phase the whole trimmed query is one substring pattern; in the fallback
// phase each whitespace-separated token gets its own disjunction and the
// tokens are AND-combined. An empty query yields no predicate.
func (d *Descriptor[T]) searchWhere(q string, exact bool, args []any) (string, []any) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", args
	}

	tokens := []string{q}
	if !exact {
		tokens = strings.Fields(q)
	}

	groups := make([]string, 0, len(tokens))
	for _, token := range tokens {
		args = append(args, "%"+token+"%")
		n := len(args)
		ors := make([]string, len(d.SearchExprs))
		for i, expr := range d.SearchExprs {
			ors[i] = fmt.Sprintf("%s ILIKE $%d", expr, n)
		}
		groups = append(groups, "("+strings.Join(ors, " OR ")+")")
	}
	return " WHERE " + strings.Join(groups, " AND "), args
}

// searchOrder renders the ORDER BY clause for a search statement. A
// single-digit year-level query ranks exact year matches first when the
// descriptor carries a boost expression; the caller's ordering applies
// within each rank.
func (d *Descriptor[T]) searchOrder(q string, p Params, args []any) (string, []any) {
	base := fmt.Sprintf("%s %s", d.orderExpr(p.OrderBy), NormalizeDirection(p.Direction))

	q = strings.TrimSpace(q)
	if d.BoostExpr != "" && yearLevelQuery(q) {
		args = append(args, q)
		return fmt.Sprintf(" ORDER BY (%s = $%d) DESC, %s", d.BoostExpr, len(args), base), args
	}
	return " ORDER BY " + base, args
}

// buildSearch renders the row-fetching statement for the effective search
// predicate of the given phase.
func (d *Descriptor[T]) buildSearch(q string, exact bool, p Params) (string, []any) {
	where, args := d.searchWhere(q, exact, nil)
	order, args := d.searchOrder(q, p, args)

	args = append(args, p.Limit, p.Offset)
	sql := fmt.Sprintf("SELECT %s %s%s%s LIMIT $%d OFFSET $%d",
		d.Select, d.From, where, order, len(args)-1, len(args))
	return sql, args
}

// buildSearchCount renders the count statement for one search phase.
func (d *Descriptor[T]) buildSearchCount(q string, exact bool) (string, []any) {
	where, args := d.searchWhere(q, exact, nil)
	return fmt.Sprintf("SELECT COUNT(*) %s%s", d.From, where), args
}
