package repositories

import (
	"fmt"
	"strings"
)

// partialUpdate accumulates SET assignments for a dynamic UPDATE touching
// only the fields that were explicitly supplied. Placeholder numbering is
// kept contiguous with the argument slice.
type partialUpdate struct {
	assigns []string
	args    []any
}

// Set records one column assignment.
func (p *partialUpdate) Set(column string, value any) {
	p.args = append(p.args, value)
	p.assigns = append(p.assigns, fmt.Sprintf("%s = $%d", column, len(p.args)))
}

// SetPresent records the assignment only when the pointer is non-nil, i.e.
// when the field was present in the request body. An explicitly empty value
// still counts as supplied.
func SetPresent[T any](p *partialUpdate, column string, value *T) {
	if value != nil {
		p.Set(column, *value)
	}
}

// Empty reports whether no field was supplied.
func (p *partialUpdate) Empty() bool {
	return len(p.assigns) == 0
}

// SQL renders the UPDATE statement keyed on a single identifier column.
func (p *partialUpdate) SQL(table, keyColumn string, keyValue any) (string, []any) {
	args := append(p.args, keyValue)
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(p.assigns, ", "), keyColumn, len(args))
	return sql, args
}
