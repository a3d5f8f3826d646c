package part

import "strings"

// OrderBy builds the ORDER BY clause and the statement terminator.
type OrderBy struct {
	fields fragments
}

// Asc orders by field ascending.
func (o *OrderBy) Asc(field string) *OrderBy {
	o.fields.add(field)
	return o
}

// Desc orders by field descending.
func (o *OrderBy) Desc(field string) *OrderBy {
	o.fields.add(field + " DESC")
	return o
}

// String renders "ORDER BY f1, f2;" or just ";" when empty.
func (o *OrderBy) String() string {
	if o.fields.len() == 0 {
		return ";"
	}
	return "ORDER BY " + strings.Join(o.fields.items, ", ") + ";"
}
