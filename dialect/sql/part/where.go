package part

import (
	"strings"

	"github.com/syssam/cardorm/value"
)

// Where builds a WHERE clause of conditions joined with AND.
type Where struct {
	conds fragments
	opts  options
}

// NewWhere returns a Where configured with opts. The zero Where uses Literal.
func NewWhere(opts ...Option) *Where {
	return &Where{opts: newOptions(opts)}
}

func (w *Where) literal(v value.Value) string {
	if w.opts.literal == nil {
		return Literal(v)
	}
	return w.opts.literal(v)
}

// Eq adds "field IS NULL" for a null v and "field={literal}" otherwise.
func (w *Where) Eq(field string, v value.Value) *Where {
	if v.IsNull() {
		w.conds.add(field + " IS NULL")
		return w
	}
	w.conds.add(field + "=" + w.literal(v))
	return w
}

// In adds "field IN (...)" with null values dropped.
//
// An empty vs adds no condition at all: the filter is skipped, it does not
// exclude every row.
func (w *Where) In(field string, vs []value.Value) *Where {
	if len(vs) == 0 {
		return w
	}
	w.conds.add(field + " IN (" + literalList(vs, true, w.literal) + ")")
	return w
}

// Len returns the number of distinct conditions.
func (w *Where) Len() int { return w.conds.len() }

// String renders "WHERE c1 AND c2", or the empty string without conditions.
func (w *Where) String() string {
	if w.conds.len() == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conds.items, " AND ")
}
