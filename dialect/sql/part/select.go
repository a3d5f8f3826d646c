package part

import (
	"strconv"
	"strings"
)

// Select builds the SELECT clause.
type Select struct {
	fields fragments
	top    int
}

// Add adds field names to the selection. Repeated names collapse to one.
func (s *Select) Add(fields ...string) *Select {
	for _, f := range fields {
		s.fields.add(f)
	}
	return s
}

// Top limits the number of returned rows. Zero removes the limit.
func (s *Select) Top(n int) *Select {
	s.top = n
	return s
}

// String renders "SELECT TOP {n} f1,f2 " or "SELECT TOP {n} * " without fields.
// The TOP segment is empty when no limit is set.
func (s *Select) String() string {
	var top string
	if s.top != 0 {
		top = "TOP " + strconv.Itoa(s.top)
	}
	if s.fields.len() > 0 {
		return "SELECT " + top + " " + strings.Join(s.fields.items, ",") + " "
	}
	return "SELECT " + top + " * "
}
