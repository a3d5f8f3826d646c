package part

import (
	"github.com/syssam/cardorm"
	"github.com/syssam/cardorm/schema"
)

// Tables collects the table a FROM or UPDATE clause targets.
//
// Only the first added table is rendered; a query must add exactly one.
type Tables struct {
	tables fragments
}

// Add adds a table by name.
func (t *Tables) Add(table string) *Tables {
	t.tables.add(table)
	return t
}

// AddDomain adds the table named by a key set, e.g. any key constant of it.
func (t *Tables) AddDomain(d schema.Domain) *Tables {
	return t.Add(d.DomainName())
}

// AddType adds the table named after the type of v, with the "Class"
// suffix stripped.
func (t *Tables) AddType(v any) *Tables {
	return t.Add(TableNameForType(TypeName(v)))
}

// From renders "FROM {table} ".
func (t *Tables) From() (string, error) {
	tbl, ok := t.tables.first()
	if !ok {
		return "", cardorm.ErrNoTable
	}
	return "FROM " + tbl + " ", nil
}

// Update renders "UPDATE {table} ".
func (t *Tables) Update() (string, error) {
	tbl, ok := t.tables.first()
	if !ok {
		return "", cardorm.ErrNoTable
	}
	return "UPDATE " + tbl + " ", nil
}
