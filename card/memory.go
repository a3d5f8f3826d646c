package card

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/syssam/cardorm/value"
)

// Card is the in-memory Record.
type Card struct {
	id       uuid.UUID
	sections map[string]any // *FieldSection or *TableSection
}

// New returns an empty card with the given identifier.
func New(id uuid.UUID) *Card {
	return &Card{id: id, sections: make(map[string]any)}
}

// ID implements Record.
func (c *Card) ID() uuid.UUID { return c.id }

// Section implements Record.
func (c *Card) Section(name string) (Section, bool) {
	s, ok := c.sections[name].(*FieldSection)
	return s, ok
}

// SectionOrAdd implements Record. It panics if name is a table.
func (c *Card) SectionOrAdd(name string) Section {
	return c.FieldSection(name)
}

// FieldSection is like SectionOrAdd but returns the concrete section.
func (c *Card) FieldSection(name string) *FieldSection {
	switch s := c.sections[name].(type) {
	case *FieldSection:
		return s
	case nil:
		fs := &FieldSection{name: name, raw: make(map[string]value.Value)}
		c.sections[name] = fs
		return fs
	default:
		panic(fmt.Sprintf("card: section %q is a table", name))
	}
}

// Table implements Record.
func (c *Card) Table(name string) (Table, bool) {
	t, ok := c.sections[name].(*TableSection)
	return t, ok
}

// TableOrAdd implements Record. It panics if name is a scalar section.
func (c *Card) TableOrAdd(name string) Table {
	return c.TableSection(name)
}

// TableSection is like TableOrAdd but returns the concrete table.
func (c *Card) TableSection(name string) *TableSection {
	switch t := c.sections[name].(type) {
	case *TableSection:
		return t
	case nil:
		ts := &TableSection{name: name}
		c.sections[name] = ts
		return ts
	default:
		panic(fmt.Sprintf("card: section %q is not a table", name))
	}
}

// Names returns the section names in sorted order.
func (c *Card) Names() []string {
	return slices.Sorted(maps.Keys(c.sections))
}

// FieldSection is the in-memory Section.
type FieldSection struct {
	name     string
	raw      map[string]value.Value
	defaults map[string]value.Value
	dirty    bool
}

// Name returns the section name.
func (s *FieldSection) Name() string { return s.name }

// Get returns the assigned value of key, falling back to its default.
func (s *FieldSection) Get(key string) (value.Value, bool) {
	if v, ok := s.raw[key]; ok {
		return v, true
	}
	v, ok := s.defaults[key]
	return v, ok
}

// Raw implements Section.
func (s *FieldSection) Raw(key string) (value.Value, bool) {
	v, ok := s.raw[key]
	return v, ok
}

// Set implements Fields and marks the section dirty.
func (s *FieldSection) Set(key string, v value.Value) {
	s.raw[key] = v
	s.dirty = true
}

// SetDefault sets the value Get returns while key is not assigned.
// Defaults are not changes and do not mark the section dirty.
func (s *FieldSection) SetDefault(key string, v value.Value) {
	if s.defaults == nil {
		s.defaults = make(map[string]value.Value)
	}
	s.defaults[key] = v
}

// Keys returns the assigned keys in sorted order.
func (s *FieldSection) Keys() []string {
	return slices.Sorted(maps.Keys(s.raw))
}

// Dirty implements Section.
func (s *FieldSection) Dirty() bool { return s.dirty }

// RemoveChanges implements Section.
func (s *FieldSection) RemoveChanges() { s.dirty = false }

// TableSection is the in-memory Table.
type TableSection struct {
	name  string
	rows  []*TableRow
	dirty bool
}

// Name returns the table name.
func (t *TableSection) Name() string { return t.name }

// Len implements Table.
func (t *TableSection) Len() int { return len(t.rows) }

// Row implements Table.
func (t *TableSection) Row(i int) Row { return t.rows[i] }

// Rows returns the rows in order.
func (t *TableSection) Rows() []*TableRow { return t.rows }

// AddRow implements Table.
func (t *TableSection) AddRow() Row {
	return t.addRow(uuid.New(), Inserted)
}

func (t *TableSection) addRow(id uuid.UUID, state RowState) *TableRow {
	r := &TableRow{table: t, id: id, state: state, fields: make(map[string]value.Value)}
	t.rows = append(t.rows, r)
	t.dirty = true
	return r
}

// Dirty implements Table.
func (t *TableSection) Dirty() bool { return t.dirty }

// RemoveChanges implements Table: Deleted rows are dropped and every other
// row becomes Unchanged.
func (t *TableSection) RemoveChanges() {
	t.rows = slices.DeleteFunc(t.rows, func(r *TableRow) bool { return r.state == Deleted })
	for _, r := range t.rows {
		r.state = Unchanged
	}
	t.dirty = false
}

// TableRow is the in-memory Row.
type TableRow struct {
	table  *TableSection
	id     uuid.UUID
	state  RowState
	fields map[string]value.Value
}

// Get implements Fields.
func (r *TableRow) Get(key string) (value.Value, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Set implements Fields and marks the table dirty.
func (r *TableRow) Set(key string, v value.Value) {
	r.fields[key] = v
	r.table.dirty = true
}

// ID implements Row.
func (r *TableRow) ID() uuid.UUID { return r.id }

// SetID implements Row.
func (r *TableRow) SetID(id uuid.UUID) {
	r.id = id
	r.table.dirty = true
}

// State implements Row.
func (r *TableRow) State() RowState { return r.state }

// SetState implements Row.
func (r *TableRow) SetState(s RowState) {
	r.state = s
	r.table.dirty = true
}

var (
	_ Record  = (*Card)(nil)
	_ Section = (*FieldSection)(nil)
	_ Table   = (*TableSection)(nil)
	_ Row     = (*TableRow)(nil)
)
