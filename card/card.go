package card

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/syssam/cardorm/value"
)

// RowState is the persistence intent of a row.
type RowState uint8

// Row states.
const (
	Unchanged RowState = iota
	Inserted
	Modified
	Deleted
)

// String returns the state name.
func (s RowState) String() string {
	switch s {
	case Unchanged:
		return "Unchanged"
	case Inserted:
		return "Inserted"
	case Modified:
		return "Modified"
	case Deleted:
		return "Deleted"
	default:
		return "RowState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Fields is a mapping from field key to value.
type Fields interface {
	// Get returns the value of key and whether it is present.
	Get(key string) (value.Value, bool)
	// Set assigns v to key.
	Set(key string, v value.Value)
}

// Section is a scalar section. Get reads the effective view.
type Section interface {
	Fields
	// Raw returns the value of key only if it was explicitly assigned.
	Raw(key string) (value.Value, bool)
	// Dirty reports whether the section has uncommitted changes.
	Dirty() bool
	// RemoveChanges marks the section as persisted.
	RemoveChanges()
}

// Table is a tabular section.
type Table interface {
	// Len returns the number of rows.
	Len() int
	// Row returns the i-th row.
	Row(i int) Row
	// AddRow appends a row with a fresh identity in state Inserted.
	AddRow() Row
	// Dirty reports whether the table has uncommitted changes.
	Dirty() bool
	// RemoveChanges marks the table as persisted.
	RemoveChanges()
}

// Row is one row of a Table.
type Row interface {
	Fields
	ID() uuid.UUID
	SetID(id uuid.UUID)
	State() RowState
	SetState(s RowState)
}

// Record is a card: an identified set of named sections.
type Record interface {
	// ID returns the primary key of the record.
	ID() uuid.UUID
	// Section returns the scalar section with the given name, if any.
	Section(name string) (Section, bool)
	// SectionOrAdd returns the scalar section with the given name, creating it.
	SectionOrAdd(name string) Section
	// Table returns the tabular section with the given name, if any.
	Table(name string) (Table, bool)
	// TableOrAdd returns the tabular section with the given name, creating it.
	TableOrAdd(name string) Table
}
