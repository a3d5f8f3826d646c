package card

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/cardorm/value"
)

type (
	snapshot struct {
		ID       string            `msgpack:"id"`
		Sections []sectionSnapshot `msgpack:"sections,omitempty"`
		Tables   []tableSnapshot   `msgpack:"tables,omitempty"`
	}
	sectionSnapshot struct {
		Name     string                 `msgpack:"name"`
		Raw      map[string]value.Value `msgpack:"raw,omitempty"`
		Defaults map[string]value.Value `msgpack:"defaults,omitempty"`
		Dirty    bool                   `msgpack:"dirty,omitempty"`
	}
	tableSnapshot struct {
		Name  string        `msgpack:"name"`
		Rows  []rowSnapshot `msgpack:"rows,omitempty"`
		Dirty bool          `msgpack:"dirty,omitempty"`
	}
	rowSnapshot struct {
		ID     string                 `msgpack:"id"`
		State  RowState               `msgpack:"state"`
		Fields map[string]value.Value `msgpack:"fields,omitempty"`
	}
)

// Marshal encodes c, including dirty flags and row states, as msgpack.
func Marshal(c *Card) ([]byte, error) {
	snap := snapshot{ID: c.id.String()}
	for _, name := range c.Names() {
		switch s := c.sections[name].(type) {
		case *FieldSection:
			snap.Sections = append(snap.Sections, sectionSnapshot{
				Name: name, Raw: s.raw, Defaults: s.defaults, Dirty: s.dirty,
			})
		case *TableSection:
			ts := tableSnapshot{Name: name, Dirty: s.dirty}
			for _, r := range s.rows {
				ts.Rows = append(ts.Rows, rowSnapshot{ID: r.id.String(), State: r.state, Fields: r.fields})
			}
			snap.Tables = append(snap.Tables, ts)
		}
	}
	return msgpack.Marshal(&snap)
}

// Unmarshal decodes a card written by Marshal.
func Unmarshal(b []byte) (*Card, error) {
	var snap snapshot
	if err := msgpack.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("card: unmarshal: %w", err)
	}
	id, err := uuid.Parse(snap.ID)
	if err != nil {
		return nil, fmt.Errorf("card: unmarshal id: %w", err)
	}
	c := New(id)
	for _, ss := range snap.Sections {
		if _, ok := c.sections[ss.Name]; ok {
			return nil, fmt.Errorf("card: unmarshal: section %q repeated", ss.Name)
		}
		s := c.FieldSection(ss.Name)
		for k, v := range ss.Raw {
			s.raw[k] = v
		}
		s.defaults = ss.Defaults
		s.dirty = ss.Dirty
	}
	for _, st := range snap.Tables {
		if _, ok := c.sections[st.Name]; ok {
			return nil, fmt.Errorf("card: unmarshal: section %q repeated", st.Name)
		}
		t := c.TableSection(st.Name)
		for _, rs := range st.Rows {
			rid, err := uuid.Parse(rs.ID)
			if err != nil {
				return nil, fmt.Errorf("card: unmarshal row id: %w", err)
			}
			row := t.addRow(rid, rs.State)
			for k, v := range rs.Fields {
				row.fields[k] = v
			}
		}
		t.dirty = st.Dirty
	}
	return c, nil
}
