package card

import (
	"github.com/google/uuid"

	"github.com/syssam/cardorm/schema"
	"github.com/syssam/cardorm/value"
)

// AddSectionRow appends a row to the table K with the given values.
// The row is Inserted and the table is dirty.
func AddSectionRow[K schema.Key[K]](r Record, values map[K]value.Value) Row {
	row := r.TableOrAdd(schema.NameOf[K]()).AddRow()
	for k, v := range values {
		row.Set(string(k), v)
	}
	row.SetState(Inserted)
	return row
}

// AddSectionRowSilently appends a row as already persisted data.
// The table is clean afterwards.
func AddSectionRowSilently[K schema.Key[K]](r Record, values map[K]value.Value) Row {
	t := r.TableOrAdd(schema.NameOf[K]())
	row := t.AddRow()
	for k, v := range values {
		row.Set(string(k), v)
	}
	t.RemoveChanges()
	return row
}

// AddSectionRowsSilently appends several rows as already persisted data.
func AddSectionRowsSilently[K schema.Key[K]](r Record, rows []map[K]value.Value) {
	t := r.TableOrAdd(schema.NameOf[K]())
	for _, values := range rows {
		row := t.AddRow()
		for k, v := range values {
			row.Set(string(k), v)
		}
	}
	t.RemoveChanges()
}

// CopyTable makes the table K of target mirror the table K of r by position.
//
// The i-th source row is copied into the i-th target row, which becomes
// Modified. Target rows past the end of the source become Deleted and keep
// their values. Source rows past the end of the target are appended as
// Inserted rows with a fresh identity. Keys in exclude are left untouched.
func CopyTable[K schema.Key[K]](r, target Record, exclude ...K) {
	name := schema.NameOf[K]()
	src := r.TableOrAdd(name)
	dst := target.TableOrAdd(name)
	keys := keysOf[K]()

	n, m := src.Len(), dst.Len()
	for i := range m {
		row := dst.Row(i)
		if i >= n {
			row.SetState(Deleted)
			continue
		}
		copyFields(src.Row(i), row, keys, exclude)
		row.SetState(Modified)
	}
	for i := m; i < n; i++ {
		row := dst.AddRow()
		copyFields(src.Row(i), row, keys, exclude)
		row.SetState(Inserted)
	}
}

// SyncTable makes the table K of target mirror the table K of r by Row
// Identity.
//
// A target row whose identity appears in the source is overwritten and
// becomes Modified. Other target rows become Deleted. Source rows with no
// target counterpart are appended, keeping their identity, as Inserted.
// When the source repeats an identity the first row wins.
func SyncTable[K schema.Key[K]](r, target Record, exclude ...K) {
	name := schema.NameOf[K]()
	src := r.TableOrAdd(name)
	dst := target.TableOrAdd(name)
	keys := keysOf[K]()

	byID := make(map[uuid.UUID]Row, src.Len())
	for i := range src.Len() {
		row := src.Row(i)
		if _, ok := byID[row.ID()]; !ok {
			byID[row.ID()] = row
		}
	}
	matched := make(map[uuid.UUID]bool, dst.Len())
	for i := range dst.Len() {
		row := dst.Row(i)
		s, ok := byID[row.ID()]
		if !ok {
			row.SetState(Deleted)
			continue
		}
		copyFields(s, row, keys, exclude)
		row.SetState(Modified)
		matched[row.ID()] = true
	}
	for i := range src.Len() {
		s := src.Row(i)
		if matched[s.ID()] {
			continue
		}
		matched[s.ID()] = true
		row := dst.AddRow()
		row.SetID(s.ID())
		copyFields(s, row, keys, exclude)
		row.SetState(Inserted)
	}
}
