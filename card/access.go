package card

import (
	"slices"

	"github.com/syssam/cardorm/schema"
	"github.com/syssam/cardorm/value"
)

// Fill assigns v to key and leaves the section dirty.
func Fill[K schema.Key[K]](r Record, key K, v value.Value) {
	r.SectionOrAdd(schema.NameOf[K]()).Set(string(key), v)
}

// FillMany assigns every entry of values and leaves the section dirty.
func FillMany[K schema.Key[K]](r Record, values map[K]value.Value) {
	s := r.SectionOrAdd(schema.NameOf[K]())
	for k, v := range values {
		s.Set(string(k), v)
	}
}

// FillSilently assigns v to key as already persisted data: the section is
// clean afterwards, including changes made before the call.
func FillSilently[K schema.Key[K]](r Record, key K, v value.Value) {
	s := r.SectionOrAdd(schema.NameOf[K]())
	s.Set(string(key), v)
	s.RemoveChanges()
}

// FillManySilently is FillSilently for several keys.
func FillManySilently[K schema.Key[K]](r Record, values map[K]value.Value) {
	s := r.SectionOrAdd(schema.NameOf[K]())
	for k, v := range values {
		s.Set(string(k), v)
	}
	s.RemoveChanges()
}

// GetValueOrNull returns the effective value of key, or null when the
// section or the key is absent.
func GetValueOrNull[K schema.Key[K]](r Record, key K) value.Value {
	s, ok := r.Section(schema.NameOf[K]())
	if !ok {
		return value.Null()
	}
	if v, ok := s.Get(string(key)); ok {
		return v
	}
	return value.Null()
}

type copyOptions struct {
	nullForEmptyIdentifier bool
}

// CopyOption configures CopyFieldsFrom.
type CopyOption func(*copyOptions)

// NullForEmptyIdentifier writes null instead of the all-zero identifier.
func NullForEmptyIdentifier() CopyOption {
	return func(o *copyOptions) {
		o.nullForEmptyIdentifier = true
	}
}

// CopyFieldsFrom copies the effective value of each key from other into r.
// Missing source values are copied as null.
func CopyFieldsFrom[K schema.Key[K]](r, other Record, keys []K, opts ...CopyOption) {
	var o copyOptions
	for _, opt := range opts {
		opt(&o)
	}
	dst := r.SectionOrAdd(schema.NameOf[K]())
	for _, k := range keys {
		v := GetValueOrNull(other, k)
		if o.nullForEmptyIdentifier && value.IsEmptyIdentifier(v) {
			v = value.Null()
		}
		dst.Set(string(k), v)
	}
}

// CopySection overwrites the section K of target with the section K of r.
// Every key of the domain not listed in exclude is written; keys the source
// lacks become null.
func CopySection[K schema.Key[K]](r, target Record, exclude ...K) {
	name := schema.NameOf[K]()
	src := r.SectionOrAdd(name)
	dst := target.SectionOrAdd(name)
	copyFields(src, dst, keysOf[K](), exclude)
}

func keysOf[K schema.Key[K]]() []K {
	var zero K
	return zero.AllKeys()
}

func copyFields[K ~string](src, dst Fields, keys, exclude []K) {
	for _, k := range keys {
		if slices.Contains(exclude, k) {
			continue
		}
		v, ok := src.Get(string(k))
		if !ok {
			v = value.Null()
		}
		dst.Set(string(k), v)
	}
}
