package part

import (
	"github.com/syssam/cardorm/schema"
	"github.com/syssam/cardorm/value"
)

// AddKeys adds typed keys to the selection.
func AddKeys[K schema.Key[K]](s *Select, keys ...K) *Select {
	for _, k := range keys {
		s.Add(string(k))
	}
	return s
}

// EqKey is Where.Eq for a typed key.
func EqKey[K schema.Key[K]](w *Where, key K, v value.Value) *Where {
	return w.Eq(string(key), v)
}

// InKey is Where.In for a typed key.
func InKey[K schema.Key[K]](w *Where, key K, vs []value.Value) *Where {
	return w.In(string(key), vs)
}

// AddKey is Values.Add for a typed key.
func AddKey[K schema.Key[K]](s *Values, key K, v value.Value) error {
	return s.Add(string(key), v)
}
