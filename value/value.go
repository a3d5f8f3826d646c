// Package value defines the field value stored in card sections and rows.
//
// A Value is a closed tagged union. Code that dispatches on Kind can be
// checked for exhaustiveness, which an open any-typed value does not allow.
package value

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/syssam/cardorm"
)

// Kind identifies the variant held by a Value.
type Kind uint8

// Value kinds.
const (
	KindNull Kind = iota
	KindText
	KindInt
	KindReal
	KindBool
	KindIdentifier
	KindTime
)

var kindNames = [...]string{
	KindNull:       "null",
	KindText:       "text",
	KindInt:        "integer",
	KindReal:       "real",
	KindBool:       "boolean",
	KindIdentifier: "identifier",
	KindTime:       "datetime",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a field value. The zero Value is null.
type Value struct {
	kind Kind
	s    string
	n    uint64 // int64 bits, float64 bits or bool
	id   uuid.UUID
	t    time.Time
}

// Null returns the null value.
func Null() Value { return Value{} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, n: uint64(i)} }

// Real returns a real value.
func Real(f float64) Value { return Value{kind: KindReal, n: math.Float64bits(f)} }

// Bool returns a boolean value.
func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.n = 1
	}
	return v
}

// Identifier returns a unique-identifier value.
func Identifier(id uuid.UUID) Value { return Value{kind: KindIdentifier, id: id} }

// Time returns a date/time value.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsText returns the text held by v.
func (v Value) AsText() (string, bool) { return v.s, v.kind == KindText }

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) { return int64(v.n), v.kind == KindInt }

// AsReal returns the real number held by v.
func (v Value) AsReal() (float64, bool) {
	if v.kind != KindReal {
		return 0, false
	}
	return math.Float64frombits(v.n), true
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.n == 1, v.kind == KindBool }

// AsIdentifier returns the identifier held by v.
func (v Value) AsIdentifier() (uuid.UUID, bool) { return v.id, v.kind == KindIdentifier }

// AsTime returns the date/time held by v.
func (v Value) AsTime() (time.Time, bool) { return v.t, v.kind == KindTime }

// Any returns v as a plain Go value, nil for null.
func (v Value) Any() any {
	switch v.kind {
	case KindText:
		return v.s
	case KindInt:
		return int64(v.n)
	case KindReal:
		return math.Float64frombits(v.n)
	case KindBool:
		return v.n == 1
	case KindIdentifier:
		return v.id
	case KindTime:
		return v.t
	default:
		return nil
	}
}

// String returns the natural text form of v. Null renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.s
	case KindInt:
		return strconv.FormatInt(int64(v.n), 10)
	case KindReal:
		return strconv.FormatFloat(math.Float64frombits(v.n), 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.n == 1)
	case KindIdentifier:
		return v.id.String()
	case KindTime:
		return v.t.String()
	default:
		return ""
	}
}

// GoString implements fmt.GoStringer for readable test failures.
func (v Value) GoString() string {
	if v.kind == KindNull {
		return "value.Null()"
	}
	return fmt.Sprintf("value.%s(%q)", v.kind, v.String())
}

// Equal reports whether v and o hold the same variant and payload.
// Times compare as instants.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindText:
		return v.s == o.s
	case KindIdentifier:
		return v.id == o.id
	case KindTime:
		return v.t.Equal(o.t)
	default:
		return v.n == o.n
	}
}

// IsEmptyIdentifier reports whether v is the all-zero identifier.
func IsEmptyIdentifier(v Value) bool {
	return v.kind == KindIdentifier && v.id == uuid.Nil
}

// FromAny converts a Go value, typically a database scan result, into a Value.
func FromAny(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case string:
		return Text(x), nil
	case []byte:
		return Text(string(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return Value{}, fmt.Errorf("%w: %d overflows int64", cardorm.ErrUnsupportedValue, x)
		}
		return Int(int64(x)), nil
	case float32:
		return Real(float64(x)), nil
	case float64:
		return Real(x), nil
	case bool:
		return Bool(x), nil
	case uuid.UUID:
		return Identifier(x), nil
	case time.Time:
		return Time(x), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", cardorm.ErrUnsupportedValue, x)
	}
}

// MustFromAny is like FromAny but panics on unsupported types.
func MustFromAny(x any) Value {
	v, err := FromAny(x)
	if err != nil {
		panic(err)
	}
	return v
}
