package part

import (
	"reflect"
	"strings"

	"github.com/syssam/cardorm/value"
)

// DateTimeLayout is the layout of date/time literals. No time zone is rendered.
const DateTimeLayout = "2006-01-02 15:04:05"

// sectionClassSuffix is stripped from type names by TableNameForType.
const sectionClassSuffix = "Class"

// Literal returns the SQL text of v.
//
// Null renders as NULL; text and identifiers are single-quoted without
// escaping; date/times are single-quoted in DateTimeLayout; every other
// kind uses its natural text form.
func Literal(v value.Value) string {
	switch v.Kind() {
	case value.KindNull:
		return "NULL"
	case value.KindText, value.KindIdentifier:
		return "'" + v.String() + "'"
	case value.KindTime:
		t, _ := v.AsTime()
		return "'" + t.Format(DateTimeLayout) + "'"
	case value.KindInt, value.KindReal, value.KindBool:
		return v.String()
	default:
		return v.String()
	}
}

// SafeLiteral is like Literal but doubles single quotes embedded in text.
func SafeLiteral(v value.Value) string {
	if s, ok := v.AsText(); ok {
		return "'" + escapeStringValue(s) + "'"
	}
	return Literal(v)
}

// escapeStringValue escapes single quotes by doubling them.
func escapeStringValue(s string) string {
	// Fast path: if no escaping needed, return as-is
	if !strings.Contains(s, "'") {
		return s
	}
	return strings.ReplaceAll(s, "'", "''")
}

// LiteralList joins the literals of vs with commas. When ignoreNulls is set,
// null elements are dropped instead of rendering as NULL.
func LiteralList(vs []value.Value, ignoreNulls bool) string {
	return literalList(vs, ignoreNulls, Literal)
}

func literalList(vs []value.Value, ignoreNulls bool, lit func(value.Value) string) string {
	var (
		sb        strings.Builder
		needComma bool
	)
	for _, v := range vs {
		if ignoreNulls && v.IsNull() {
			continue
		}
		if needComma {
			sb.WriteByte(',')
		}
		sb.WriteString(lit(v))
		needComma = true
	}
	return sb.String()
}

// TableNameForType strips the conventional "Class" suffix from a type name.
// Names without the suffix are returned unchanged.
func TableNameForType(name string) string {
	if t, ok := strings.CutSuffix(name, sectionClassSuffix); ok {
		return t
	}
	return name
}

// TypeName returns the name of the dynamic type of v, dereferencing pointers.
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}
