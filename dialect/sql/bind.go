package sql

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/cardorm/dialect"
)

// Rebind rewrites "@name" placeholders for drivers without named parameter
// support. Postgres gets "$n" (one number per distinct name) and MySQL gets
// "?" per occurrence; the named arguments are flattened to match. SQLite
// accepts named arguments, so other dialects are returned unchanged.
//
// Placeholders inside single-quoted literals and "@@" sequences are left alone.
func Rebind(dl string, query string, args []any) (string, []any, error) {
	dl = dialectOf(dl)
	if dl != dialect.Postgres && dl != dialect.MySQL {
		return query, args, nil
	}
	named := make(map[string]any, len(args))
	for _, a := range args {
		na, ok := a.(sql.NamedArg)
		if !ok {
			if strings.Contains(query, "@") {
				return "", nil, fmt.Errorf("dialect/sql: rebind: positional argument %T mixed with named placeholders", a)
			}
			return query, args, nil
		}
		named[na.Name] = na.Value
	}
	var (
		sb      strings.Builder
		out     []any
		index   = make(map[string]int)
		inQuote bool
	)
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			sb.WriteByte(c)
		case c == '@' && !inQuote && i+1 < len(query) && query[i+1] == '@':
			sb.WriteString("@@")
			i++
		case c == '@' && !inQuote && i+1 < len(query) && isNameStart(query[i+1]):
			j := i + 1
			for j < len(query) && isNamePart(query[j]) {
				j++
			}
			name := query[i+1 : j]
			v, ok := named[name]
			if !ok {
				return "", nil, fmt.Errorf("dialect/sql: rebind: missing argument for @%s", name)
			}
			if dl == dialect.MySQL {
				sb.WriteByte('?')
				out = append(out, v)
			} else {
				n, seen := index[name]
				if !seen {
					out = append(out, v)
					n = len(out)
					index[name] = n
				}
				sb.WriteByte('$')
				sb.WriteString(strconv.Itoa(n))
			}
			i = j - 1
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), out, nil
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNamePart(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
