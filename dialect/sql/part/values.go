package part

import (
	"strings"

	"github.com/syssam/cardorm"
	"github.com/syssam/cardorm/value"
)

// Values builds the SET clause of an UPDATE.
type Values struct {
	fields []string
	values map[string]value.Value
	opts   options
}

// NewValues returns a Values configured with opts. The zero Values uses Literal.
func NewValues(opts ...Option) *Values {
	return &Values{opts: newOptions(opts)}
}

// Add assigns v to field. Assigning the same field twice is an error.
func (s *Values) Add(field string, v value.Value) error {
	if s.values == nil {
		s.values = make(map[string]value.Value)
	}
	if _, ok := s.values[field]; ok {
		return cardorm.NewDuplicateFieldError(field)
	}
	s.values[field] = v
	s.fields = append(s.fields, field)
	return nil
}

// Len returns the number of assigned fields.
func (s *Values) Len() int { return len(s.fields) }

// String renders "SET f1=lit1, f2=lit2 " in insertion order.
func (s *Values) String() string {
	lit := s.opts.literal
	if lit == nil {
		lit = Literal
	}
	var sb strings.Builder
	sb.WriteString("SET ")
	for i, f := range s.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f)
		sb.WriteByte('=')
		sb.WriteString(lit(s.values[f]))
	}
	sb.WriteByte(' ')
	return sb.String()
}
