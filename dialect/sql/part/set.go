package part

import "github.com/syssam/cardorm/value"

// fragments is a set of text fragments kept in first-insertion order.
// Adding a fragment that is already present is a no-op.
type fragments struct {
	items []string
	seen  map[string]struct{}
}

func (f *fragments) add(s string) {
	if f.seen == nil {
		f.seen = make(map[string]struct{})
	}
	if _, ok := f.seen[s]; ok {
		return
	}
	f.seen[s] = struct{}{}
	f.items = append(f.items, s)
}

func (f *fragments) len() int { return len(f.items) }

func (f *fragments) first() (string, bool) {
	if len(f.items) == 0 {
		return "", false
	}
	return f.items[0], true
}

// Option configures how a builder embeds values.
type Option func(*options)

type options struct {
	literal func(value.Value) string
}

// WithEscaping makes the builder embed text with SafeLiteral.
func WithEscaping() Option {
	return func(o *options) {
		o.literal = SafeLiteral
	}
}

func newOptions(opts []Option) options {
	o := options{literal: Literal}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
