package schema

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/syssam/cardorm"
)

// Domain is implemented by every key type. The zero value is enough to call it.
type Domain interface {
	// DomainName returns the section or table name of the key set.
	DomainName() string
}

// Key is the constraint satisfied by a key set type K.
type Key[K any] interface {
	~string
	Domain
	// AllKeys returns the full key domain in declaration order.
	AllKeys() []K
}

// Descriptor is the static description of a key set.
type Descriptor struct {
	Name string   `yaml:"name"`
	Keys []string `yaml:"keys"`
}

// Describe returns the descriptor of the key set K.
func Describe[K Key[K]]() Descriptor {
	var zero K
	all := zero.AllKeys()
	keys := make([]string, len(all))
	for i, k := range all {
		keys[i] = string(k)
	}
	return Descriptor{Name: zero.DomainName(), Keys: keys}
}

// NameOf returns the section name of the key set K.
func NameOf[K Key[K]]() string {
	var zero K
	return zero.DomainName()
}

// Contains reports whether key belongs to the key domain.
func (d Descriptor) Contains(key string) bool {
	for _, k := range d.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Validate checks that the name and every key are valid identifiers and
// that no key is repeated.
func (d Descriptor) Validate() error {
	var errs []error
	if !IsValidIdentifier(d.Name) {
		errs = append(errs, fmt.Errorf("invalid section name %q", d.Name))
	}
	if len(d.Keys) == 0 {
		errs = append(errs, errors.New("empty key domain"))
	}
	seen := make(map[string]struct{}, len(d.Keys))
	for _, k := range d.Keys {
		if !IsValidIdentifier(k) {
			errs = append(errs, fmt.Errorf("invalid key %q", k))
			continue
		}
		if _, ok := seen[k]; ok {
			errs = append(errs, fmt.Errorf("duplicate key %q", k))
			continue
		}
		seen[k] = struct{}{}
	}
	if err := cardorm.NewAggregateError(errs...); err != nil {
		return cardorm.NewValidationError(d.Name, err)
	}
	return nil
}

// validIdentifierRe validates SQL identifiers (alphanumeric, underscores, dots for schema.name)
var validIdentifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

// IsValidIdentifier checks if the string is a valid SQL identifier.
func IsValidIdentifier(s string) bool {
	return s != "" && len(s) <= 128 && validIdentifierRe.MatchString(s)
}
