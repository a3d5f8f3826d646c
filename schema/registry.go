package schema

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/syssam/cardorm"
)

// Registry holds key set descriptors by section name.
type Registry struct {
	sections map[string]Descriptor
}

// NewRegistry returns a registry holding the given descriptors.
func NewRegistry(ds ...Descriptor) (*Registry, error) {
	r := &Registry{sections: make(map[string]Descriptor, len(ds))}
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a validated descriptor. A section name may be registered once.
func (r *Registry) Register(d Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if _, ok := r.sections[d.Name]; ok {
		return cardorm.NewValidationError(d.Name, errors.New("section registered twice"))
	}
	d.Keys = slices.Clone(d.Keys)
	r.sections[d.Name] = d
	return nil
}

// Lookup returns the descriptor of the named section.
func (r *Registry) Lookup(name string) (Descriptor, error) {
	d, ok := r.sections[name]
	if !ok {
		return Descriptor{}, cardorm.NewNotFoundError("section", name)
	}
	return d, nil
}

// LookupKey returns the descriptor of the named section after checking
// that key belongs to it.
func (r *Registry) LookupKey(name, key string) (Descriptor, error) {
	d, err := r.Lookup(name)
	if err != nil {
		return Descriptor{}, err
	}
	if !d.Contains(key) {
		return Descriptor{}, cardorm.NewNotFoundError("key", name+"."+key)
	}
	return d, nil
}

// Names returns the registered section names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sections))
	for n := range r.sections {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// document is the YAML layout read by LoadYAML.
type document struct {
	Sections []Descriptor `yaml:"sections"`
}

// LoadYAML reads a registry from YAML.
func LoadYAML(r io.Reader) (*Registry, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("schema: decode yaml: %w", err)
	}
	return NewRegistry(doc.Sections...)
}

// LoadFile reads a registry from a YAML file.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}
