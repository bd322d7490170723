package schema

import (
	"fmt"
	"sort"
)

// Definition declares the shape of a single configuration property:
// whether its value encodes an ordered list of fields, and the value to
// fall back to when no raw value was provided.
//
// Definitions are immutable once handed to a catalog. A nil DefaultValue
// means "no default", which is distinct from a default of "".
type Definition struct {
	Key          string  `yaml:"key" json:"key"`
	Description  string  `yaml:"description,omitempty" json:"description,omitempty"`
	MultiValues  bool    `yaml:"multi_values" json:"multi_values"`
	DefaultValue *string `yaml:"default,omitempty" json:"default,omitempty"`
}

// HasDefault reports whether the declaration carries a default value.
func (d Definition) HasDefault() bool {
	return d.DefaultValue != nil
}

// Default returns the declared default value, or "" if there is none.
func (d Definition) Default() string {
	if d.DefaultValue == nil {
		return ""
	}
	return *d.DefaultValue
}

// Definitions is a catalog of property declarations keyed by property key.
// It is built once and read-only afterwards, so concurrent lookups are safe.
type Definitions struct {
	byKey map[string]Definition
}

// New builds a catalog from the given declarations.
// Declarations with an empty key or a key that was already declared are
// rejected.
func New(defs []Definition) (*Definitions, error) {
	byKey := make(map[string]Definition, len(defs))
	for _, def := range defs {
		if def.Key == "" {
			return nil, fmt.Errorf("property definition with empty key")
		}
		if _, exists := byKey[def.Key]; exists {
			return nil, fmt.Errorf("duplicate property definition: %q", def.Key)
		}
		byKey[def.Key] = def
	}
	return &Definitions{byKey: byKey}, nil
}

// Empty returns a catalog with no declarations.
// Every key is then undeclared, which is a valid state: undeclared keys
// resolve without defaults and never trigger mismatch warnings.
func Empty() *Definitions {
	return &Definitions{byKey: map[string]Definition{}}
}

// Lookup returns the declaration for key.
// Matching is exact and case-sensitive; no normalization is applied.
func (d *Definitions) Lookup(key string) (Definition, bool) {
	if d == nil {
		return Definition{}, false
	}
	def, ok := d.byKey[key]
	return def, ok
}

// DefaultValue returns the declared default for key, if the key is declared
// and carries one.
func (d *Definitions) DefaultValue(key string) (string, bool) {
	def, ok := d.Lookup(key)
	if !ok || !def.HasDefault() {
		return "", false
	}
	return def.Default(), true
}

// Len returns the number of declared properties.
func (d *Definitions) Len() int {
	if d == nil {
		return 0
	}
	return len(d.byKey)
}

// Keys returns all declared property keys in lexical order.
func (d *Definitions) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, 0, len(d.byKey))
	for k := range d.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
