// Package header implements the ordered, case-insensitive header
// multimap shared by requests and responses.
package header

import (
	"github.com/pkg/errors"

	"requestgo/rule"
)

var (
	ErrInvalidName  = errors.New("header name is not a valid token")
	ErrInvalidValue = errors.New("header value contains CR, LF or NUL")
)

// Entry is a single name-value pair. Name keeps the case it was
// stored with.
type Entry struct{ Name, Value string }

// Map is an ordered multimap of header fields. Name comparison folds
// ASCII case; the stored case is preserved for serialization.
// The zero value is ready to use.
type Map struct {
	entries []Entry
}

// NewMap creates a Map from initial entries, in iteration-stable
// pair order. It fails on the first invalid name or value.
func NewMap(initial ...Entry) (*Map, error) {
	m := &Map{}
	for _, e := range initial {
		if err := m.Add(e.Name, e.Value); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Add appends a value for name without touching existing values.
func (m *Map) Add(name, value string) error {
	if err := validate(name, value); err != nil {
		return err
	}

	m.entries = append(m.entries, Entry{Name: name, Value: value})
	return nil
}

// Set replaces every existing value for name with the given one.
func (m *Map) Set(name, value string) error {
	if err := validate(name, value); err != nil {
		return err
	}

	m.Del(name)
	m.entries = append(m.entries, Entry{Name: name, Value: value})
	return nil
}

// Get returns the first value stored for name.
func (m *Map) Get(name string) (value string, ok bool) {
	for _, e := range m.entries {
		if nameFoldEqual(e.Name, name) {
			return e.Value, true
		}
	}
	return "", false
}

// Values returns all values for name in insertion order.
func (m *Map) Values(name string) []string {
	var values []string
	for _, e := range m.entries {
		if nameFoldEqual(e.Name, name) {
			values = append(values, e.Value)
		}
	}
	return values
}

// Has reports whether at least one value is stored for name.
func (m *Map) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Del removes every value stored for name.
func (m *Map) Del(name string) {
	kept := m.entries[:0]
	for _, e := range m.entries {
		if !nameFoldEqual(e.Name, name) {
			kept = append(kept, e)
		}
	}
	m.entries = kept
}

// Len returns the number of stored entries.
func (m *Map) Len() int { return len(m.entries) }

// Entries returns the stored pairs in insertion order. The returned
// slice is a copy; re-reading it yields the same sequence as long as
// the map was not mutated in between.
func (m *Map) Entries() []Entry {
	clone := make([]Entry, len(m.entries))
	copy(clone, m.entries)
	return clone
}

func validate(name, value string) error {
	if !rule.IsValidToken(name) {
		return errors.Wrapf(ErrInvalidName, "name: %q", name)
	}
	if !rule.IsValidFieldValue(value) {
		return errors.Wrapf(ErrInvalidValue, "name: %q", name)
	}
	return nil
}

// nameFoldEqual compares header names folding ASCII case only.
// Names are tokens, so no unicode folding is involved.
func nameFoldEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}
