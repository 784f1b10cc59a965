package collections

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Entry holds one key/value pair of a [Mapping].
type Entry[T any] struct {
	Key   string
	Value T
}

// String returns a human-readable representation: "key: value".
func (e Entry[T]) String() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Value)
}

// Mapping is an immutable, string-keyed collection that remembers the order
// of its keys. Traversals visit keys in that order and only the mapping's
// own keys.
//
// A nil *Mapping behaves as an empty mapping.
type Mapping[T any] struct {
	keys   []string
	values map[string]T
}

// NewMapping creates a Mapping whose key order is the order of entries.
// A key that appears more than once keeps its first position and takes the
// value of its last occurrence.
//
//	m := collections.NewMapping(
//	    collections.Entry[int]{Key: "a", Value: 1},
//	    collections.Entry[int]{Key: "b", Value: 2},
//	)
func NewMapping[T any](entries ...Entry[T]) *Mapping[T] {
	m := &Mapping[T]{
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]T, len(entries)),
	}
	for _, e := range entries {
		if _, ok := m.values[e.Key]; !ok {
			m.keys = append(m.keys, e.Key)
		}
		m.values[e.Key] = e.Value
	}
	return m
}

// MappingOf creates a Mapping from a Go map. Go maps are unordered, so the
// keys are ordered lexically.
func MappingOf[T any](src map[string]T) *Mapping[T] {
	keys := maps.Keys(src)
	slices.Sort(keys)
	m := &Mapping[T]{keys: keys, values: make(map[string]T, len(src))}
	for _, k := range keys {
		m.values[k] = src[k]
	}
	return m
}

// Len returns the number of keys.
func (m *Mapping[T]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Shape always returns [ShapeMapping].
func (m *Mapping[T]) Shape() Shape { return ShapeMapping }

func (*Mapping[T]) element(T) {}

// Get returns the value stored under key together with a presence flag.
func (m *Mapping[T]) Get(key string) (T, bool) {
	var zero T
	if m == nil {
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Mapping[T]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns a copy of the keys in traversal order.
func (m *Mapping[T]) Keys() []string {
	if m == nil {
		return []string{}
	}
	return slices.Clone(m.keys)
}

// Entries returns the key/value pairs in traversal order.
func (m *Mapping[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, m.Len())
	if m == nil {
		return out
	}
	for _, k := range m.keys {
		out = append(out, Entry[T]{Key: k, Value: m.values[k]})
	}
	return out
}

// With returns a copy of m with key set to value. An existing key keeps its
// position; a new key is appended.
func (m *Mapping[T]) With(key string, value T) *Mapping[T] {
	return NewMapping(append(m.Entries(), Entry[T]{Key: key, Value: value})...)
}

// MarshalJSON encodes the mapping as a JSON object with keys in traversal
// order.
func (m *Mapping[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("collections: encoding key %q: %w", e.Key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String returns a JSON representation of the mapping.
// It implements [fmt.Stringer].
func (m *Mapping[T]) String() string {
	b, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", m.Entries())
	}
	return string(b)
}
