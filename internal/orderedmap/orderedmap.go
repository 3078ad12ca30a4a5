package orderedmap

import (
	"errors"
	"iter"
)

var ErrDuplicateEntry = errors.New("duplicate entry")

// Map is a map that remembers insertion order. Range yields entries in
// the order they were first Set.
type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		keys: make(map[K]V),
	}
}

// Set stores a new entry, and fails if the key already exists.
func (m *Map[K, V]) Set(key K, value V) error {
	if _, exists := m.keys[key]; exists {
		return ErrDuplicateEntry
	}
	m.entries = append(m.entries, key)
	m.keys[key] = value
	return nil
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.keys[key]
	return ok
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.entries {
			v := m.keys[k]
			if !yield(k, v) {
				break
			}
		}
	}
}
