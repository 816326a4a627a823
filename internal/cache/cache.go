// Package cache provides a generic keyed resource store.
//
// Unlike an LRU, the store never evicts on its own: entries live until they
// are explicitly deleted or overwritten. The texture paint cache depends on
// this: a cached paint must stay valid for as long as the UI side holds the
// texture id, regardless of access patterns.
package cache

// Store is a generic keyed store with explicit lifetime management.
//
// Store is owned by exactly one renderer instance and is not safe for
// concurrent use; all access must happen on one logical thread of control.
type Store[K comparable, V any] struct {
	entries map[K]V
}

// New creates an empty store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		entries: make(map[K]V),
	}
}

// Get retrieves a value from the store.
// Returns (value, true) if found, (zero, false) otherwise.
func (s *Store[K, V]) Get(key K) (V, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Set stores a value, replacing any existing entry for the key.
func (s *Store[K, V]) Set(key K, value V) {
	s.entries[key] = value
}

// Delete removes an entry from the store.
// Returns true if the entry was found and removed; deleting an absent key
// is a no-op.
func (s *Store[K, V]) Delete(key K) bool {
	if _, ok := s.entries[key]; ok {
		delete(s.entries, key)
		return true
	}
	return false
}

// Contains reports whether the store has an entry for the key.
func (s *Store[K, V]) Contains(key K) bool {
	_, ok := s.entries[key]
	return ok
}

// Len returns the number of entries in the store.
func (s *Store[K, V]) Len() int {
	return len(s.entries)
}

// Keys returns the stored keys in unspecified order.
func (s *Store[K, V]) Keys() []K {
	keys := make([]K, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

// Clear removes all entries from the store.
func (s *Store[K, V]) Clear() {
	clear(s.entries)
}
