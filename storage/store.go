package storage

/*
This file defines where cache entries physically live.

The store knows nothing about recency or expiry; it is a keyed bag of entries.
Ordering is the eviction policy's job and staleness is the engine's job.
It is not safe for concurrent use. The cache that owns it provides the locking.
*/

// Store is the interface used by the cache to keep and retrieve entries.
type Store[K comparable, V any] interface {
	// Get retrieves an entry by key.
	Get(K) (V, bool)

	// Put inserts or replaces an entry.
	Put(K, V)

	// Delete removes an entry. It reports whether the key was present.
	Delete(K) bool

	// Len returns how many entries are stored.
	Len() int

	// Clear removes all entries.
	Clear()
}

// mapStore is a Store backed by a plain Go map.
type mapStore[K comparable, V any] struct {
	data map[K]V
}

// NewMapStore returns an empty map-backed store.
func NewMapStore[K comparable, V any]() Store[K, V] {
	return &mapStore[K, V]{data: make(map[K]V)}
}

func (s *mapStore[K, V]) Get(key K) (V, bool) {
	v, ok := s.data[key]
	return v, ok
}

func (s *mapStore[K, V]) Put(key K, v V) {
	s.data[key] = v
}

func (s *mapStore[K, V]) Delete(key K) bool {
	if _, ok := s.data[key]; !ok {
		return false
	}
	delete(s.data, key)
	return true
}

func (s *mapStore[K, V]) Len() int {
	return len(s.data)
}

// Clear swaps in a fresh map so the old backing array can be collected.
func (s *mapStore[K, V]) Clear() {
	s.data = make(map[K]V)
}
