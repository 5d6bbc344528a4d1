package cache

import (
	"context"
	"iter"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	api "github.com/krisalay/lru-ttl-cache/api"
)

/*
SafeCache wraps a Cache with one mutex guarding the whole store.

Every operation may mutate both the entry map and the recency order (even Get
and Peek, which purge expired entries), so a read/write lock would buy nothing.

Each method takes the lock and then behaves exactly like the Cache method of
the same name. Removal listeners run while the lock is held and must not call
back into the SafeCache. Metrics sinks must be safe for concurrent use, since
loads are reported outside the lock.
*/
type SafeCache[K comparable, V any] struct {
	mu    sync.Mutex
	cache *Cache[K, V]

	// flight prevents multiple goroutines from loading the same key
	// simultaneously.
	flight singleflight.Group

	// flights maps every key with a pending GetOrLoad to the singleflight
	// key its callers share. Guarded by mu.
	flights    map[K]*flightRef
	nextFlight uint64
}

// flightRef is the singleflight key of one cache key plus the number of
// GetOrLoad calls still using it.
type flightRef struct {
	id   string
	refs int
}

// NewSafe builds a SafeCache around a new Cache. It fails under the same
// conditions as New.
func NewSafe[K comparable, V any](cfg Config,
	opts ...Option[K, V]) (*SafeCache[K, V], error) {

	c, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	return &SafeCache[K, V]{
		cache:   c,
		flights: make(map[K]*flightRef),
	}, nil
}

// Get returns the live value for key and marks it most recently used.
func (s *SafeCache[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Get(key)
}

// Peek returns the live value for key without touching recency.
func (s *SafeCache[K, V]) Peek(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Peek(key)
}

// Contains reports whether key holds a live entry.
func (s *SafeCache[K, V]) Contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Contains(key)
}

// Put stores value under key with the default TTL.
func (s *SafeCache[K, V]) Put(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Put(key, value)
}

// PutWithTTL stores value under key with its own TTL.
func (s *SafeCache[K, V]) PutWithTTL(key K, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.PutWithTTL(key, value, ttl)
}

// Remove deletes key and reports whether it was present.
func (s *SafeCache[K, V]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Remove(key)
}

// Clear removes every entry.
func (s *SafeCache[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Clear()
}

// Len returns the number of stored entries, expired ones included.
func (s *SafeCache[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Len()
}

func (s *SafeCache[K, V]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Capacity()
}

// SetCapacity changes the bound and evicts down to it.
func (s *SafeCache[K, V]) SetCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.SetCapacity(n)
}

func (s *SafeCache[K, V]) TTL() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.TTL()
}

func (s *SafeCache[K, V]) SetTTL(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.SetTTL(d)
}

// PurgeExpired removes every expired entry and returns how many went.
func (s *SafeCache[K, V]) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.PurgeExpired()
}

// All yields a snapshot of the entries taken under the lock when iteration
// starts, least recently used first. The loop body may use the cache freely.
func (s *SafeCache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		keys, values := s.snapshot()
		for i := range keys {
			if !yield(keys[i], values[i]) {
				return
			}
		}
	}
}

// Keys yields the keys of a snapshot, in the order of All.
func (s *SafeCache[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		keys, _ := s.snapshot()
		for _, key := range keys {
			if !yield(key) {
				return
			}
		}
	}
}

// Values yields the values of a snapshot, in the order of All.
func (s *SafeCache[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		_, values := s.snapshot()
		for _, value := range values {
			if !yield(value) {
				return
			}
		}
	}
}

// ForEach calls fn(value, key) for every entry of a snapshot, in the order
// of All.
func (s *SafeCache[K, V]) ForEach(fn func(value V, key K)) {
	for key, value := range s.All() {
		fn(value, key)
	}
}

/*
GetOrLoad returns the live value for key, loading it on a miss.

BEHAVIOR:
---------
- Cache hit: same as Get
- Cache miss: the configured Loader is called and its value is stored with
  the default TTL. Concurrent misses for the same key share a single load.
- Loader errors are returned as-is and nothing is stored
- Without a Loader, a miss returns ErrNoLoader
*/
func (s *SafeCache[K, V]) GetOrLoad(ctx context.Context, key K) (V, error) {
	var zero V

	if v, ok := s.Get(key); ok {
		return v, nil
	}

	if !s.cache.engine.CanLoad() {
		return zero, ErrNoLoader
	}

	id := s.acquireFlight(key)
	defer s.releaseFlight(key)

	res, err, shared := s.flight.Do(id, func() (any, error) {
		// A flight that finished between our miss and this call may
		// already have stored the value.
		if v, ok := s.Peek(key); ok {
			return v, nil
		}

		v, err := s.cache.engine.Load(ctx, key)
		if err != nil {
			return nil, err
		}

		s.Put(key, v)

		return v, nil
	})
	if err != nil {
		log.Debugf("Loading %v failed: %v", key, err)
		return zero, err
	}

	log.Tracef("Loaded %v (shared=%v)", key, shared)

	v, _ := res.(V)
	return v, nil
}

func (s *SafeCache[K, V]) snapshot() ([]K, []V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]K, 0, s.cache.Len())
	values := make([]V, 0, s.cache.Len())
	for k, v := range s.cache.All() {
		keys = append(keys, k)
		values = append(values, v)
	}

	return keys, values
}

// acquireFlight returns the singleflight key for key. Callers racing on an
// equal key get the same id, while keys that merely print alike never do.
func (s *SafeCache[K, V]) acquireFlight(key K) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, ok := s.flights[key]
	if !ok {
		s.nextFlight++
		ref = &flightRef{id: strconv.FormatUint(s.nextFlight, 10)}
		s.flights[key] = ref
	}
	ref.refs++

	return ref.id
}

// releaseFlight drops one reference taken by acquireFlight.
func (s *SafeCache[K, V]) releaseFlight(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, ok := s.flights[key]
	if !ok {
		return
	}
	ref.refs--
	if ref.refs == 0 {
		delete(s.flights, key)
	}
}

// A compile-time check that SafeCache satisfies the public API.
var _ api.Cache[string, any] = (*SafeCache[string, any])(nil)
