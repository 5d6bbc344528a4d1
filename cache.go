package cache

import (
	"iter"
	"time"

	api "github.com/krisalay/lru-ttl-cache/api"
	"github.com/krisalay/lru-ttl-cache/engine"
	"github.com/krisalay/lru-ttl-cache/eviction"
	"github.com/krisalay/lru-ttl-cache/removal"
	"github.com/krisalay/lru-ttl-cache/storage"
	"github.com/krisalay/lru-ttl-cache/types"
)

/*
Cache is the main cache implementation.

This struct is the orchestrator that connects:
- storage (key → entry)
- eviction (recency order)
- the engine (clock, expiry, listener, metrics)

Cache is NOT safe for concurrent use. Wrap it in a SafeCache, or guard every
call with one lock, when more than one goroutine touches it.
*/
type Cache[K comparable, V any] struct {
	// capacity is the maximum number of entries. Unbounded (0) means no limit.
	capacity int

	// ttl is the default time-to-live applied by Put.
	ttl time.Duration

	// store holds the entries themselves.
	store storage.Store[K, *types.Entry[V]]

	// eviction keeps every physically present key in recency order,
	// including expired keys nobody has touched yet.
	eviction eviction.Policy[K]

	// engine contains the "rules" of the cache.
	engine *engine.CacheEngine[K, V]
}

// New builds an empty cache with the given bounds. If either bound is
// invalid, New returns an error wrapping ErrInvalidConfig and no cache.
func New[K comparable, V any](cfg Config, opts ...Option[K, V]) (*Cache[K, V],
	error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options[K, V]
	for _, opt := range opts {
		opt(&o)
	}

	c := &Cache[K, V]{
		capacity: cfg.Capacity,
		ttl:      cfg.TTL,
		store:    storage.NewMapStore[K, *types.Entry[V]](),
		eviction: eviction.NewLRU[K](),
		engine: engine.NewCacheEngine(
			o.clock, o.expiration, o.loader, o.listener, o.metrics,
		),
	}

	log.Debugf("Created cache with capacity=%d ttl=%v", c.capacity, c.ttl)

	return c, nil
}

// Put stores value under key using the default TTL.
func (c *Cache[K, V]) Put(key K, value V) {
	c.PutWithTTL(key, value, DefaultExpiration)
}

// PutWithTTL stores value under key. DefaultExpiration selects the cache
// default, a positive ttl is counted from now and a negative one means the
// entry never expires.
func (c *Cache[K, V]) PutWithTTL(key K, value V, ttl time.Duration) {
	if ttl == DefaultExpiration {
		ttl = c.ttl
	}

	ent, ok := c.store.Get(key)
	if !ok {
		ent = &types.Entry[V]{}
		c.store.Put(key, ent)
	}
	ent.Value = value

	c.engine.OnWrite(ent, ttl)
	c.eviction.OnPut(key)

	c.enforceCapacity()
}

// Get returns the live value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	ent, ok := c.lookup(key)
	if !ok {
		c.engine.Metrics.Miss()

		var zero V
		return zero, false
	}

	c.engine.Metrics.Hit()
	c.eviction.OnGet(key)

	return ent.Value, true
}

// Peek returns the live value for key without changing its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	ent, ok := c.lookup(key)
	if !ok {
		var zero V
		return zero, false
	}

	return ent.Value, true
}

// Contains reports whether key holds a live value. The recency order is
// left alone.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.lookup(key)
	return ok
}

// Remove deletes key whether or not it has expired.
func (c *Cache[K, V]) Remove(key K) bool {
	ent, ok := c.store.Get(key)
	if !ok {
		return false
	}

	c.remove(key, ent, removal.Deleted)

	return true
}

// Clear removes every entry, least recently used first as far as the
// removal listener is concerned.
func (c *Cache[K, V]) Clear() {
	if c.engine.Listener != nil {
		for key := range c.eviction.Keys() {
			ent, _ := c.store.Get(key)
			c.engine.OnRemove(key, ent, removal.Cleared)
		}
	}

	c.store.Clear()
	c.eviction.Clear()
}

// Len returns the number of entries physically held, expired ones included.
func (c *Cache[K, V]) Len() int {
	return c.store.Len()
}

// Capacity returns the entry limit, Unbounded when there is none.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// SetCapacity replaces the entry limit and evicts down to it right away.
// Negative values are ignored.
func (c *Cache[K, V]) SetCapacity(n int) {
	if !validCapacity(n) {
		log.Debugf("Ignoring invalid capacity %d", n)
		return
	}

	log.Debugf("Changing capacity from %d to %d", c.capacity, n)

	c.capacity = n
	c.enforceCapacity()
}

// TTL returns the default time-to-live.
func (c *Cache[K, V]) TTL() time.Duration {
	return c.ttl
}

// SetTTL replaces the default time-to-live for future writes. Invalid
// values are ignored.
func (c *Cache[K, V]) SetTTL(d time.Duration) {
	if !validTTL(d) {
		log.Debugf("Ignoring invalid ttl %v", d)
		return
	}

	c.ttl = d
}

// All yields every physically present entry, least recently used first.
// Expired entries that have not been purged yet are included. The loop body
// may remove the key it was just handed, but nothing else.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key := range c.eviction.Keys() {
			ent, ok := c.store.Get(key)
			if !ok {
				continue
			}
			if !yield(key, ent.Value) {
				return
			}
		}
	}
}

// Keys yields the keys of All in the same order.
func (c *Cache[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range c.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values yields the values of All in the same order.
func (c *Cache[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range c.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// ForEach calls fn(value, key) for every entry in the order of All.
func (c *Cache[K, V]) ForEach(fn func(value V, key K)) {
	for key, value := range c.All() {
		fn(value, key)
	}
}

// PurgeExpired removes every expired entry and returns how many went.
func (c *Cache[K, V]) PurgeExpired() int {
	purged := 0
	for key := range c.eviction.Keys() {
		ent, ok := c.store.Get(key)
		if !ok || !c.engine.IsExpired(ent) {
			continue
		}

		c.remove(key, ent, removal.Expired)
		purged++
	}

	if purged > 0 {
		log.Debugf("Purged %d expired entries", purged)
	}

	return purged
}

// lookup returns the entry for key if it is present and live. An expired
// entry is purged as soon as it is found.
func (c *Cache[K, V]) lookup(key K) (*types.Entry[V], bool) {
	ent, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}

	if c.engine.IsExpired(ent) {
		log.Tracef("Entry %v expired at %v", key, ent.ExpireAt)

		c.remove(key, ent, removal.Expired)
		return nil, false
	}

	return ent, true
}

// remove takes key out of storage and the recency list, then reports it.
func (c *Cache[K, V]) remove(key K, ent *types.Entry[V],
	reason removal.Reason) {

	c.store.Delete(key)
	c.eviction.Remove(key)
	c.engine.OnRemove(key, ent, reason)
}

// enforceCapacity evicts least recently used keys until the cache fits its
// capacity again.
func (c *Cache[K, V]) enforceCapacity() {
	if c.capacity == Unbounded {
		return
	}

	for overflow := c.store.Len() - c.capacity; overflow > 0; overflow-- {
		key, ok := c.eviction.Evict()
		if !ok {
			return
		}

		ent, _ := c.store.Get(key)
		c.store.Delete(key)

		log.Tracef("Evicted %v (capacity %d)", key, c.capacity)

		c.engine.OnRemove(key, ent, removal.Evicted)
	}
}

// A compile-time check that Cache satisfies the public API.
var _ api.Cache[string, any] = (*Cache[string, any])(nil)
