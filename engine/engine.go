package engine

import (
	"context"
	"time"

	"github.com/lightningnetwork/lnd/clock"

	"github.com/krisalay/lru-ttl-cache/expiration"
	"github.com/krisalay/lru-ttl-cache/removal"
	"github.com/krisalay/lru-ttl-cache/types"
)

/*
CacheEngine is the "brain" of the cache system.

It is responsible for the "behavior" of the cache, NOT storage.
This acts as the policy layer.

It decides:
- What "now" is
- When data is expired
- How TTL turns into an absolute expiry on writes
- How data is loaded on cache miss
- Who hears about removed entries
- How metrics are recorded

It does NOT:
- Store data
- Handle locking
- Decide eviction order
*/
type CacheEngine[K comparable, V any] struct {
	// Clock is the time source. Expiry is a plain timestamp compared against
	// Clock.Now() whenever an entry is touched; no timers are armed.
	Clock clock.Clock

	// Expiration controls when a cache entry should be considered “too old”.
	Expiration expiration.Strategy

	// Loader is how the cache talks to the outside world when it does NOT have the data.
	// If nil, read-through loading is unavailable.
	Loader types.Loader[K, V]

	// Listener is told about every removed entry. Optional.
	Listener removal.Listener[K, V]

	// Metrics is how we keep track of what the cache is doing.
	Metrics types.Metrics
}

/*
NewCacheEngine creates a CacheEngine.

Nil clock, strategy and metrics are replaced by the wall clock,
ExpireAfterWrite and NoopMetrics.
*/
func NewCacheEngine[K comparable, V any](
	clk clock.Clock,
	exp expiration.Strategy,
	loader types.Loader[K, V],
	listener removal.Listener[K, V],
	metrics types.Metrics,
) *CacheEngine[K, V] {

	if clk == nil {
		clk = clock.NewDefaultClock()
	}
	if exp == nil {
		exp = expiration.ExpireAfterWrite{}
	}
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}

	return &CacheEngine[K, V]{
		Clock:      clk,
		Expiration: exp,
		Loader:     loader,
		Listener:   listener,
		Metrics:    metrics,
	}
}

// Now returns the current time according to the engine's clock.
func (e *CacheEngine[K, V]) Now() time.Time {
	return e.Clock.Now()
}

// IsExpired checks whether a cache entry is stale right now.
func (e *CacheEngine[K, V]) IsExpired(ent *types.Entry[V]) bool {
	return e.Expiration.IsExpired(ent.ExpireAt, e.Clock.Now())
}

/*
OnWrite stamps a freshly written (or rewritten) entry.

A non-positive ttl leaves the entry without an expiry.
*/
func (e *CacheEngine[K, V]) OnWrite(ent *types.Entry[V], ttl time.Duration) {
	now := e.Clock.Now()
	ent.CreatedAt = now
	ent.ExpireAt = e.Expiration.ExpireAt(now, ttl)
}

/*
OnRemove is called after an entry has been taken out of storage and out of
the eviction policy. It records the matching metric and notifies the listener.
*/
func (e *CacheEngine[K, V]) OnRemove(key K, ent *types.Entry[V],
	reason removal.Reason) {

	switch reason {
	case removal.Evicted:
		e.Metrics.Eviction()
	case removal.Expired:
		e.Metrics.Expire()
	}

	if e.Listener != nil {
		e.Listener.OnRemove(key, ent.Value, reason)
	}
}

// CanLoad reports whether a Loader is configured.
func (e *CacheEngine[K, V]) CanLoad() bool {
	return e.Loader != nil
}

/*
Load is used when the cache does NOT have the data.
This usually means:
- A database call
- A network request
*/
func (e *CacheEngine[K, V]) Load(ctx context.Context, key K) (V, error) {
	e.Metrics.Load()
	return e.Loader.Load(ctx, key)
}
