// Package cache offers a bounded, in-memory least-recently-used cache with
// per-entry time-to-live.
//
// Two forces remove entries. The capacity limit evicts the least recently
// used keys as soon as the cache holds more entries than allowed, right
// after the write or capacity change that caused it. The time-to-live is
// checked lazily: an expired entry is treated as absent by Get, Peek and
// Contains and is purged when one of them finds it. Nothing runs in the
// background.
//
// # Initialization
//
// The zero Config gives a cache without a capacity limit whose entries never
// expire:
//
//	c, err := cache.New[string, string](cache.Config{})
//
// Bounds are set through Config and can be changed later:
//
//	c, err := cache.New[string, []byte](cache.Config{
//		Capacity: 1000,
//		TTL:      5 * time.Minute,
//	})
//	c.SetCapacity(500) // evicts down to 500 entries right away
//
// # Recency
//
// Put and Get make a key the most recently used one. Peek and Contains
// observe without touching the order. Len, All and ForEach report what is
// physically stored, including expired entries nobody has touched yet; call
// PurgeExpired to drop those on demand.
//
// # Concurrency
//
// Cache is not safe for concurrent use. SafeCache wraps it with a single
// mutex and adds GetOrLoad, a read-through helper that deduplicates
// concurrent loads of the same key.
package cache
