package cache

import (
	"iter"
	"time"
)

/*
Cache defines the PUBLIC API of our in-memory cache.
This is a contract that guarantees certain behaviors, without exposing internals.
The details (recency list, expiry strategy, storage, locking) are hidden behind this interface.
*/
type Cache[K comparable, V any] interface {

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		-------------------
		1. If the key exists in cache and is NOT expired:
		   - The key becomes the most recently used one
		   - Its expiry is left untouched
		   - Return the value and true (cache hit)

		2. If the key does NOT exist or is expired:
		   - An expired entry is purged on the spot
		   - Return the zero value and false (cache miss)
	*/
	Get(key K) (V, bool)

	/*
		Peek is Get without the recency update.
		Expired entries are still reported absent (and purged).
	*/
	Peek(key K) (V, bool)

	/*
		Contains reports whether Get would return a value.

		It applies the same expiry check but does NOT touch the recency order.
	*/
	Contains(key K) bool

	/*
		Put stores a key-value pair using the default TTL.

		BEHAVIOR:
		---------
		- Inserts a new entry or replaces value and expiry of an existing one
		- The key becomes the most recently used one
		- If the cache is now over capacity, least recently used keys are evicted
	*/
	Put(key K, value V)

	/*
		PutWithTTL stores a key-value pair with an explicit time-to-live (TTL).

		TTL (Time-To-Live):
		-------------------
		- DefaultExpiration (0) falls back to the cache default
		- A positive TTL is counted from now
		- NoExpiration (any negative TTL) means the entry never expires
		- Expired keys are lazily removed on access
	*/
	PutWithTTL(key K, value V, ttl time.Duration)

	/*
		Remove deletes a key from the cache immediately, expired or not.
		It reports whether a removal happened.

		This operation is idempotent.
	*/
	Remove(key K) bool

	// Clear removes every entry. Calling it on an empty cache is fine.
	Clear()

	/*
		Len returns the number of entries physically held.

		Entries that have expired but were not touched since are still counted.
	*/
	Len() int

	// Capacity returns the current entry limit, 0 when unbounded.
	Capacity() int

	/*
		SetCapacity replaces the entry limit and evicts least recently used
		keys right away if the cache is now over it.
		A negative value is silently ignored.
	*/
	SetCapacity(n int)

	// TTL returns the default time-to-live.
	TTL() time.Duration

	/*
		SetTTL replaces the default time-to-live for future writes.
		Entries already stored keep their expiry.
		An invalid value is silently ignored.
	*/
	SetTTL(d time.Duration)

	/*
		All yields every physically present entry, least recently used first.

		Like Len, it does not filter expired entries.
		Each call starts a fresh walk over the current state.
	*/
	All() iter.Seq2[K, V]

	// Keys yields the keys of All, in the same order.
	Keys() iter.Seq[K]

	// Values yields the values of All, in the same order.
	Values() iter.Seq[V]

	// ForEach calls fn(value, key) for every entry in the order of All.
	ForEach(fn func(value V, key K))

	// PurgeExpired removes every expired entry now and returns how many were removed.
	PurgeExpired() int
}
