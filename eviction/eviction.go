package eviction

import "iter"

/*
This file defines how the cache decides what to remove when it runs out of space.
*/

/*
Policy is the interface the cache uses to track recency.

The cache does NOT care how the order is kept internally.
It only calls these methods.
*/
type Policy[K comparable] interface {
	// OnGet is called whenever a key is read from the cache.
	// The key becomes the most recently used one.
	OnGet(K)

	// OnPut is called whenever a key is written, new or not.
	// Either way the key ends up as the most recently used one.
	OnPut(K)

	// Remove is called when a key leaves the cache for any reason
	// other than Evict.
	Remove(K)

	// Evict removes and returns the least recently used key.
	// The boolean is false when nothing is tracked.
	Evict() (K, bool)

	// Keys yields every tracked key, least recently used first.
	Keys() iter.Seq[K]

	// Len returns the number of tracked keys.
	Len() int

	// Clear forgets every key.
	Clear()
}
