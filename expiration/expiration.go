// This file defines how cache entries expire over time.
package expiration

import "time"

/*
Strategy is the interface that all expiration rules must follow. Instead of hard-coding
expiration logic into the cache, we define a strategy so expiration behavior can be swapped easily.

Expiration is lazy: nothing runs on a timer. The cache asks IsExpired whenever it
touches an entry and acts on the answer.
*/
type Strategy interface {
	// ExpireAt computes the absolute expiry of an entry written at now with the
	// given ttl. The zero time means the entry never expires.
	ExpireAt(now time.Time, ttl time.Duration) time.Time

	// IsExpired reports whether an entry with the given expiry is stale at now.
	IsExpired(expireAt, now time.Time) bool
}
