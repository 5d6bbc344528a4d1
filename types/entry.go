package types

import "time"

// Entry is one cached value together with its timestamps.
// Entries are owned by the cache and never handed out to callers.
type Entry[V any] struct {
	Value     V
	CreatedAt time.Time
	ExpireAt  time.Time // zero => no TTL
}
