// This file defines the removal listener.
// It lets the owner of a cache react when an entry leaves it,
// whether the cache pushed it out or the caller asked for it.
package removal

// Reason tells a Listener why an entry left the cache.
type Reason uint8

const (
	// Evicted means the entry was the least recently used one when the cache went over capacity.
	Evicted Reason = iota

	// Expired means the entry was found past its TTL and purged.
	Expired

	// Deleted means the caller removed the key explicitly.
	Deleted

	// Cleared means the whole cache was emptied.
	Cleared
)

// String returns a human readable name for the reason.
func (r Reason) String() string {
	switch r {
	case Evicted:
		return "evicted"
	case Expired:
		return "expired"
	case Deleted:
		return "deleted"
	case Cleared:
		return "cleared"
	default:
		return "unknown"
	}
}

/*
Listener is notified every time an entry is removed from the cache.

OnRemove runs synchronously inside the cache operation that caused the removal.
It MUST NOT call back into the same cache: a SafeCache still holds its lock at this point.
*/
type Listener[K comparable, V any] interface {
	OnRemove(key K, value V, reason Reason)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc[K comparable, V any] func(key K, value V, reason Reason)

// OnRemove calls f(key, value, reason).
func (f ListenerFunc[K, V]) OnRemove(key K, value V, reason Reason) {
	f(key, value, reason)
}
