package cache

import (
	"errors"
	"fmt"
	"time"
)

const (
	// Unbounded disables a bound. As a capacity it means "no entry limit",
	// as a TTL it means "never expires".
	Unbounded = 0

	// DefaultExpiration, passed to PutWithTTL, selects the cache's default TTL.
	DefaultExpiration time.Duration = 0

	// NoExpiration, passed to PutWithTTL or used as the default TTL, means the
	// entry never expires.
	NoExpiration time.Duration = -1
)

var (
	// ErrInvalidConfig is returned by New when a bound is not a valid bound
	// value.
	ErrInvalidConfig = errors.New("invalid cache configuration")

	// ErrNoLoader is returned by GetOrLoad when the cache was built without a
	// Loader.
	ErrNoLoader = errors.New("cache has no loader")
)

// Config holds the two bounds of a cache. The zero value is a cache without
// a capacity limit whose entries never expire.
//
// The struct tags let binaries embed Config straight into their go-flags
// option struct.
type Config struct {
	// Capacity is the maximum number of entries kept. 0 means unbounded.
	Capacity int `long:"capacity" description:"Maximum number of cached entries, 0 for no limit"`

	// TTL is the default time-to-live applied to writes without an
	// explicit one. 0 (or -1) means entries never expire.
	TTL time.Duration `long:"ttl" description:"Default time-to-live of an entry, 0 for no expiry"`
}

// Validate checks that both bounds are valid.
func (c Config) Validate() error {
	if !validCapacity(c.Capacity) {
		return fmt.Errorf("%w: capacity %d is negative", ErrInvalidConfig,
			c.Capacity)
	}
	if !validTTL(c.TTL) {
		return fmt.Errorf("%w: ttl %v is negative", ErrInvalidConfig, c.TTL)
	}

	return nil
}

func validCapacity(n int) bool {
	return n >= 0
}

func validTTL(d time.Duration) bool {
	return d >= 0 || d == NoExpiration
}
