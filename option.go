package cache

import (
	"github.com/lightningnetwork/lnd/clock"

	"github.com/krisalay/lru-ttl-cache/expiration"
	"github.com/krisalay/lru-ttl-cache/removal"
	"github.com/krisalay/lru-ttl-cache/types"
)

// options collects the optional collaborators of a cache before the engine
// is built.
type options[K comparable, V any] struct {
	clock      clock.Clock
	expiration expiration.Strategy
	loader     types.Loader[K, V]
	listener   removal.Listener[K, V]
	metrics    types.Metrics
}

// Option configures optional behavior of a cache.
type Option[K comparable, V any] func(*options[K, V])

// WithClock sets the time source used for expiry. Defaults to the wall
// clock.
func WithClock[K comparable, V any](clk clock.Clock) Option[K, V] {
	return func(o *options[K, V]) {
		o.clock = clk
	}
}

// WithExpiration replaces the default ExpireAfterWrite strategy.
func WithExpiration[K comparable, V any](s expiration.Strategy) Option[K, V] {
	return func(o *options[K, V]) {
		o.expiration = s
	}
}

// WithLoader sets the Loader used by SafeCache.GetOrLoad.
func WithLoader[K comparable, V any](l types.Loader[K, V]) Option[K, V] {
	return func(o *options[K, V]) {
		o.loader = l
	}
}

// WithRemovalListener registers a listener for removed entries.
func WithRemovalListener[K comparable, V any](
	l removal.Listener[K, V]) Option[K, V] {

	return func(o *options[K, V]) {
		o.listener = l
	}
}

// WithMetrics sets the sink for hit, miss, eviction, expiry and load events.
func WithMetrics[K comparable, V any](m types.Metrics) Option[K, V] {
	return func(o *options[K, V]) {
		o.metrics = m
	}
}
