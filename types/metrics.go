package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache will call these methods whenever something happens.
*/
type Metrics interface {
	// Hit is called when Get finds a live value.
	Hit()

	// Miss is called when Get finds nothing, or only an expired entry.
	Miss()

	// Eviction is called when a key is removed because the cache went over capacity.
	Eviction()

	// Expire is called when an expired entry is discovered and purged.
	Expire()

	// Load is called every time the configured Loader is invoked.
	Load()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

It is the default, so the cache never has to check for a nil sink
before reporting an event.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}
func (NoopMetrics) Expire()   {}
func (NoopMetrics) Load()     {}
