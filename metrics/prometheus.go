// Package metrics exports cache events to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/krisalay/lru-ttl-cache/types"
)

// Prometheus counts cache events with Prometheus counters. It implements
// types.Metrics and prometheus.Collector, so it can be handed to the cache
// and registered in one go. Counters are safe for concurrent use.
type Prometheus struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	evictions   prometheus.Counter
	expirations prometheus.Counter
	loads       prometheus.Counter
}

// NewPrometheus creates the counters under the given namespace, e.g.
// "<namespace>_cache_hits_total".
func NewPrometheus(namespace string) *Prometheus {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      name,
			Help:      help,
		})
	}

	return &Prometheus{
		hits: counter(
			"hits_total", "Number of reads that found a live value.",
		),
		misses: counter(
			"misses_total", "Number of reads that found nothing.",
		),
		evictions: counter(
			"evictions_total",
			"Number of entries evicted to stay within capacity.",
		),
		expirations: counter(
			"expirations_total",
			"Number of expired entries purged.",
		),
		loads: counter(
			"loads_total", "Number of loader invocations.",
		),
	}
}

func (p *Prometheus) Hit()      { p.hits.Inc() }
func (p *Prometheus) Miss()     { p.misses.Inc() }
func (p *Prometheus) Eviction() { p.evictions.Inc() }
func (p *Prometheus) Expire()   { p.expirations.Inc() }
func (p *Prometheus) Load()     { p.loads.Inc() }

// Describe implements prometheus.Collector.
func (p *Prometheus) Describe(ch chan<- *prometheus.Desc) {
	for _, c := range p.counters() {
		c.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (p *Prometheus) Collect(ch chan<- prometheus.Metric) {
	for _, c := range p.counters() {
		c.Collect(ch)
	}
}

func (p *Prometheus) counters() []prometheus.Counter {
	return []prometheus.Counter{
		p.hits, p.misses, p.evictions, p.expirations, p.loads,
	}
}

// NewSizeGauge returns a gauge reporting size() on every scrape, typically
// a cache's Len method.
func NewSizeGauge(namespace string, size func() int) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Number of entries physically held, expired ones included.",
		},
		func() float64 {
			return float64(size())
		},
	)
}

var (
	_ types.Metrics        = (*Prometheus)(nil)
	_ prometheus.Collector = (*Prometheus)(nil)
)
