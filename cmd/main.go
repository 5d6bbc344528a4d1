package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/btcsuite/btclog"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cache "github.com/krisalay/lru-ttl-cache"
	"github.com/krisalay/lru-ttl-cache/metrics"
	"github.com/krisalay/lru-ttl-cache/removal"
	"github.com/krisalay/lru-ttl-cache/types"
)

// config is the demo's command line.
type config struct {
	Cache cache.Config `group:"Cache" namespace:"cache"`

	DebugLevel    string `long:"debuglevel" default:"info" description:"Logging level: trace, debug, info, warn, error, critical or off"`
	MetricsListen string `long:"metricslisten" description:"After the demo, serve Prometheus metrics on this address (e.g. localhost:9090) until interrupted"`
}

// ================= BACKING STORE =================

type InMemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

var errUnknownKey = errors.New("unknown key")

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{data: make(map[string]string)}
}

func (s *InMemoryStore) Load(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return "", errUnknownKey
	}
	return v, nil
}

func (s *InMemoryStore) Put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
}

// ================= MAIN =================

func main() {
	cfg := config{
		Cache: cache.Config{Capacity: 20, TTL: 2 * time.Second},
	}
	if _, err := flags.Parse(&cfg); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	// ---------------- Logging ----------------
	backend := btclog.NewBackend(os.Stdout)
	level, ok := btclog.LevelFromString(cfg.DebugLevel)
	if !ok {
		return fmt.Errorf("unknown debug level %q", cfg.DebugLevel)
	}

	cacheLog := backend.Logger("LRUC")
	cacheLog.SetLevel(level)
	cache.UseLogger(cacheLog)

	log := backend.Logger("DEMO")
	log.SetLevel(level)

	fmt.Println("\n==================== SYSTEM BOOT ====================")
	fmt.Println("EVICTION POLICY : LRU")
	fmt.Println("TTL STRATEGY    : ExpireAfterWrite (lazy)")
	fmt.Println("CAPACITY        :", cfg.Cache.Capacity)
	fmt.Println("DEFAULT TTL     :", cfg.Cache.TTL)

	// ---------------- Backing Store ----------------
	store := NewInMemoryStore()
	store.Put("a", "alpha")
	store.Put("b", "beta")

	// ---------------- Metrics ----------------
	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheus("demo")
	if err := reg.Register(m); err != nil {
		return err
	}

	// ---------------- Cache ----------------
	listener := removal.ListenerFunc[string, string](
		func(key, _ string, reason removal.Reason) {
			log.Debugf("Removed %s (%v)", key, reason)
		},
	)
	c, err := cache.NewSafe(
		cfg.Cache,
		cache.WithLoader[string, string](store),
		cache.WithMetrics[string, string](m),
		cache.WithRemovalListener[string, string](listener),
	)
	if err != nil {
		return err
	}
	if err := reg.Register(metrics.NewSizeGauge("demo", c.Len)); err != nil {
		return err
	}

	ctx := context.Background()

	// ====================================================
	fmt.Println("\n==================== 1) CAPACITY ====================")
	small, err := cache.New[string, string](cache.Config{Capacity: 2})
	if err != nil {
		return err
	}
	small.Put("foo", "bar")
	small.Put("hoge", "hogehoge")
	small.Put("fuga", "fugafuga")
	small.Put("piyo", "piyopiyo")
	fmt.Println("CACHE  → size =", small.Len())
	small.ForEach(func(value, key string) {
		fmt.Printf("CACHE  → %s = %s\n", key, value)
	})

	// ====================================================
	fmt.Println("\n==================== 2) CACHE MISS ====================")
	v, err := c.GetOrLoad(ctx, "a")
	if err != nil {
		return err
	}
	fmt.Println("CACHE  → GET a =", v)

	// ====================================================
	fmt.Println("\n==================== 3) CACHE HIT ====================")
	v, err = c.GetOrLoad(ctx, "a")
	if err != nil {
		return err
	}
	fmt.Println("CACHE  → GET a =", v)

	// ====================================================
	fmt.Println("\n==================== 4) TTL EXPIRATION ====================")
	c.PutWithTTL("x", "temp-value", 100*time.Millisecond)
	fmt.Println("CACHE  → PUT x (TTL = 100ms)")
	time.Sleep(150 * time.Millisecond)
	fmt.Println("CACHE  → size before read =", c.Len())
	_, found := c.Get("x")
	fmt.Println("CACHE  → GET x after TTL found =", found)
	fmt.Println("CACHE  → size after read =", c.Len())

	// ====================================================
	fmt.Println("\n==================== 5) SINGLEFLIGHT ====================")
	wg := sync.WaitGroup{}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			val, err := c.GetOrLoad(ctx, "b")
			fmt.Printf("GOROUTINE-%d → GET b = %v (err=%v)\n", id, val, err)
		}(i)
	}
	wg.Wait()

	// ====================================================
	fmt.Println("\n==================== 6) EVICTION ====================")
	for i := 0; i < 50; i++ {
		c.Put(fmt.Sprintf("k%d", i), fmt.Sprint(i))
	}
	fmt.Println("CACHE  → size after 50 writes =", c.Len())
	fmt.Println("CACHE  → a still cached =", c.Contains("a"))

	// ====================================================
	fmt.Println("\n==================== 7) REMOVE ====================")
	fmt.Println("CACHE  → REMOVE k49 =", c.Remove("k49"))
	fmt.Println("CACHE  → k49 cached =", c.Contains("k49"))

	// ====================================================
	if err := printMetrics(reg); err != nil {
		return err
	}

	if cfg.MetricsListen == "" {
		return nil
	}

	log.Infof("Prometheus exporter started on %v/metrics", cfg.MetricsListen)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return http.ListenAndServe(cfg.MetricsListen, mux)
}

func printMetrics(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	fmt.Println("\n==================== METRICS ====================")
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			value := metric.GetCounter().GetValue()
			if metric.GetGauge() != nil {
				value = metric.GetGauge().GetValue()
			}
			fmt.Printf("%-32s: %v\n", f.GetName(), value)
		}
	}

	return nil
}

var _ types.Loader[string, string] = (*InMemoryStore)(nil)
