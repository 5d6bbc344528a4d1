package cache_test

import (
	"fmt"
	"testing"

	cache "github.com/krisalay/lru-ttl-cache"
)

func newBenchmarkCache(b *testing.B) *cache.SafeCache[string, int] {
	c, err := cache.NewSafe[string, int](cache.Config{Capacity: 100000})
	if err != nil {
		b.Fatalf("new cache: %v", err)
	}
	return c
}

//
// ================= SINGLE THREAD BENCH =================
//

func BenchmarkCacheGetHit(b *testing.B) {
	c, err := cache.New[string, int](cache.Config{})
	if err != nil {
		b.Fatalf("new cache: %v", err)
	}
	c.Put("key", 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key")
	}
}

func BenchmarkCacheGetMiss(b *testing.B) {
	c, err := cache.New[string, int](cache.Config{})
	if err != nil {
		b.Fatalf("new cache: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(fmt.Sprintf("miss-%d", i))
	}
}

func BenchmarkCachePutEvict(b *testing.B) {
	c, err := cache.New[int, int](cache.Config{Capacity: 1024})
	if err != nil {
		b.Fatalf("new cache: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(i, i)
	}
}

//
// ================= PARALLEL BENCH =================
//

func BenchmarkSafeCacheParallelGet(b *testing.B) {
	c := newBenchmarkCache(b)
	for i := 0; i < 1000; i++ {
		c.Put(fmt.Sprintf("key-%d", i), i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Get("key-42")
		}
	})
}

func BenchmarkSafeCacheParallelPut(b *testing.B) {
	c := newBenchmarkCache(b)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			c.Put(fmt.Sprintf("key-%d", i), i)
			i++
		}
	})
}
