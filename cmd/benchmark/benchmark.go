package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	cache "github.com/krisalay/lru-ttl-cache"
)

// ================= BENCHMARK =================

func main() {
	fmt.Println("\n================ CACHE LOAD BENCHMARK =================")

	// ---------------- Cache Config ----------------
	const (
		capacity    = 200000
		preloadKeys = 100000
		keySpace    = 300000 // wider than capacity, so writes evict
		goroutines  = 200
		opsPerG     = 5000
		writeEvery  = 10 // one write per ten operations
	)

	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Capacity     :", capacity)
	fmt.Println("Preload Keys :", preloadKeys)
	fmt.Println("Key Space    :", keySpace)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops/Goroutine:", opsPerG)
	fmt.Println("Write Ratio  :", fmt.Sprintf("1/%d", writeEvery))
	fmt.Println("---------------------------------")

	c, err := cache.NewSafe[string, int](cache.Config{
		Capacity: capacity,
		TTL:      60 * time.Second,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// ---------------- Preload Cache ----------------
	fmt.Println("Preloading cache...")
	for i := 0; i < preloadKeys; i++ {
		c.Put(fmt.Sprintf("key-%d", i), i)
	}
	fmt.Println("Preload complete.")

	// ---------------- Load Test ----------------
	fmt.Println("Running concurrency benchmark...")

	start := time.Now()

	var (
		g    errgroup.Group
		hits = make([]int, goroutines)
	)
	for i := 0; i < goroutines; i++ {
		g.Go(func() error {
			for j := 0; j < opsPerG; j++ {
				n := (i*opsPerG + j) % keySpace
				key := fmt.Sprintf("key-%d", n)

				if j%writeEvery == 0 {
					c.Put(key, n)
					continue
				}
				if _, ok := c.Get(key); ok {
					hits[i]++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	duration := time.Since(start)
	totalOps := goroutines * opsPerG

	totalHits := 0
	for _, h := range hits {
		totalHits += h
	}
	reads := totalOps - totalOps/writeEvery

	fmt.Println("\n================ RESULTS =================")
	fmt.Printf("Total Operations : %d\n", totalOps)
	fmt.Printf("Total Time       : %v\n", duration)
	fmt.Printf("Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
	fmt.Printf("Hit Ratio        : %.2f%%\n", 100*float64(totalHits)/float64(reads))
	fmt.Printf("Final Size       : %d\n", c.Len())
	fmt.Println("=========================================")
}
