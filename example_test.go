package cache_test

import (
	"fmt"
	"time"

	"github.com/lightningnetwork/lnd/clock"

	cache "github.com/krisalay/lru-ttl-cache"
)

func ExampleNew() {
	c, err := cache.New[string, string](cache.Config{Capacity: 2})
	if err != nil {
		panic(err)
	}

	c.Put("foo", "bar")
	c.Put("hoge", "hogehoge")
	c.Put("fuga", "fugafuga")
	c.Put("piyo", "piyopiyo")

	fmt.Println("size:", c.Len())
	c.ForEach(func(value, key string) {
		fmt.Println(key, "=", value)
	})
	// Output: size: 2
	// fuga = fugafuga
	// piyo = piyopiyo
}

func ExampleCache_PutWithTTL() {
	clk := clock.NewTestClock(time.Unix(0, 0))
	c, err := cache.New(
		cache.Config{}, cache.WithClock[string, string](clk),
	)
	if err != nil {
		panic(err)
	}

	c.PutWithTTL("hoge", "hogehoge", 100*time.Millisecond)

	v, ok := c.Get("hoge")
	fmt.Println("v", v, "ok", ok)

	clk.SetTime(clk.Now().Add(111 * time.Millisecond))

	v, ok = c.Get("hoge")
	fmt.Println("v", v, "ok", ok)
	// Output: v hogehoge ok true
	// v  ok false
}
