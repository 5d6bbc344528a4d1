package eviction

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func keys[K comparable](p Policy[K]) []K {
	return slices.Collect(p.Keys())
}

func TestLRUOrder(t *testing.T) {
	l := NewLRU[string]()
	l.OnPut("a")
	l.OnPut("b")
	l.OnPut("c")

	require.Equal(t, []string{"a", "b", "c"}, keys[string](l))
	require.Equal(t, 3, l.Len())

	// A read moves the key to the most recently used end.
	l.OnGet("a")
	require.Equal(t, []string{"b", "c", "a"}, keys[string](l))

	// So does a rewrite of an existing key, without adding a node.
	l.OnPut("b")
	require.Equal(t, []string{"c", "a", "b"}, keys[string](l))
	require.Equal(t, 3, l.Len())

	// Touching an unknown key is a no-op.
	l.OnGet("missing")
	require.Equal(t, []string{"c", "a", "b"}, keys[string](l))
}

func TestLRUEvict(t *testing.T) {
	l := NewLRU[int]()

	_, ok := l.Evict()
	require.False(t, ok)

	for i := 1; i <= 3; i++ {
		l.OnPut(i)
	}
	l.OnGet(1)

	k, ok := l.Evict()
	require.True(t, ok)
	require.Equal(t, 2, k)

	k, ok = l.Evict()
	require.True(t, ok)
	require.Equal(t, 3, k)

	k, ok = l.Evict()
	require.True(t, ok)
	require.Equal(t, 1, k)

	_, ok = l.Evict()
	require.False(t, ok)
	require.Zero(t, l.Len())

	// The list is usable again after being drained.
	l.OnPut(9)
	require.Equal(t, []int{9}, keys[int](l))
}

func TestLRURemove(t *testing.T) {
	l := NewLRU[string]()
	for _, k := range []string{"a", "b", "c", "d"} {
		l.OnPut(k)
	}

	// Head, tail and middle removals.
	l.Remove("d")
	l.Remove("a")
	l.Remove("missing")
	require.Equal(t, []string{"b", "c"}, keys[string](l))

	l.Remove("b")
	l.Remove("c")
	require.Empty(t, keys[string](l))
	require.Zero(t, l.Len())
}

func TestLRUKeysRemoveWhileIterating(t *testing.T) {
	l := NewLRU[int]()
	for i := 0; i < 5; i++ {
		l.OnPut(i)
	}

	var seen []int
	for k := range l.Keys() {
		seen = append(seen, k)
		if k%2 == 0 {
			l.Remove(k)
		}
	}

	require.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	require.Equal(t, []int{1, 3}, keys[int](l))
}

func TestLRUKeysStopEarly(t *testing.T) {
	l := NewLRU[int]()
	for i := 0; i < 5; i++ {
		l.OnPut(i)
	}

	var seen []int
	for k := range l.Keys() {
		if k == 2 {
			break
		}
		seen = append(seen, k)
	}
	require.Equal(t, []int{0, 1}, seen)
}

func TestLRUClear(t *testing.T) {
	l := NewLRU[string]()
	l.OnPut("a")
	l.OnPut("b")

	l.Clear()
	l.Clear()
	require.Zero(t, l.Len())
	require.Empty(t, keys[string](l))

	l.OnPut("c")
	require.Equal(t, []string{"c"}, keys[string](l))
}
