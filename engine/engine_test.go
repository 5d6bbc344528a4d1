package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/stretchr/testify/require"

	"github.com/krisalay/lru-ttl-cache/expiration"
	"github.com/krisalay/lru-ttl-cache/removal"
	"github.com/krisalay/lru-ttl-cache/types"
)

var testTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type countingMetrics struct {
	hits, misses, evictions, expirations, loads int
}

func (m *countingMetrics) Hit()      { m.hits++ }
func (m *countingMetrics) Miss()     { m.misses++ }
func (m *countingMetrics) Eviction() { m.evictions++ }
func (m *countingMetrics) Expire()   { m.expirations++ }
func (m *countingMetrics) Load()     { m.loads++ }

type removed struct {
	key    string
	value  int
	reason removal.Reason
}

func TestNewCacheEngineDefaults(t *testing.T) {
	e := NewCacheEngine[string, int](nil, nil, nil, nil, nil)

	require.NotNil(t, e.Clock)
	require.IsType(t, expiration.ExpireAfterWrite{}, e.Expiration)
	require.IsType(t, types.NoopMetrics{}, e.Metrics)
	require.False(t, e.CanLoad())

	// Removal without a listener must not panic.
	e.OnRemove("k", &types.Entry[int]{Value: 1}, removal.Deleted)
}

func TestEngineExpiry(t *testing.T) {
	clk := clock.NewTestClock(testTime)
	e := NewCacheEngine[string, int](clk, nil, nil, nil, nil)

	ent := &types.Entry[int]{Value: 1}
	e.OnWrite(ent, 100*time.Millisecond)
	require.Equal(t, testTime, ent.CreatedAt)
	require.Equal(t, testTime.Add(100*time.Millisecond), ent.ExpireAt)
	require.False(t, e.IsExpired(ent))

	clk.SetTime(testTime.Add(111 * time.Millisecond))
	require.True(t, e.IsExpired(ent))

	// A rewrite without a TTL clears the expiry.
	e.OnWrite(ent, 0)
	require.True(t, ent.ExpireAt.IsZero())
	require.Equal(t, testTime.Add(111*time.Millisecond), ent.CreatedAt)

	clk.SetTime(testTime.Add(24 * time.Hour))
	require.False(t, e.IsExpired(ent))
}

func TestEngineOnRemove(t *testing.T) {
	var (
		m   countingMetrics
		got []removed
	)
	listener := removal.ListenerFunc[string, int](
		func(k string, v int, r removal.Reason) {
			got = append(got, removed{k, v, r})
		},
	)
	e := NewCacheEngine[string, int](nil, nil, nil, listener, &m)

	e.OnRemove("a", &types.Entry[int]{Value: 1}, removal.Evicted)
	e.OnRemove("b", &types.Entry[int]{Value: 2}, removal.Expired)
	e.OnRemove("c", &types.Entry[int]{Value: 3}, removal.Deleted)
	e.OnRemove("d", &types.Entry[int]{Value: 4}, removal.Cleared)

	require.Equal(t, 1, m.evictions)
	require.Equal(t, 1, m.expirations)
	require.Equal(t, []removed{
		{"a", 1, removal.Evicted},
		{"b", 2, removal.Expired},
		{"c", 3, removal.Deleted},
		{"d", 4, removal.Cleared},
	}, got)
}

func TestEngineLoad(t *testing.T) {
	var m countingMetrics
	errBoom := errors.New("boom")

	loader := types.LoaderFunc[string, int](
		func(_ context.Context, key string) (int, error) {
			if key == "bad" {
				return 0, errBoom
			}
			return len(key), nil
		},
	)
	e := NewCacheEngine[string, int](nil, nil, loader, nil, &m)
	require.True(t, e.CanLoad())

	v, err := e.Load(context.Background(), "four")
	require.NoError(t, err)
	require.Equal(t, 4, v)

	_, err = e.Load(context.Background(), "bad")
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 2, m.loads)
}

func TestReasonString(t *testing.T) {
	require.Equal(t, "evicted", removal.Evicted.String())
	require.Equal(t, "expired", removal.Expired.String())
	require.Equal(t, "deleted", removal.Deleted.String())
	require.Equal(t, "cleared", removal.Cleared.String())
	require.Equal(t, "unknown", removal.Reason(42).String())
}
