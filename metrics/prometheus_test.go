package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCounters(t *testing.T) {
	p := NewPrometheus("test")

	p.Hit()
	p.Hit()
	p.Miss()
	p.Eviction()
	p.Expire()
	p.Expire()
	p.Expire()
	p.Load()

	require.Equal(t, 2.0, testutil.ToFloat64(p.hits))
	require.Equal(t, 1.0, testutil.ToFloat64(p.misses))
	require.Equal(t, 1.0, testutil.ToFloat64(p.evictions))
	require.Equal(t, 3.0, testutil.ToFloat64(p.expirations))
	require.Equal(t, 1.0, testutil.ToFloat64(p.loads))
}

func TestPrometheusRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus("test")
	require.NoError(t, reg.Register(p))

	size := 7
	require.NoError(t, reg.Register(NewSizeGauge("test", func() int {
		return size
	})))

	p.Miss()

	require.Equal(t, 5, testutil.CollectAndCount(p))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 6)

	// A second collector with the same names is rejected.
	require.Error(t, reg.Register(NewPrometheus("test")))
}
