package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	s := newTestStack(t, 1*KB, PolicyDefault)

	m := s.Metrics()
	assert.Equal(t, Metrics{Total: 1 * KB, Available: 1 * KB}, m)

	a := s.AllocBuffer(100, 4)
	b := s.AllocBuffer(50, 2)
	s.FreeBuffer(b)

	m = s.Metrics()
	assert.Equal(t, 100, m.Used)
	assert.Equal(t, 1*KB, m.Total)
	assert.Equal(t, 1*KB-100, m.Available)
	assert.Equal(t, 150, m.Peak, "peak tracks the highest cursor")
	assert.Equal(t, uint64(2), m.Allocations)
	assert.Equal(t, uint64(1), m.Frees)

	s.FreeBuffer(a)
	m = s.Metrics()
	assert.Zero(t, m.Used)
	assert.Equal(t, 150, m.Peak, "peak survives frees")
}

func TestMetrics_PeakSurvivesReset(t *testing.T) {
	s := newTestStack(t, 1*KB, PolicyDefault)

	s.AllocBuffer(300, 4)
	s.Reset()

	m := s.Metrics()
	assert.Zero(t, m.Used)
	assert.Equal(t, 300, m.Peak)
}

func TestMetrics_Utilization(t *testing.T) {
	s := newTestStack(t, 200, PolicyFast)

	s.AllocBuffer(50, 1)
	assert.InDelta(t, 0.25, s.Metrics().Utilization(), 1e-9)

	assert.Zero(t, Metrics{}.Utilization(), "zero total does not divide")
}

func TestMetrics_String(t *testing.T) {
	s := newTestStack(t, 100, PolicyFast)
	s.AllocBuffer(25, 1)

	got := s.Metrics().String()
	require.Contains(t, got, "used=25")
	require.Contains(t, got, "total=100")
	require.Contains(t, got, "util=0.25")
}
