package arena

import "fmt"

// Metrics is a point-in-time snapshot of an arena's usage counters.
type Metrics struct {
	Used        int    // bytes below the cursor
	Total       int    // arena capacity
	Available   int    // Total - Used
	Peak        int    // highest cursor value observed
	Allocations uint64 // total successful allocations
	Frees       uint64 // total successful frees
}

// Utilization returns Used/Total in [0, 1].
func (m Metrics) Utilization() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Used) / float64(m.Total)
}

func (m Metrics) String() string {
	return fmt.Sprintf(
		"used=%d total=%d available=%d peak=%d allocs=%d frees=%d util=%.2f",
		m.Used, m.Total, m.Available, m.Peak, m.Allocations, m.Frees, m.Utilization())
}
