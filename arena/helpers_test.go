package arena

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// catchFault runs fn, requires that it panics with a *Fault wrapping
// want, and returns the fault for further assertions.
func catchFault(t *testing.T, want error, fn func()) *Fault {
	t.Helper()
	var f *Fault
	func() {
		defer func() {
			t.Helper()
			r := recover()
			require.NotNil(t, r, "expected a fault panic")
			var ok bool
			f, ok = r.(*Fault)
			require.True(t, ok, "panic value should be *Fault, got %T: %v", r, r)
			require.ErrorIs(t, f, want)
		}()
		fn()
	}()
	return f
}

type usageEvent struct {
	id       AllocatorID
	old, now int
}

// recordingReporter captures every ReportUsageChange call in order.
type recordingReporter struct {
	mu     sync.Mutex
	events []usageEvent
}

func (r *recordingReporter) ReportUsageChange(id AllocatorID, oldUsed, newUsed int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, usageEvent{id: id, old: oldUsed, now: newUsed})
}

func (r *recordingReporter) snapshot() []usageEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]usageEvent(nil), r.events...)
}
