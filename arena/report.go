package arena

import "sync/atomic"

// AllocatorID identifies an arena instance within the process. IDs are
// assigned from a package counter at construction and never reused.
type AllocatorID uint64

var nextID atomic.Uint64

// UsageReporter receives used-size updates from an arena, letting an
// owning manager aggregate usage across allocators. The arena invokes
// ReportUsageChange exactly once per cursor mutation (allocate, free,
// reset), after the mutation is committed. A nil reporter disables
// reporting.
//
// Implementations must be fast and must not call back into the reporting
// arena: under the ThreadSafe policy the call runs with the arena's lock
// held so the (oldUsed, newUsed) pairs arrive ordered and gap-free.
type UsageReporter interface {
	ReportUsageChange(id AllocatorID, oldUsed, newUsed int)
}
