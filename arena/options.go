package arena

// Backing selects where an arena's byte region comes from.
type Backing int

const (
	// BackingHeap carves the region from the Go heap, sliced forward so
	// the base address honors any alignment up to memblock.MaxAlign (64).
	BackingHeap Backing = iota

	// BackingMapped obtains the region from an anonymous memory mapping:
	// page-aligned, off the Go heap, returned to the OS on Close. Falls
	// back to the heap on platforms without mmap.
	BackingMapped
)

func (b Backing) String() string {
	switch b {
	case BackingHeap:
		return "heap"
	case BackingMapped:
		return "mapped"
	default:
		return "unknown"
	}
}

// Options configures a Stack at construction.
type Options struct {
	// Policy selects the safety checks this instance performs.
	Policy Policy

	// Reporter, when non-nil, receives a used-size update after every
	// cursor mutation.
	Reporter UsageReporter

	// DebugName is surfaced verbatim in fault diagnostics and log lines.
	DebugName string

	// Backing selects the region source.
	Backing Backing
}

// DefaultOptions returns the recommended configuration: the cheap checks
// enabled (PolicyDefault), heap backing, no reporter.
func DefaultOptions() *Options {
	return &Options{
		Policy:  PolicyDefault,
		Backing: BackingHeap,
	}
}
