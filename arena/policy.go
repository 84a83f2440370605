package arena

import "strings"

// Policy selects which safety checks an allocator instance performs. It is
// a bit set fixed at construction. Every check costs a single bit test on
// the hot path, and disabled checks reserve no bytes in the arena.
type Policy uint8

const (
	// SizeCheck faults the allocation that would exceed TotalSize.
	// Without it, exceeding capacity is a bounds violation on the region.
	SizeCheck Policy = 1 << iota

	// BoundsCheck writes guard records around every payload at allocation
	// time and verifies them at free time, converting out-of-bounds
	// writes (stomps) into immediate faults.
	BoundsCheck

	// StackOrderCheck verifies at free time that the target is the most
	// recently allocated live allocation.
	StackOrderCheck

	// NullCheck faults on nil deallocation targets.
	NullCheck

	// OwnershipCheck faults on deallocation targets whose address lies
	// outside this arena's region.
	OwnershipCheck

	// ThreadSafe serializes cursor mutations with a mutex. It is a
	// capability, not a check: bookkeeping becomes race-free, payload
	// access does not.
	ThreadSafe
)

// Preset policies.
const (
	// PolicyNone performs no checks at all: smallest footprint, fastest
	// path, every misuse is silent corruption.
	PolicyNone Policy = 0

	// PolicyFast keeps only the capacity check.
	PolicyFast = SizeCheck

	// PolicyDefault enables the cheap checks: capacity, stack order, and
	// nil/ownership validation. Guard bytes and locking stay opt-in.
	PolicyDefault = SizeCheck | StackOrderCheck | NullCheck | OwnershipCheck

	// PolicyDebug enables every check, including guard bytes.
	PolicyDebug = SizeCheck | BoundsCheck | StackOrderCheck | NullCheck | OwnershipCheck
)

// Has reports whether every option in opt is enabled.
func (p Policy) Has(opt Policy) bool {
	return p&opt == opt
}

var policyNames = []struct {
	bit  Policy
	name string
}{
	{SizeCheck, "SizeCheck"},
	{BoundsCheck, "BoundsCheck"},
	{StackOrderCheck, "StackOrderCheck"},
	{NullCheck, "NullCheck"},
	{OwnershipCheck, "OwnershipCheck"},
	{ThreadSafe, "ThreadSafe"},
}

// String renders the enabled options joined by "|", or "None".
func (p Policy) String() string {
	if p == PolicyNone {
		return "None"
	}
	parts := make([]string, 0, len(policyNames))
	for _, e := range policyNames {
		if p.Has(e.bit) {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}
