// Package arena provides a fixed-capacity, stack-discipline memory arena.
//
// # Overview
//
// A Stack carves every allocation out of one contiguous byte region
// obtained at construction. Allocations are handed out at strictly
// increasing offsets and must be released in exactly the reverse order
// (LIFO). Allocate and free are O(1): a cursor marks the boundary between
// used and free space, allocation bumps it forward, deallocation rewinds
// it to the allocation's start offset. After construction the allocator
// performs no heap allocation of its own.
//
// # Stack Discipline
//
// Freeing anything other than the most recently allocated live allocation
// is a programmer bug. With StackOrderCheck enabled it raises a fault;
// without it the cursor silently rewinds past live allocations and later
// allocations overwrite them. This is by contract: the allocator targets
// phase-structured workloads, not general-purpose allocation.
//
// # Policies
//
// A Policy bit set, fixed at construction, selects which safety nets an
// instance carries: capacity checks, guard bytes around payloads, stack
// order verification, nil/ownership validation of free targets, and
// mutex-serialized cursor mutations. Disabled options reserve no bytes in
// the arena and cost a single bit test on the hot path. Every detected
// violation is raised as a *Fault panic carrying the arena's debug name
// and the offending offset: these are bugs to crash on during
// development, not runtime conditions to handle.
//
// # Allocation Forms
//
// Each operation comes in two forms that differ only in where the offset
// bookkeeping lives:
//
//   - Handle forms (AllocBuffer, New, NewValue, NewArray) return a handle
//     carrying the payload plus its offset range; nothing extra is stored
//     in the arena.
//   - Raw forms (Alloc, NewRaw, NewArrayRaw) return a bare slice or
//     pointer and write a small header into the padding immediately
//     before the payload, so the bookkeeping can be recovered from the
//     pointer alone at free time. This costs a few bytes per allocation.
//
// # Usage Example
//
//	s := arena.NewStack(10*arena.MB, arena.DefaultOptions())
//	defer s.Close()
//
//	p := arena.NewValue(s, Vec3{1, 2, 3})
//	buf := s.Alloc(256, 16)
//
//	// ... use p.Get() and buf ...
//
//	s.Free(buf)          // reverse order of allocation
//	arena.Delete(s, p)
//
//	s.Reset()            // or: invalidate everything between phases
//
// # Pointer Caveat
//
// Payloads live inside a byte region the garbage collector does not scan
// for pointers. Values placed in an arena must not hold the only
// reference to a Go-heap object; keep such references outside the arena.
//
// # Thread Safety
//
// Instances are single-threaded unless the ThreadSafe policy is set, which
// serializes cursor mutations (allocate, free, reset) with a mutex. The
// lock covers bookkeeping only: concurrent access to payload objects is
// the caller's responsibility, and stack order still applies across
// threads.
//
// # Related Packages
//
//   - github.com/AhsanSarwar45/memarena/internal/align: alignment and
//     padding arithmetic
//   - github.com/AhsanSarwar45/memarena/internal/memblock: backing region
//     acquisition (heap or anonymous mmap)
package arena
