// Package memblock acquires the backing byte region for an arena.
//
// Two backings are supported: a plain Go heap buffer, over-allocated and
// sliced forward so its base address is MaxAlign-aligned, and an anonymous
// memory mapping (unix only) that lives off the Go heap and is returned to
// the OS on release. Platforms without mmap fall back to the heap backing.
package memblock

import (
	"unsafe"

	"github.com/AhsanSarwar45/memarena/internal/align"
)

// MaxAlign is the strongest alignment the heap backing guarantees for the
// base of the returned region (one cache line). Mapped regions are
// page-aligned and exceed it.
const MaxAlign = 64

// Alloc obtains a zero-filled region of exactly size bytes. The returned
// release function hands the region back to its source and is safe to call
// more than once. size must be positive; the caller validates that.
func Alloc(size int, mapped bool) ([]byte, func() error, error) {
	if mapped {
		return mmapAlloc(size)
	}
	return heapAlloc(size)
}

func heapAlloc(size int) ([]byte, func() error, error) {
	raw := make([]byte, size+MaxAlign-1)
	base := uintptr(unsafe.Pointer(&raw[0]))
	off := int(align.Padding(base, MaxAlign))
	buf := raw[off : off+size : off+size]
	// The heap reclaims the buffer once the region is unreachable.
	return buf, func() error { return nil }, nil
}
