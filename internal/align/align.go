// Package align provides pure alignment and padding arithmetic for the
// arena allocator. Functions operate on raw addresses (uintptr) so the
// same math serves object, buffer, and array allocations alike.
//
// All alignments must be powers of two. Callers validate that before
// calling in; these functions assume it.
package align

// Next returns the smallest address >= addr that is a multiple of alignment.
//
// Example:
//
//	Next(0, 8)  = 0
//	Next(1, 8)  = 8
//	Next(8, 8)  = 8
//	Next(9, 16) = 16
func Next(addr, alignment uintptr) uintptr {
	return (addr + alignment - 1) &^ (alignment - 1)
}

// Padding returns the number of bytes that must be added to addr to reach
// the next aligned address. Zero when addr is already aligned.
func Padding(addr, alignment uintptr) uintptr {
	return Next(addr, alignment) - addr
}

// PaddingWithHeader returns the smallest offset such that addr+offset is a
// multiple of alignment and at least headerSize bytes precede the aligned
// address. The header bytes live inside the padding, immediately before
// the returned address.
func PaddingWithHeader(addr, alignment uintptr, headerSize int) uintptr {
	padding := Padding(addr, alignment)
	need := uintptr(headerSize)
	if padding < need {
		short := need - padding
		padding += alignment * ((short + alignment - 1) / alignment)
	}
	return padding
}

// IsPowerOfTwo reports whether x is a positive power of two.
func IsPowerOfTwo(x uintptr) bool {
	return x != 0 && x&(x-1) == 0
}

// IsAligned reports whether addr is a multiple of alignment.
func IsAligned(addr, alignment uintptr) bool {
	return addr&(alignment-1) == 0
}
