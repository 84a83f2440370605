package arena

import "encoding/binary"

// Bookkeeping records written into the arena itself are encoded as
// little-endian uint32 values, which caps the arena capacity at 4 GiB - 1.
const (
	offsetEncSize = 4

	// Front guard: [start u32][size u32], written immediately before the
	// in-band header (or the payload when there is none).
	frontGuardSize = 8

	// Back guard: [start u32], written immediately after the payload.
	backGuardSize = 4

	// In-band array header: [start u32][count u32].
	arrayHeaderSize = 8
)

// header carries the offset range of a single allocation: start is the
// cursor value before the allocation was made, end the cursor value
// immediately after. The most recently made live allocation's end equals
// the arena cursor; that equality is what stack-order checking verifies.
type header struct {
	start int
	end   int
}

// arrayHeader records the start offset and element count of an array
// allocation. The end offset is not stored: it is derived from the payload
// offset, the element stride, and the policy's guard overhead.
type arrayHeader struct {
	start int
	count int
}

func putOffset(buf []byte, off, v int) {
	binary.LittleEndian.PutUint32(buf[off:], uint32(v))
}

func getOffset(buf []byte, off int) int {
	return int(binary.LittleEndian.Uint32(buf[off:]))
}
