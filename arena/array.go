package arena

import (
	"fmt"
	"math"
	"unsafe"
)

// NewArray places count zeroed contiguous elements of T in the arena and
// returns their handle. count must be positive.
func NewArray[T any](s *Stack, count int) ArrayPtr[T] {
	stride, alignment := sizeAlignOf[T]()
	size := s.arraySize(stride, count)
	payload, hdr := s.reserveLocked(size, alignment, inbandNone, count)
	sl := unsafe.Slice((*T)(unsafe.Pointer(&s.region[payload])), count)
	clear(sl)
	return ArrayPtr[T]{sl: sl, hdr: arrayHeader{start: hdr.start, count: count}}
}

// DeleteArray finalizes the elements from the last index down to the
// first, each exactly once, then releases the allocation. p must be the
// most recently allocated still-live handle from this arena.
func DeleteArray[T any](s *Stack, p ArrayPtr[T]) {
	if !s.checkTarget(p.sl == nil) {
		return
	}
	payload := s.resolve(uintptr(unsafe.Pointer(&p.sl[0])))
	for i := len(p.sl) - 1; i >= 0; i-- {
		finalize(&p.sl[i])
	}
	stride, _ := sizeAlignOf[T]()
	size := stride * len(p.sl)
	hdr := header{start: p.hdr.start, end: s.arrayEnd(payload, size)}
	s.lock()
	defer s.unlock()
	s.releaseAt(hdr, payload, size, inbandNone)
}

// NewArrayRaw places count zeroed contiguous elements of T and returns
// the bare slice. The start offset and count are written in-band so
// DeleteArrayRaw can recover the bookkeeping from the slice alone.
func NewArrayRaw[T any](s *Stack, count int) []T {
	stride, alignment := sizeAlignOf[T]()
	size := s.arraySize(stride, count)
	payload, _ := s.reserveLocked(size, alignment, inbandArray, count)
	sl := unsafe.Slice((*T)(unsafe.Pointer(&s.region[payload])), count)
	clear(sl)
	return sl
}

// DeleteArrayRaw finalizes and releases an array allocated with
// NewArrayRaw. sl must be exactly the slice that was returned.
func DeleteArrayRaw[T any](s *Stack, sl []T) {
	if !s.checkTarget(len(sl) == 0) {
		return
	}
	payload := s.resolve(uintptr(unsafe.Pointer(&sl[0])))
	for i := len(sl) - 1; i >= 0; i-- {
		finalize(&sl[i])
	}
	stride, _ := sizeAlignOf[T]()
	s.lock()
	defer s.unlock()
	s.checkOpen("free")

	hs := s.inbandSize(inbandArray)
	start := getOffset(s.region, payload-hs)
	count := getOffset(s.region, payload-hs+offsetEncSize)
	if s.policy.Has(BoundsCheck) && count != len(sl) {
		s.fault(ErrStomp, start, 0,
			fmt.Sprintf("array header count %d, slice length %d", count, len(sl)))
	}
	size := stride * count
	hdr := header{start: start, end: s.arrayEnd(payload, size)}
	s.releaseAt(hdr, payload, size, inbandArray)
}

// arraySize validates count and returns the payload size in bytes.
func (s *Stack) arraySize(stride, count int) int {
	if count <= 0 {
		s.fault(ErrInvalidArgument, s.offset, 0, fmt.Sprintf("count %d", count))
	}
	if stride > 0 && count > math.MaxInt/stride {
		s.fault(ErrInvalidArgument, s.offset, 0,
			fmt.Sprintf("array of %d elements of %d bytes overflows", count, stride))
	}
	return stride * count
}

// arrayEnd derives an array allocation's end offset: the array header
// stores start and count only, so the end is reconstructed from the
// payload offset and the policy's guard overhead.
func (s *Stack) arrayEnd(payload, size int) int {
	end := payload + size
	if s.policy.Has(BoundsCheck) {
		end += backGuardSize
	}
	return end
}
