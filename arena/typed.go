package arena

import "unsafe"

// Finalizer is the optional destruction hook. When the element type of a
// typed allocation implements it, Delete, DeleteRaw, DeleteArray, and
// DeleteArrayRaw invoke Finalize before releasing the allocation. Reset
// never runs finalizers.
type Finalizer interface {
	Finalize()
}

func finalize[T any](ptr *T) {
	if f, ok := any(ptr).(Finalizer); ok {
		f.Finalize()
	}
}

func sizeAlignOf[T any]() (size, alignment int) {
	var zero T
	return int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero))
}

// New places a zeroed T in the arena and returns its handle. Zero-size
// types are rejected with ErrInvalidArgument.
//
// These are package-level functions rather than methods because Go
// methods cannot carry their own type parameters.
func New[T any](s *Stack) Ptr[T] {
	size, alignment := sizeAlignOf[T]()
	payload, hdr := s.reserveLocked(size, alignment, inbandNone, 0)
	ptr := (*T)(unsafe.Pointer(&s.region[payload]))
	var zero T
	*ptr = zero
	return Ptr[T]{ptr: ptr, hdr: hdr}
}

// NewValue places a copy of v in the arena and returns its handle.
func NewValue[T any](s *Stack, v T) Ptr[T] {
	size, alignment := sizeAlignOf[T]()
	payload, hdr := s.reserveLocked(size, alignment, inbandNone, 0)
	ptr := (*T)(unsafe.Pointer(&s.region[payload]))
	*ptr = v
	return Ptr[T]{ptr: ptr, hdr: hdr}
}

// Delete finalizes the object (when T implements Finalizer) and releases
// its allocation. p must be the most recently allocated still-live handle
// from this arena.
func Delete[T any](s *Stack, p Ptr[T]) {
	if !s.checkTarget(p.ptr == nil) {
		return
	}
	payload := s.resolve(uintptr(unsafe.Pointer(p.ptr)))
	finalize(p.ptr)
	size, _ := sizeAlignOf[T]()
	s.lock()
	defer s.unlock()
	s.releaseAt(p.hdr, payload, size, inbandNone)
}

// NewRaw places a zeroed T and returns a bare pointer. The offset
// bookkeeping is written in-band so DeleteRaw can recover it from the
// pointer alone; this costs the header bytes that New avoids.
func NewRaw[T any](s *Stack) *T {
	size, alignment := sizeAlignOf[T]()
	payload, _ := s.reserveLocked(size, alignment, inbandScalar, 0)
	ptr := (*T)(unsafe.Pointer(&s.region[payload]))
	var zero T
	*ptr = zero
	return ptr
}

// NewRawValue places a copy of v and returns a bare pointer.
func NewRawValue[T any](s *Stack, v T) *T {
	size, alignment := sizeAlignOf[T]()
	payload, _ := s.reserveLocked(size, alignment, inbandScalar, 0)
	ptr := (*T)(unsafe.Pointer(&s.region[payload]))
	*ptr = v
	return ptr
}

// DeleteRaw finalizes and releases an object allocated with NewRaw or
// NewRawValue.
func DeleteRaw[T any](s *Stack, ptr *T) {
	if !s.checkTarget(ptr == nil) {
		return
	}
	payload := s.resolve(uintptr(unsafe.Pointer(ptr)))
	finalize(ptr)
	size, _ := sizeAlignOf[T]()
	s.lock()
	defer s.unlock()
	s.checkOpen("free")
	hdr := s.readScalarHeader(payload)
	s.releaseAt(hdr, payload, size, inbandScalar)
}
