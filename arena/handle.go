package arena

// Ptr is a typed handle to a single object placed in an arena. It carries
// the offset metadata needed to validate and perform deallocation, so the
// caller does not track allocator state separately. Handles are non-owning
// views: valid between allocation and the matching Delete (or a Reset or
// Close), and they must not outlive the arena.
type Ptr[T any] struct {
	ptr *T
	hdr header
}

// Get returns the payload pointer. Nil for the zero Ptr.
func (p Ptr[T]) Get() *T { return p.ptr }

// IsNil reports whether the handle refers to nothing.
func (p Ptr[T]) IsNil() bool { return p.ptr == nil }

// StartOffset returns the arena cursor before this allocation was made.
func (p Ptr[T]) StartOffset() int { return p.hdr.start }

// EndOffset returns the arena cursor immediately after this allocation.
func (p Ptr[T]) EndOffset() int { return p.hdr.end }

// ArrayPtr is the handle for a contiguous array of T placed in an arena.
type ArrayPtr[T any] struct {
	sl  []T
	hdr arrayHeader
}

// Slice returns the payload elements.
func (p ArrayPtr[T]) Slice() []T { return p.sl }

// Len returns the element count.
func (p ArrayPtr[T]) Len() int { return len(p.sl) }

// At returns a pointer to element i.
func (p ArrayPtr[T]) At(i int) *T { return &p.sl[i] }

// IsNil reports whether the handle refers to nothing.
func (p ArrayPtr[T]) IsNil() bool { return p.sl == nil }

// StartOffset returns the arena cursor before this allocation was made.
func (p ArrayPtr[T]) StartOffset() int { return p.hdr.start }

// Buffer is the handle form of a raw byte allocation. The metadata rides
// the handle instead of an in-band header, saving the header bytes at the
// cost of the caller keeping the handle around.
type Buffer struct {
	data []byte
	hdr  header
}

// Bytes returns the payload. Its capacity is clipped to its length, so
// writes past the end panic instead of silently spilling into the arena.
func (b Buffer) Bytes() []byte { return b.data }

// Len returns the payload size in bytes.
func (b Buffer) Len() int { return len(b.data) }

// IsNil reports whether the handle refers to nothing.
func (b Buffer) IsNil() bool { return b.data == nil }

// StartOffset returns the arena cursor before this allocation was made.
func (b Buffer) StartOffset() int { return b.hdr.start }

// EndOffset returns the arena cursor immediately after this allocation.
func (b Buffer) EndOffset() int { return b.hdr.end }
