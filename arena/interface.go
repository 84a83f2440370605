package arena

// Allocator is the raw allocation contract implemented by arena types.
// Alloc returns exactly size bytes whose base address is a multiple of
// alignment; Free releases the most recent live allocation, per stack
// discipline.
type Allocator interface {
	Alloc(size, alignment int) []byte
	Free(p []byte)
	Reset()
	Close() error
	UsedSize() int
	TotalSize() int
}

// Compile-time conformance check.
var _ Allocator = (*Stack)(nil)
