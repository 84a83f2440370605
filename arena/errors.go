package arena

import "errors"

var (
	// ErrOutOfMemory indicates an allocation that would exceed the
	// arena's capacity, or a backing region that could not be acquired.
	ErrOutOfMemory = errors.New("arena: out of memory")

	// ErrBadOrder indicates a deallocation target that is not the most
	// recently allocated live allocation.
	ErrBadOrder = errors.New("arena: stack order violation")

	// ErrNilTarget indicates a nil deallocation target.
	ErrNilTarget = errors.New("arena: nil deallocation target")

	// ErrForeignTarget indicates a deallocation target outside this
	// arena's region.
	ErrForeignTarget = errors.New("arena: target not owned by this arena")

	// ErrStomp indicates a guard record that no longer matches the value
	// written at allocation time: something wrote past an allocation's
	// bounds.
	ErrStomp = errors.New("arena: memory stomp detected")

	// ErrInvalidArgument indicates a non-positive size or count, an
	// alignment that is not a power of two, or an out-of-range capacity.
	ErrInvalidArgument = errors.New("arena: invalid argument")

	// ErrClosed indicates use of an arena after Close.
	ErrClosed = errors.New("arena: use after close")
)
