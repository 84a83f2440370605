package arena

// View binds a Stack to a fixed element type, giving method form to the
// typed package-level functions. Useful when one element type dominates
// an arena and threading the type parameter everywhere is noise.
type View[T any] struct {
	s *Stack
}

// NewView wraps s in a typed view. Multiple views may share one Stack.
func NewView[T any](s *Stack) View[T] {
	return View[T]{s: s}
}

// New places a zeroed element.
func (v View[T]) New() Ptr[T] { return New[T](v.s) }

// NewValue places a copy of val.
func (v View[T]) NewValue(val T) Ptr[T] { return NewValue(v.s, val) }

// Delete releases p.
func (v View[T]) Delete(p Ptr[T]) { Delete(v.s, p) }

// NewArray places count zeroed elements.
func (v View[T]) NewArray(count int) ArrayPtr[T] { return NewArray[T](v.s, count) }

// DeleteArray releases p.
func (v View[T]) DeleteArray(p ArrayPtr[T]) { DeleteArray(v.s, p) }

// Reset rewinds the underlying arena.
func (v View[T]) Reset() { v.s.Reset() }

// UsedSize reports the underlying arena's cursor.
func (v View[T]) UsedSize() int { return v.s.UsedSize() }

// TotalSize reports the underlying arena's capacity.
func (v View[T]) TotalSize() int { return v.s.TotalSize() }

// DebugName reports the underlying arena's label.
func (v View[T]) DebugName() string { return v.s.DebugName() }

// Stack returns the underlying arena.
func (v View[T]) Stack() *Stack { return v.s }
