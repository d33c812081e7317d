//go:build cell_unchecked && !cell_checked

package cell

// Checked reports whether this build validates borrows at runtime.
const Checked = false

// Cell wraps a single value of type T and mediates access to it
// through shared and exclusive borrow guards.
//
// This is the unchecked backend: no borrow state exists and no
// validation takes place. Borrow and BorrowMut hand out the value
// directly, and conflicting concurrent access is a data race. The
// caller's aliasing discipline, exercised under the default checked
// build, is the only protection.
type Cell[T any] struct {
	value T
}

// New creates a Cell owning value.
func New[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

// Borrow returns a read-only guard over the wrapped value. No
// bookkeeping takes place; Release on the guard is a no-op.
func (c *Cell[T]) Borrow() Ref[T] {
	return Ref[T]{v: &c.value}
}

// BorrowMut returns a read/write guard over the wrapped value. No
// bookkeeping takes place; Release on the guard is a no-op.
func (c *Cell[T]) BorrowMut() RefMut[T] {
	return RefMut[T]{v: &c.value}
}

// IntoInner returns the wrapped value. The cell must not be used
// afterwards.
func (c *Cell[T]) IntoInner() T {
	return c.value
}

// UnsafeBorrow returns a direct pointer to the wrapped value for
// reading. The caller must guarantee no exclusive borrow is live for
// the pointer's whole use.
func (c *Cell[T]) UnsafeBorrow() *T {
	return &c.value
}

// UnsafeBorrowMut returns a direct pointer to the wrapped value for
// writing. The caller must guarantee no other borrow of any kind is
// live for the pointer's whole use.
func (c *Cell[T]) UnsafeBorrowMut() *T {
	return &c.value
}

// Metrics returns the zero CellMetrics: the unchecked backend stores
// no borrow state and counts nothing.
func (c *Cell[T]) Metrics() CellMetrics {
	return CellMetrics{}
}

// Ref is a shared borrow guard. In this backend it is a bare pointer
// wrapper with no state to restore.
type Ref[T any] struct {
	v *T
}

// Get returns a pointer to the borrowed value. The pointer must only
// be read through.
func (r Ref[T]) Get() *T {
	return r.v
}

// Value returns a copy of the borrowed value.
func (r Ref[T]) Value() T {
	return *r.v
}

// Release is a no-op.
func (r Ref[T]) Release() {}

// RefMut is the exclusive borrow guard. In this backend it is a bare
// pointer wrapper with no state to restore.
type RefMut[T any] struct {
	v *T
}

// Get returns a pointer to the borrowed value.
func (r RefMut[T]) Get() *T {
	return r.v
}

// Value returns a copy of the borrowed value.
func (r RefMut[T]) Value() T {
	return *r.v
}

// Set replaces the borrowed value.
func (r RefMut[T]) Set(v T) {
	*r.v = v
}

// Release is a no-op.
func (r RefMut[T]) Release() {}
