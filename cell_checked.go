//go:build !cell_unchecked || cell_checked

package cell

// Checked reports whether this build validates borrows at runtime.
const Checked = true

// Cell wraps a single value of type T and mediates access to it
// through shared and exclusive borrow guards.
//
// This is the checked backend: every Borrow and BorrowMut consults an
// atomic borrow counter and panics with a *BorrowConflictError when
// the shared/exclusive rule would be violated. Build with the
// cell_unchecked tag to compile in the unvalidated backend instead.
//
// A Cell must not be copied after first use.
type Cell[T any] struct {
	state borrowState
	value T
}

// New creates a Cell owning value. The cell starts unborrowed.
func New[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

// Borrow acquires a shared borrow and returns a read-only guard.
// Any number of shared borrows may be outstanding at once. Panics
// with a *BorrowConflictError if an exclusive borrow is outstanding.
//
// The guard must be released exactly once, conventionally:
//
//	r := c.Borrow()
//	defer r.Release()
func (c *Cell[T]) Borrow() *Ref[T] {
	c.state.acquireShared()
	return &Ref[T]{v: &c.value, state: &c.state}
}

// BorrowMut acquires the exclusive borrow and returns a read/write
// guard. Panics with a *BorrowConflictError if any borrow is
// outstanding.
func (c *Cell[T]) BorrowMut() *RefMut[T] {
	c.state.acquireExclusive()
	return &RefMut[T]{v: &c.value, state: &c.state}
}

// IntoInner returns the wrapped value. It performs no borrow check:
// the caller asserts, by calling it, that the cell is no longer
// shared. The cell must not be used afterwards.
func (c *Cell[T]) IntoInner() T {
	return c.value
}

// UnsafeBorrow returns a direct pointer to the wrapped value for
// reading, bypassing all validation even in this checked build so
// behavior matches the unchecked backend exactly. The caller must
// guarantee no exclusive borrow is live for the pointer's whole use.
func (c *Cell[T]) UnsafeBorrow() *T {
	return &c.value
}

// UnsafeBorrowMut returns a direct pointer to the wrapped value for
// writing, bypassing all validation. The caller must guarantee no
// other borrow of any kind is live for the pointer's whole use.
func (c *Cell[T]) UnsafeBorrowMut() *T {
	return &c.value
}

// Metrics returns a snapshot of the cell's borrow statistics.
func (c *Cell[T]) Metrics() CellMetrics {
	m := CellMetrics{
		SharedBorrows:    c.state.sharedTotal.Load(),
		ExclusiveBorrows: c.state.exclusiveTotal.Load(),
		SharedPeak:       int(c.state.sharedPeak.Load()),
	}
	if n := c.state.n.Load(); n == exclusiveMark {
		m.WriterActive = true
	} else {
		m.ActiveShared = int(n)
	}
	return m
}

// Ref is a shared borrow guard. It grants read-only access to the
// cell's value until Release is called. A Ref must not be copied.
type Ref[T any] struct {
	v     *T
	state *borrowState
}

// Get returns a pointer to the borrowed value. The pointer must only
// be read through and must not outlive the guard.
func (r *Ref[T]) Get() *T {
	if r.state == nil {
		panic("cell: use of Ref after Release()")
	}
	return r.v
}

// Value returns a copy of the borrowed value.
func (r *Ref[T]) Value() T {
	return *r.Get()
}

// Release ends the shared borrow. It must be called exactly once.
func (r *Ref[T]) Release() {
	if r.state == nil {
		panic("cell: Ref released twice")
	}
	r.state.releaseShared()
	r.state = nil
	r.v = nil
}

// RefMut is the exclusive borrow guard. It grants read/write access
// to the cell's value until Release is called. A RefMut must not be
// copied.
type RefMut[T any] struct {
	v     *T
	state *borrowState
}

// Get returns a pointer to the borrowed value. The pointer must not
// outlive the guard.
func (r *RefMut[T]) Get() *T {
	if r.state == nil {
		panic("cell: use of RefMut after Release()")
	}
	return r.v
}

// Value returns a copy of the borrowed value.
func (r *RefMut[T]) Value() T {
	return *r.Get()
}

// Set replaces the borrowed value.
func (r *RefMut[T]) Set(v T) {
	*r.Get() = v
}

// Release ends the exclusive borrow. It must be called exactly once.
func (r *RefMut[T]) Release() {
	if r.state == nil {
		panic("cell: RefMut released twice")
	}
	r.state.releaseExclusive()
	r.state = nil
	r.v = nil
}
