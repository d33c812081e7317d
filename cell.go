package cell

// Helpers that are expressed purely in terms of the borrowing API and
// therefore compile identically under both backends.

// Clone returns a new unborrowed Cell holding a shallow copy of c's
// value, taken under a shared borrow.
func (c *Cell[T]) Clone() *Cell[T] {
	r := c.Borrow()
	defer r.Release()
	return New(r.Value())
}

// String returns an opaque representation. It deliberately does not
// read the wrapped value, so it is safe to call (e.g. from a logger)
// while an exclusive borrow is outstanding.
func (c *Cell[T]) String() string {
	return "Cell{...}"
}

// Equal reports whether two cells hold equal values, comparing them
// under shared borrows. Passing the same cell twice is fine: shared
// borrows coexist.
func Equal[T comparable](a, b *Cell[T]) bool {
	ra := a.Borrow()
	defer ra.Release()
	rb := b.Borrow()
	defer rb.Release()
	return ra.Value() == rb.Value()
}
