package cell

// BorrowKind identifies one of the two borrow flavors.
type BorrowKind int

const (
	// BorrowShared is a read-only borrow that may coexist with other
	// shared borrows.
	BorrowShared BorrowKind = iota

	// BorrowExclusive is a read/write borrow that must not coexist
	// with any other borrow.
	BorrowExclusive
)

// String returns "shared" or "exclusive".
func (k BorrowKind) String() string {
	if k == BorrowExclusive {
		return "exclusive"
	}
	return "shared"
}

// BorrowConflictError describes an attempted borrow that would violate
// the shared/exclusive non-overlap rule. It is the value the checked
// backend panics with.
//
// A borrow conflict is a logic defect in the caller, not a transient
// condition: the unchecked backend cannot detect the same situation at
// all and would corrupt memory instead. It is therefore never returned
// as an error and there is no recoverable "try" form.
type BorrowConflictError struct {
	Attempted BorrowKind // the borrow that was requested
	Held      BorrowKind // the borrow that was outstanding
}

// Error implements the error interface.
func (e *BorrowConflictError) Error() string {
	return "cell: " + e.Attempted.String() + " borrow conflicts with outstanding " +
		e.Held.String() + " borrow"
}
