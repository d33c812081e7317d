//go:build !cell_unchecked || cell_checked

package cell

import "sync/atomic"

// exclusiveMark is the counter value reserved for an outstanding
// exclusive borrow. Every other legal value is a count of outstanding
// shared borrows (0 = unborrowed).
const exclusiveMark = -1

// borrowState tracks the borrow status of one cell with a single
// atomic counter:
//
//	 0  unborrowed
//	 n  n > 0: n outstanding shared borrows
//	-1  one outstanding exclusive borrow
//
// The counter never moves between the positive region and -1 without
// passing through 0, and all transitions are CAS-based. Go's
// sync/atomic operations are sequentially consistent, so a release on
// one goroutine happens-before a later acquisition that observes the
// freed state.
type borrowState struct {
	n atomic.Int32

	// Lifetime statistics, maintained only on successful transitions.
	sharedTotal    atomic.Uint64
	exclusiveTotal atomic.Uint64
	sharedPeak     atomic.Int32
}

// acquireShared increments the reader count. Panics with a
// *BorrowConflictError if an exclusive borrow is outstanding.
func (s *borrowState) acquireShared() {
	for {
		cur := s.n.Load()
		if cur == exclusiveMark {
			panic(&BorrowConflictError{Attempted: BorrowShared, Held: BorrowExclusive})
		}
		if s.n.CompareAndSwap(cur, cur+1) {
			s.sharedTotal.Add(1)
			s.raisePeak(cur + 1)
			return
		}
	}
}

// releaseShared decrements the reader count. Each successful
// acquireShared must be paired with exactly one releaseShared.
func (s *borrowState) releaseShared() {
	if s.n.Add(-1) < 0 {
		panic("cell: shared borrow released twice")
	}
}

// acquireExclusive transitions 0 -> -1. Panics with a
// *BorrowConflictError if any borrow is outstanding.
func (s *borrowState) acquireExclusive() {
	for {
		cur := s.n.Load()
		if cur != 0 {
			held := BorrowShared
			if cur == exclusiveMark {
				held = BorrowExclusive
			}
			panic(&BorrowConflictError{Attempted: BorrowExclusive, Held: held})
		}
		if s.n.CompareAndSwap(0, exclusiveMark) {
			s.exclusiveTotal.Add(1)
			return
		}
	}
}

// releaseExclusive transitions -1 -> 0.
func (s *borrowState) releaseExclusive() {
	if !s.n.CompareAndSwap(exclusiveMark, 0) {
		panic("cell: exclusive borrow released twice")
	}
}

// raisePeak lifts the shared high-water mark to at least n.
func (s *borrowState) raisePeak(n int32) {
	for {
		peak := s.sharedPeak.Load()
		if n <= peak || s.sharedPeak.CompareAndSwap(peak, n) {
			return
		}
	}
}
