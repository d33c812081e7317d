//go:build !cell_unchecked || cell_checked

package cell

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowStateTransitions(t *testing.T) {
	var s borrowState

	require.EqualValues(t, 0, s.n.Load())

	s.acquireShared()
	s.acquireShared()
	require.EqualValues(t, 2, s.n.Load())

	s.releaseShared()
	s.releaseShared()
	require.EqualValues(t, 0, s.n.Load())

	s.acquireExclusive()
	require.EqualValues(t, exclusiveMark, s.n.Load())

	s.releaseExclusive()
	require.EqualValues(t, 0, s.n.Load())
}

func TestBorrowStateConflicts(t *testing.T) {
	t.Run("SharedBlocksExclusive", func(t *testing.T) {
		var s borrowState
		s.acquireShared()
		require.PanicsWithError(t,
			"cell: exclusive borrow conflicts with outstanding shared borrow",
			s.acquireExclusive)
		// The failed attempt must not have disturbed the counter.
		require.EqualValues(t, 1, s.n.Load())
	})

	t.Run("ExclusiveBlocksExclusive", func(t *testing.T) {
		var s borrowState
		s.acquireExclusive()
		require.PanicsWithError(t,
			"cell: exclusive borrow conflicts with outstanding exclusive borrow",
			s.acquireExclusive)
		require.EqualValues(t, exclusiveMark, s.n.Load())
	})

	t.Run("ExclusiveBlocksShared", func(t *testing.T) {
		var s borrowState
		s.acquireExclusive()
		require.PanicsWithError(t,
			"cell: shared borrow conflicts with outstanding exclusive borrow",
			s.acquireShared)
		require.EqualValues(t, exclusiveMark, s.n.Load())
	})
}

func TestBorrowStateUnpairedRelease(t *testing.T) {
	t.Run("Shared", func(t *testing.T) {
		var s borrowState
		require.PanicsWithValue(t, "cell: shared borrow released twice", s.releaseShared)
	})

	t.Run("Exclusive", func(t *testing.T) {
		var s borrowState
		require.PanicsWithValue(t, "cell: exclusive borrow released twice", s.releaseExclusive)
	})
}

func TestBorrowStateConcurrentSharedAcquire(t *testing.T) {
	// Hammer acquireShared/releaseShared from many goroutines. Every
	// acquisition pairs with a release, so the counter must come back
	// to zero and the exclusive transition must then succeed.
	var s borrowState
	const goroutines = 8
	const iterations = 5000

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				s.acquireShared()
				s.releaseShared()
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, 0, s.n.Load())
	assert.EqualValues(t, goroutines*iterations, s.sharedTotal.Load())

	s.acquireExclusive()
	s.releaseExclusive()
}

func TestBorrowStateSharedPeak(t *testing.T) {
	var s borrowState

	s.acquireShared()
	s.acquireShared()
	s.acquireShared()
	s.releaseShared()
	s.acquireShared()

	// Peak was three; the dip to two and back must not lower it.
	assert.EqualValues(t, 3, s.sharedPeak.Load())

	s.releaseShared()
	s.releaseShared()
	s.releaseShared()
	assert.EqualValues(t, 3, s.sharedPeak.Load())
}
