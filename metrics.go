package cell

// CellMetrics contains statistical information about a cell's borrow
// activity. Only the checked backend maintains these counters; the
// unchecked backend stores nothing and its Metrics method returns the
// zero CellMetrics.
type CellMetrics struct {
	SharedBorrows    uint64 // Shared borrows acquired over the cell's lifetime
	ExclusiveBorrows uint64 // Exclusive borrows acquired over the cell's lifetime
	ActiveShared     int    // Shared borrows currently outstanding
	SharedPeak       int    // High-water mark of concurrently outstanding shared borrows
	WriterActive     bool   // Whether an exclusive borrow is currently outstanding
}
