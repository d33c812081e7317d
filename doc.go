// Package cell implements a shared-mutability container with runtime
// borrow checking that can be compiled out.
//
// # Overview
//
// A Cell wraps a single value and hands out scoped read ("shared") and
// write ("exclusive") views of it through guard types. The aliasing
// rule is the usual one: any number of concurrent shared borrows, or
// exactly one exclusive borrow, never both. Two interchangeable
// backends implement the same API:
//
//   - The checked backend validates the rule at runtime with a
//     lock-free atomic counter and panics on violation. This is the
//     default build and the one to develop and test against.
//   - The unchecked backend performs direct, unvalidated access with
//     zero bookkeeping. It is meant for optimized builds of programs
//     whose borrow discipline has already been proven correct under
//     the checked backend.
//
// This is particularly useful for:
//
//   - Hot-path state shared between components that already follow a
//     single-writer protocol enforced elsewhere
//   - Flushing out aliasing bugs during development that would be
//     silent data corruption in production
//   - Libraries that want borrow-guard discipline without paying for
//     it in release builds
//
// # Basic Usage
//
//	c := cell.New(5)
//
//	r := c.Borrow() // shared view
//	fmt.Println(r.Value())
//	r.Release()
//
//	w := c.BorrowMut() // exclusive view
//	w.Set(6)
//	w.Release()
//
//	v := c.IntoInner() // take the value back out
//
// # Backend Selection
//
// Selection happens once, at build time, via build tags. There is no
// runtime switch and no branch on the borrow path.
//
//	go build ./...                                       // checked (default)
//	go build -tags cell_unchecked ./...                  // unchecked
//	go build -tags "cell_unchecked cell_checked" ./...   // checked
//
// The cell_checked tag is a global safety override: it forces the
// checked backend even when cell_unchecked is set, for defense-in-depth
// validation of production-like builds. The package-level constant
// [Checked] reports which backend was compiled in.
//
// # Thread Safety
//
// Under the checked backend all borrow transitions are lock-free
// atomic operations, safe to invoke from multiple goroutines sharing
// one *Cell. Releasing a borrow happens-before any later successful
// acquisition on the same cell, so the checked backend is a real
// runtime proof of the aliasing rule, not a heuristic.
//
// The unchecked backend provides no synchronization whatsoever.
// Conflicting concurrent access under it is a data race: correctness
// rests entirely on the discipline the checked backend verified.
//
// # Important Notes
//
//   - Borrow attempts never block or queue: they succeed immediately
//     or, in the checked backend, panic with a *BorrowConflictError.
//     There is deliberately no TryBorrow: a conflict is a logic defect
//     in the caller, not a transient condition, and a recoverable form
//     would force bookkeeping onto the unchecked backend too.
//   - Guards must be released exactly once and must not be copied.
//   - UnsafeBorrow and UnsafeBorrowMut bypass validation in both
//     backends; the caller is responsible for proving non-aliasing.
//
// # Metrics and Monitoring
//
// The checked backend keeps per-cell borrow statistics:
//
//	m := c.Metrics()
//	fmt.Printf("shared borrows: %d\n", m.SharedBorrows)
//	fmt.Printf("peak concurrent readers: %d\n", m.SharedPeak)
//
// The unchecked backend stores nothing and reports a zero snapshot.
package cell
