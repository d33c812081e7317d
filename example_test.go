package cell

import (
	"fmt"
	"sync"
)

// Example demonstrates the basic borrow lifecycle.
func Example() {
	c := New(5)

	// Shared view: any number may be outstanding at once.
	r := c.Borrow()
	fmt.Println("read:", r.Value())
	r.Release()

	// Exclusive view: sole access until released.
	w := c.BorrowMut()
	w.Set(w.Value() + 1)
	w.Release()

	fmt.Println("after increment:", c.IntoInner())

	// Output:
	// read: 5
	// after increment: 6
}

// ExampleCell_Borrow demonstrates concurrent shared readers.
func ExampleCell_Borrow() {
	c := New("shared state")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := c.Borrow()
			defer r.Release()
			_ = r.Value() // all readers coexist without conflict
		}()
	}
	wg.Wait()

	r := c.Borrow()
	defer r.Release()
	fmt.Println(r.Value())

	// Output:
	// shared state
}

// ExampleCell_BorrowMut demonstrates in-place mutation through the
// exclusive guard.
func ExampleCell_BorrowMut() {
	type counter struct{ hits int }

	c := New(counter{})

	for i := 0; i < 3; i++ {
		w := c.BorrowMut()
		w.Get().hits++
		w.Release()
	}

	r := c.Borrow()
	defer r.Release()
	fmt.Println("hits:", r.Value().hits)

	// Output:
	// hits: 3
}

// ExampleEqual demonstrates value comparison under shared borrows.
func ExampleEqual() {
	a := New(10)
	b := a.Clone()

	fmt.Println(Equal(a, b))

	w := b.BorrowMut()
	w.Set(11)
	w.Release()

	fmt.Println(Equal(a, b))

	// Output:
	// true
	// false
}
