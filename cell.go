package prop

import "sync/atomic"

// Cell is the shared mutable container underlying every property value.
// An owner stores its value in a cell and hands out *Cell[T] handles
// through its getter; every handle aliases the same storage, so a write
// through one is observed by all. The cell lives as long as its longest
// holder.
//
// Mutation requires an exclusive borrow, checked at runtime: any access
// that overlaps an outstanding exclusive borrow panics with a
// *BorrowError at the point of the offending borrow. This is a
// programmer error, not a recoverable condition. The cell is not safe
// for cross-goroutine sharing; the borrow flag detects misuse, it does
// not serialize it.
type Cell[T any] struct {
	value    T
	borrowed atomic.Bool
}

// NewCell returns a cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Get returns the current value. Panics with a *BorrowError if an
// exclusive borrow is outstanding.
func (c *Cell[T]) Get() T {
	if c.borrowed.Load() {
		panic(newBorrowError("read"))
	}
	return c.value
}

// Replace installs v and returns the previous value. The swap holds the
// exclusive borrow; it panics with a *BorrowError if one is already
// outstanding.
func (c *Cell[T]) Replace(v T) T {
	release := c.borrowMut("replace")
	defer release()
	old := c.value
	c.value = v
	return old
}

// Update applies fn to the current value in place, holding the
// exclusive borrow for the duration of fn. Touching the cell from
// within fn is a double borrow and panics. The borrow is released even
// if fn panics.
func (c *Cell[T]) Update(fn func(T) T) {
	release := c.borrowMut("update")
	defer release()
	c.value = fn(c.value)
}

// borrowMut acquires the exclusive borrow or panics.
func (c *Cell[T]) borrowMut(op string) func() {
	if !c.borrowed.CompareAndSwap(false, true) {
		panic(newBorrowError(op))
	}
	return func() { c.borrowed.Store(false) }
}
