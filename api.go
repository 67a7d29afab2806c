// Package prop implements type-erased properties for Go structs.
//
// The package lets an interface declare "implementers expose a value of
// type T" as a first-class handle, without forcing every implementer to
// hand-write getter/setter methods with matching signatures. A struct
// binds itself and two of its own accessor functions into a property at
// construction time; the result is an owner-agnostic Property[T] that
// any caller can read and write through, knowing only the value type.
//
// # Object model
//
// Three layers, smallest first:
//
//   - Cell[T] holds the property's current value. Cell handles are
//     shared: every Getter returns the same cell for the same owner, so
//     a mutation through one handle is visible through all of them.
//   - Implementation[S, T] binds one owner instance to its two accessor
//     functions. It satisfies Accessor[T], the combined read+write
//     capability.
//   - Property[T] erases the owner type. It owns one boxed Accessor[T];
//     the owner type parameter used to build it never appears in its
//     signature.
//
// # Basic usage
//
//	type HasSize interface {
//	    Size() prop.Property[uint64]
//	}
//
//	type Dog struct {
//	    size *prop.Cell[uint64]
//	    Size prop.Property[uint64]
//	}
//
//	func NewDog(size uint64) *Dog {
//	    d := &Dog{size: prop.NewCell(size)}
//	    d.Size = prop.Define("size", d, (*Dog).sizeCell, (*Dog).setSize)
//	    return d
//	}
//
//	func (d *Dog) sizeCell() *prop.Cell[uint64] { return d.size }
//	func (d *Dog) setSize(v uint64)             { d.size.Replace(v) }
//
// Callers that only see Dog through an interface receive the erased
// handle and use it uniformly:
//
//	d := NewDog(4)
//	d.Size.Set(7)
//	fmt.Println(d.Size.Value()) // 7
//
// # Capabilities
//
// A property may expose read access, write access, or both. The
// restricted variants are smaller capability sets of the same erasure
// pattern, not runtime checks: ReadOnly[T] has no Set method at all,
// and WriteOnly[T] has no Get. Narrow a full property with Readable or
// Writable before handing it out.
//
// # Conditional access
//
// GetIf and SetIf gate an access on a predicate over the current value.
// A rejected access returns ErrConditionFailed (wrapped in an
// *AccessError) and leaves the cell untouched.
//
// # Change notification
//
// Observe wraps a property with synchronous change notification. Since
// Observable[T] itself satisfies Accessor[T], an observed property can
// be erased again, so consumers holding only Property[T] still trigger
// watchers.
//
// # Concurrency
//
// The package assumes a single-threaded caller. The cell enforces its
// borrow discipline at runtime: overlapping exclusive borrows panic
// with a *BorrowError at the point of the offending borrow. Sharing a
// property across goroutines requires substituting a thread-safe cell
// at the storage layer; the Getter/Setter/Property contracts do not
// change.
package prop

// Getter is the owner-erased read capability over a property of type T.
type Getter[T any] interface {
	// Get returns the shared cell holding the current value. The
	// returned handle aliases the owner's storage; it is not a copy.
	Get() *Cell[T]
}

// Setter is the owner-erased write capability over a property of type T.
type Setter[T any] interface {
	// Set replaces the value held by the underlying cell.
	Set(v T)
}

// Accessor combines the read and write capabilities. Implementation
// satisfies it for concrete owners; Property boxes it with the owner
// type erased.
type Accessor[T any] interface {
	Getter[T]
	Setter[T]
}
