package prop

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrBorrowed indicates an access overlapped an outstanding
	// exclusive borrow of a cell.
	ErrBorrowed = errors.New("cell already borrowed")

	// ErrNilAccessor indicates a property was constructed with a nil
	// getter or setter function.
	ErrNilAccessor = errors.New("nil accessor function")

	// ErrConditionFailed indicates a conditional get or set was
	// rejected by its predicate.
	ErrConditionFailed = errors.New("condition failed")
)

// BorrowError reports a violation of the cell borrow discipline. It is
// delivered by panic at the point of the offending borrow, never
// returned.
type BorrowError struct {
	Op string // operation that attempted the borrow (read, replace, update)
}

func (e *BorrowError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", ErrBorrowed.Error(), e.Op)
	}
	return ErrBorrowed.Error()
}

func (e *BorrowError) Unwrap() error {
	return ErrBorrowed
}

// BindError reports an invalid property construction.
// It wraps a sentinel error with the property and owner involved.
type BindError struct {
	Err      error  // underlying sentinel error (ErrNilAccessor)
	Property string // property name, when known
	Owner    string // owner type name
}

func (e *BindError) Error() string {
	switch {
	case e.Property != "" && e.Owner != "":
		return fmt.Sprintf("%s for property %q on %s", e.Err.Error(), e.Property, e.Owner)
	case e.Property != "":
		return fmt.Sprintf("%s for property %q", e.Err.Error(), e.Property)
	case e.Owner != "":
		return fmt.Sprintf("%s on %s", e.Err.Error(), e.Owner)
	default:
		return e.Err.Error()
	}
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// AccessError reports a rejected conditional access. A rejected set
// leaves the cell unchanged.
type AccessError struct {
	Err      error  // underlying sentinel error (ErrConditionFailed)
	Op       string // operation that was rejected (get, set)
	Property string // property name, when known
}

func (e *AccessError) Error() string {
	if e.Property != "" {
		return fmt.Sprintf("%s %q: %s", e.Op, e.Property, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// newBorrowError creates a BorrowError for the given operation.
func newBorrowError(op string) *BorrowError {
	return &BorrowError{Op: op}
}

// newBindError creates a BindError for construction failures.
func newBindError(property, owner string) *BindError {
	return &BindError{
		Err:      ErrNilAccessor,
		Property: property,
		Owner:    owner,
	}
}

// newAccessError creates an AccessError for rejected conditional accesses.
func newAccessError(op, property string) *AccessError {
	return &AccessError{
		Err:      ErrConditionFailed,
		Op:       op,
		Property: property,
	}
}
