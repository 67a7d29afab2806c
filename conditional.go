package prop

import "context"

// Conditional accessors gate property access on a predicate evaluated
// against the current value. Rejection is an error value, checked with
// errors.Is(err, ErrConditionFailed); it is never a panic and a
// rejected set never touches the cell.

// GetIf returns the cell handle when the predicate holds for the
// current value. On rejection the handle is withheld and an
// *AccessError wrapping ErrConditionFailed is returned.
func (p Property[T]) GetIf(when func(T) bool) (*Cell[T], error) {
	cell := p.impl.Get()
	if !when(cell.Get()) {
		err := newAccessError("get", p.name)
		emitGetDenied(context.Background(), p.name, valueTypeName[T](), err)
		return nil, err
	}
	return cell, nil
}

// SetIf replaces the value when the predicate holds for the current
// value. On rejection the cell is left unchanged, so a later get still
// observes the previous value.
func (p Property[T]) SetIf(v T, when func(T) bool) error {
	if !when(p.impl.Get().Get()) {
		err := newAccessError("set", p.name)
		emitSetDenied(context.Background(), p.name, valueTypeName[T](), err)
		return err
	}
	p.impl.Set(v)
	return nil
}
