package prop

import "context"

// Implementation composes a bound getter and a bound setter for one
// (owner, value) pair. It satisfies Accessor[T] and is the sole source
// of erased Property handles: build one with NewImplementation, then
// call Property to erase the owner type.
type Implementation[S, T any] struct {
	name   string
	getter boundGetter[S, T]
	setter boundSetter[S, T]
}

// NewImplementation binds owner to its two accessor functions. The
// functions are stored verbatim and invoked on every access; get must
// return the identical cell for this owner on every call. The name is
// diagnostic metadata carried into signals and errors.
func NewImplementation[S, T any](name string, owner S, get GetFunc[S, T], set SetFunc[S, T]) (*Implementation[S, T], error) {
	if get == nil || set == nil {
		return nil, newBindError(name, describeOwner[S]())
	}
	return &Implementation[S, T]{
		name:   name,
		getter: boundGetter[S, T]{owner: owner, fn: get},
		setter: boundSetter[S, T]{owner: owner, fn: set},
	}, nil
}

// Get forwards to the bound getter.
func (im *Implementation[S, T]) Get() *Cell[T] {
	return im.getter.Get()
}

// Set forwards to the bound setter.
func (im *Implementation[S, T]) Set(v T) {
	im.setter.Set(v)
	emitSet(context.Background(), im.name, valueTypeName[T]())
}

// Property erases the owner type, leaving only the value type visible.
// Ownership of the capability transfers to the returned handle; the
// implementation is not meant to be used directly afterward.
func (im *Implementation[S, T]) Property() Property[T] {
	emitDefined(context.Background(), im.name, describeOwner[S](), valueTypeName[T]())
	return Property[T]{name: im.name, impl: im}
}

// Define binds owner to its accessor functions and erases the result in
// one call. It is the construction path an owner uses in its own
// constructor. A nil accessor function is a definition-time programmer
// error and panics with a *BindError; use NewImplementation to handle
// it as a value instead.
func Define[S, T any](name string, owner S, get GetFunc[S, T], set SetFunc[S, T]) Property[T] {
	im, err := NewImplementation(name, owner, get, set)
	if err != nil {
		panic(err)
	}
	return im.Property()
}

// Property is the type-erased, owner-agnostic handle to a declared
// property. It owns one boxed Accessor[T] built from some erased owner
// type; code holding a Property[T] can read and write the value without
// ever naming that owner.
//
// Construct a Property via Implementation.Property (or the Define
// shorthand). The zero Property has no backing accessor and must not be
// used.
type Property[T any] struct {
	name string
	impl Accessor[T]
}

// Name returns the diagnostic name the property was defined with.
func (p Property[T]) Name() string {
	return p.name
}

// Get returns the shared cell holding the current value. Handles from
// successive calls alias the same cell, so a later Set is observed
// through all of them.
func (p Property[T]) Get() *Cell[T] {
	return p.impl.Get()
}

// Set replaces the value held by the underlying cell.
func (p Property[T]) Set(v T) {
	p.impl.Set(v)
}

// Value reads the current value through the cell.
func (p Property[T]) Value() T {
	return p.impl.Get().Get()
}

// Readable narrows the property to its read capability.
func (p Property[T]) Readable() ReadOnly[T] {
	return ReadOnly[T]{name: p.name, impl: p.impl}
}

// Writable narrows the property to its write capability.
func (p Property[T]) Writable() WriteOnly[T] {
	return WriteOnly[T]{name: p.name, impl: p.impl}
}

// ReadOnly is the get-only erased handle. It exposes no Set method;
// write access is absent from the type, not rejected at runtime.
type ReadOnly[T any] struct {
	name string
	impl Getter[T]
}

// Name returns the diagnostic name the property was defined with.
func (p ReadOnly[T]) Name() string {
	return p.name
}

// Get returns the shared cell holding the current value.
func (p ReadOnly[T]) Get() *Cell[T] {
	return p.impl.Get()
}

// Value reads the current value through the cell.
func (p ReadOnly[T]) Value() T {
	return p.impl.Get().Get()
}

// WriteOnly is the set-only erased handle. It exposes no Get method;
// read access is absent from the type, not rejected at runtime.
type WriteOnly[T any] struct {
	name string
	impl Setter[T]
}

// Name returns the diagnostic name the property was defined with.
func (p WriteOnly[T]) Name() string {
	return p.name
}

// Set replaces the value held by the underlying cell.
func (p WriteOnly[T]) Set(v T) {
	p.impl.Set(v)
}
