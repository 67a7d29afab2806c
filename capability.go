package prop

// GetFunc reads the cell backing a property from its owner. It must
// return the identical cell for the same owner on every call; a fresh
// cell per call would break aliasing across handles derived from the
// same property. Method expressions fit the signature directly:
// (*Dog).sizeCell is a GetFunc[*Dog, uint64].
type GetFunc[S, T any] func(S) *Cell[T]

// SetFunc replaces the value backing a property on its owner.
type SetFunc[S, T any] func(S, T)

// boundGetter pairs one owner instance with its read accessor. The
// function is stored verbatim at construction and invoked on every Get.
type boundGetter[S, T any] struct {
	owner S
	fn    GetFunc[S, T]
}

func (g boundGetter[S, T]) Get() *Cell[T] {
	return g.fn(g.owner)
}

// boundSetter pairs one owner instance with its write accessor.
type boundSetter[S, T any] struct {
	owner S
	fn    SetFunc[S, T]
}

func (s boundSetter[S, T]) Set(v T) {
	s.fn(s.owner, v)
}
