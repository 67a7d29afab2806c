package prop

import (
	"context"
	"sync"
)

// CancelFunc removes a watcher registered with Watch. Calling it more
// than once is a no-op.
type CancelFunc func()

// watcher pairs a subscription id with its callback.
type watcher[T any] struct {
	id uint64
	fn func(old, next T)
}

// Observable decorates an erased property with change notification.
// It satisfies Accessor[T], so an observed property can be erased again
// via Property; consumers holding only the re-erased handle still
// trigger watchers on every write.
//
// Notification contract: watchers run synchronously on the Set call, in
// subscription order, against a snapshot of the watcher list taken
// before the first callback. Cancelling during notification affects
// subsequent Set calls, not the in-flight one. A watcher that calls Set
// re-enters; the nested write completes (and notifies) before the outer
// notification continues.
type Observable[T any] struct {
	prop Property[T]

	mu       sync.Mutex
	nextID   uint64
	watchers []watcher[T]
}

// Observe wraps p with change notification.
func Observe[T any](p Property[T]) *Observable[T] {
	return &Observable[T]{prop: p}
}

// Name returns the diagnostic name of the wrapped property.
func (o *Observable[T]) Name() string {
	return o.prop.Name()
}

// Get delegates to the wrapped property. Reads do not notify.
func (o *Observable[T]) Get() *Cell[T] {
	return o.prop.Get()
}

// Value reads the current value through the cell.
func (o *Observable[T]) Value() T {
	return o.prop.Value()
}

// Set replaces the value and notifies watchers with the prior and new
// values. Set returns after the last watcher has run.
func (o *Observable[T]) Set(v T) {
	old := o.prop.Get().Get()
	o.prop.Set(v)

	o.mu.Lock()
	snapshot := make([]watcher[T], len(o.watchers))
	copy(snapshot, o.watchers)
	o.mu.Unlock()

	for _, w := range snapshot {
		w.fn(old, v)
	}
}

// Watch registers fn to run on every subsequent Set. Past writes are
// not replayed. The returned CancelFunc removes the watcher.
func (o *Observable[T]) Watch(fn func(old, next T)) CancelFunc {
	o.mu.Lock()
	o.nextID++
	id := o.nextID
	o.watchers = append(o.watchers, watcher[T]{id: id, fn: fn})
	count := len(o.watchers)
	o.mu.Unlock()

	emitWatch(context.Background(), o.prop.Name(), count)

	var once sync.Once
	return func() {
		once.Do(func() { o.unwatch(id) })
	}
}

// unwatch removes the watcher with the given id.
func (o *Observable[T]) unwatch(id uint64) {
	o.mu.Lock()
	for i, w := range o.watchers {
		if w.id == id {
			o.watchers = append(o.watchers[:i], o.watchers[i+1:]...)
			break
		}
	}
	count := len(o.watchers)
	o.mu.Unlock()

	emitUnwatch(context.Background(), o.prop.Name(), count)
}

// Property erases the observable back into an owner-agnostic handle.
// Writes through the returned handle flow through Set above, so
// watchers fire no matter which handle the caller holds.
func (o *Observable[T]) Property() Property[T] {
	return Property[T]{name: o.prop.name, impl: o}
}
