package prop

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for property events.
var (
	SignalDefined   = capitan.NewSignal("prop.defined", "Property bound and erased")
	SignalSet       = capitan.NewSignal("prop.set", "Property value replaced")
	SignalSetDenied = capitan.NewSignal("prop.set.denied", "Conditional set rejected")
	SignalGetDenied = capitan.NewSignal("prop.get.denied", "Conditional get rejected")
	SignalWatch     = capitan.NewSignal("prop.watch", "Watcher subscribed")
	SignalUnwatch   = capitan.NewSignal("prop.unwatch", "Watcher cancelled")
)

// Keys for typed event data.
var (
	KeyProperty  = capitan.NewStringKey("property")
	KeyOwner     = capitan.NewStringKey("owner")
	KeyValueType = capitan.NewStringKey("value_type")
	KeyWatchers  = capitan.NewIntKey("watchers")
	KeyError     = capitan.NewErrorKey("error")
)

// emitDefined emits an event when an implementation is erased into a
// property handle.
func emitDefined(ctx context.Context, property, owner, valueType string) {
	capitan.Emit(ctx, SignalDefined,
		KeyProperty.Field(property),
		KeyOwner.Field(owner),
		KeyValueType.Field(valueType),
	)
}

// emitSet emits an event when a property value is replaced.
func emitSet(ctx context.Context, property, valueType string) {
	capitan.Emit(ctx, SignalSet,
		KeyProperty.Field(property),
		KeyValueType.Field(valueType),
	)
}

// emitSetDenied emits an event when a conditional set is rejected.
func emitSetDenied(ctx context.Context, property, valueType string, err error) {
	capitan.Error(ctx, SignalSetDenied,
		KeyProperty.Field(property),
		KeyValueType.Field(valueType),
		KeyError.Field(err),
	)
}

// emitGetDenied emits an event when a conditional get is rejected.
func emitGetDenied(ctx context.Context, property, valueType string, err error) {
	capitan.Error(ctx, SignalGetDenied,
		KeyProperty.Field(property),
		KeyValueType.Field(valueType),
		KeyError.Field(err),
	)
}

// emitWatch emits an event when a watcher subscribes.
func emitWatch(ctx context.Context, property string, watchers int) {
	capitan.Emit(ctx, SignalWatch,
		KeyProperty.Field(property),
		KeyWatchers.Field(watchers),
	)
}

// emitUnwatch emits an event when a watcher is cancelled.
func emitUnwatch(ctx context.Context, property string, watchers int) {
	capitan.Emit(ctx, SignalUnwatch,
		KeyProperty.Field(property),
		KeyWatchers.Field(watchers),
	)
}
