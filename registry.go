package prop

import (
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

// descriptor is cached owner-type metadata used to stamp signals and
// errors. It carries no accessor information; properties are wired
// explicitly per owner, never discovered by name.
type descriptor struct {
	typeName string
}

var (
	descriptors   = make(map[reflect.Type]descriptor)
	descriptorsMu sync.RWMutex
)

// describeOwner returns the display name for owner type S, scanning it
// on first use and caching the result by reflect.Type.
func describeOwner[S any]() string {
	typ := reflect.TypeFor[S]()

	// Fast path: read-lock cache check
	descriptorsMu.RLock()
	if d, ok := descriptors[typ]; ok {
		descriptorsMu.RUnlock()
		return d.typeName
	}
	descriptorsMu.RUnlock()

	// Slow path: scan and cache with write-lock
	descriptorsMu.Lock()
	defer descriptorsMu.Unlock()

	// Double-check pattern
	if d, ok := descriptors[typ]; ok {
		return d.typeName
	}

	d := scanOwner[S](typ)
	descriptors[typ] = d
	return d.typeName
}

// scanOwner builds a descriptor, using sentinel metadata for struct
// owners and falling back to reflection for everything else.
func scanOwner[S any](typ reflect.Type) descriptor {
	base := typ
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}

	if base.Kind() != reflect.Struct {
		return descriptor{typeName: typ.String()}
	}

	if base == typ {
		spec := sentinel.Scan[S]()
		return descriptor{typeName: spec.TypeName}
	}

	// Pointer owner: sentinel knows the element type if it has been
	// scanned before, otherwise reflection supplies the name.
	if spec, ok := sentinel.Lookup(base.String()); ok {
		return descriptor{typeName: spec.TypeName}
	}
	return descriptor{typeName: base.Name()}
}

// valueTypeName returns the display name for a property's value type.
func valueTypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// ResetDescriptors clears the owner descriptor cache.
// This is primarily useful for test isolation.
func ResetDescriptors() {
	descriptorsMu.Lock()
	defer descriptorsMu.Unlock()
	descriptors = make(map[reflect.Type]descriptor)
}
