// Package layout answers questions about the memory layout of Go types.
package layout

import (
	"reflect"
	"sync"
)

var cache sync.Map // reflect.Type -> bool

// HasPointers reports whether values of type T contain any pointer the
// garbage collector must see. Such values must not live in off-heap memory
// and must not have their bytes forged.
func HasPointers[T any]() bool {
	return TypeHasPointers(reflect.TypeFor[T]())
}

// TypeHasPointers is HasPointers for a reflect.Type.
func TypeHasPointers(t reflect.Type) bool {
	if v, ok := cache.Load(t); ok {
		return v.(bool)
	}
	has := walk(t)
	cache.Store(t, has)
	return has
}

func walk(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && walk(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if walk(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, UnsafePointer, String, Slice, Map, Chan, Func, Interface.
		return true
	}
}

// TypeName returns a printable name for T.
func TypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
