// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package traits

import "reflect"

// basicTypes maps the basic kinds to their predeclared types.
var basicTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:       reflect.TypeFor[bool](),
	reflect.Int:        reflect.TypeFor[int](),
	reflect.Int8:       reflect.TypeFor[int8](),
	reflect.Int16:      reflect.TypeFor[int16](),
	reflect.Int32:      reflect.TypeFor[int32](),
	reflect.Int64:      reflect.TypeFor[int64](),
	reflect.Uint:       reflect.TypeFor[uint](),
	reflect.Uint8:      reflect.TypeFor[uint8](),
	reflect.Uint16:     reflect.TypeFor[uint16](),
	reflect.Uint32:     reflect.TypeFor[uint32](),
	reflect.Uint64:     reflect.TypeFor[uint64](),
	reflect.Uintptr:    reflect.TypeFor[uintptr](),
	reflect.Float32:    reflect.TypeFor[float32](),
	reflect.Float64:    reflect.TypeFor[float64](),
	reflect.Complex64:  reflect.TypeFor[complex64](),
	reflect.Complex128: reflect.TypeFor[complex128](),
	reflect.String:     reflect.TypeFor[string](),
}

// RemovePointer returns the element type of a pointer type,
// any other type is returned unchanged.
func RemovePointer(t reflect.Type) reflect.Type {
	if Pointer(t) {
		return t.Elem()
	}
	return t
}

// RemoveAllPointers strips every level of indirection, **int becomes int.
func RemoveAllPointers(t reflect.Type) reflect.Type {
	for Pointer(t) {
		t = t.Elem()
	}
	return t
}

// AddPointer returns *t.
func AddPointer(t reflect.Type) reflect.Type {
	return reflect.PointerTo(t)
}

// SliceOf returns []t.
func SliceOf(t reflect.Type) reflect.Type {
	return reflect.SliceOf(t)
}

// Elem returns the element type of array, chan, map, pointer and slice types
// and nil for all others.
func Elem(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Pointer, reflect.Slice:
		return t.Elem()
	}
	return nil
}

// Underlying returns the predeclared type underlying a defined basic type,
// celsius with type celsius float64 becomes float64.
// Composite types have no predeclared counterpart and are returned unchanged.
func Underlying(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	if u, ok := basicTypes[t.Kind()]; ok {
		return u
	}
	return t
}
