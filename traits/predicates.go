// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package traits answers yes/no questions about types at runtime.
//
// Go generics constrain what a type parameter can do at compile time,
// see package constraints. Inside a generic function the concrete type is
// still unknown, traits fills the gap with reflection:
//
//	if traits.IsPointer[T]() { ... }
//	if traits.Holds[T](traits.And(traits.Struct, traits.Not(traits.ContainsPointers))) { ... }
//
// Every predicate is a [Predicate] over [reflect.Type] and composes with
// [And], [Or] and [Not]. The IsX[T] functions are shortcuts for
// Holds[T](X).
package traits

import (
	"reflect"

	"github.com/gaissmai/eden/internal/value"
)

// Predicate is a yes/no question about a type.
// A nil type, the type of an untyped nil, never satisfies a kind predicate.
type Predicate func(reflect.Type) bool

// kinds returns a predicate matching any of the given kinds.
func kinds(ks ...reflect.Kind) Predicate {
	return func(t reflect.Type) bool {
		if t == nil {
			return false
		}
		for _, k := range ks {
			if t.Kind() == k {
				return true
			}
		}
		return false
	}
}

// kind predicates
var (
	Bool          = kinds(reflect.Bool)
	String        = kinds(reflect.String)
	Pointer       = kinds(reflect.Pointer)
	UnsafePointer = kinds(reflect.UnsafePointer)
	Array         = kinds(reflect.Array)
	Slice         = kinds(reflect.Slice)
	Map           = kinds(reflect.Map)
	Chan          = kinds(reflect.Chan)
	Func          = kinds(reflect.Func)
	Interface     = kinds(reflect.Interface)
	Struct        = kinds(reflect.Struct)

	SignedInt = kinds(reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64)

	UnsignedInt = kinds(reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr)

	FloatingPoint = kinds(reflect.Float32, reflect.Float64)

	Complex = kinds(reflect.Complex64, reflect.Complex128)
)

// composed predicates
var (
	// Integral matches signed and unsigned integer types, bool is no integer in Go.
	Integral = Or(SignedInt, UnsignedInt)

	// Arithmetic matches the types supporting + - * /.
	Arithmetic = Or(Integral, FloatingPoint, Complex)

	// Fundamental matches the predeclared basic types: bool, numeric and string types.
	Fundamental = Or(Bool, Arithmetic, String)

	// Enum matches defined integer types, the iota constants idiom.
	Enum = And(Integral, Defined)

	// Scalar matches types holding a single value: arithmetic, bool and pointers.
	Scalar = Or(Arithmetic, Bool, Pointer, UnsafePointer)

	// Nilable matches types with nil in their value set.
	Nilable = Or(Pointer, UnsafePointer, Slice, Map, Chan, Func, Interface)

	// Object matches everything except funcs and interfaces.
	Object = And(func(t reflect.Type) bool { return t != nil }, Not(Or(Func, Interface)))

	// Comparable matches types usable with == and as map keys.
	// Interface types are comparable but may panic at runtime.
	Comparable Predicate = func(t reflect.Type) bool { return t != nil && t.Comparable() }

	// ZeroSized matches types occupying no memory, like struct{} or [0]int.
	ZeroSized Predicate = func(t reflect.Type) bool { return t != nil && t.Size() == 0 }

	// ContainsPointers matches types whose values hold pointers the garbage collector must see.
	ContainsPointers Predicate = func(t reflect.Type) bool { return t != nil && hasPointers(t) }
)

// Defined reports whether t is a named type declared in a package,
// predeclared types like int are not defined in this sense.
var Defined Predicate = func(t reflect.Type) bool {
	return t != nil && t.Name() != "" && t.PkgPath() != ""
}

// hasPointers, rec-descent into arrays and structs.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// TypeOf returns the reflect.Type of T, also for interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Holds reports whether T satisfies p.
func Holds[T any](p Predicate) bool {
	return p(TypeOf[T]())
}

// Check reports whether the dynamic type of v satisfies p.
// The untyped nil has no type and satisfies no kind predicate.
func Check(v any, p Predicate) bool {
	return p(reflect.TypeOf(v))
}

// IsSame reports whether A and B are identical types.
func IsSame[A, B any]() bool {
	return TypeOf[A]() == TypeOf[B]()
}

// IsConvertible reports whether a value of type From is convertible to type To.
func IsConvertible[From, To any]() bool {
	return TypeOf[From]().ConvertibleTo(TypeOf[To]())
}

// IsAssignable reports whether a value of type From is assignable to type To.
func IsAssignable[From, To any]() bool {
	return TypeOf[From]().AssignableTo(TypeOf[To]())
}

// IsCloner reports whether T implements Clone() T.
func IsCloner[T any]() bool {
	return TypeOf[T]().Implements(TypeOf[value.Cloner[T]]())
}

// IsEqualer reports whether T implements Equal(T) bool.
func IsEqualer[T any]() bool {
	return TypeOf[T]().Implements(TypeOf[value.Equaler[T]]())
}

// IsMovable reports whether T can be moved. Every Go value can be moved by
// copying, types guarded by go vet's copylocks check excluded.
func IsMovable[T any]() bool {
	return true
}

// IsZeroSized reports whether T occupies no memory.
func IsZeroSized[T any]() bool {
	return value.IsZST[T]()
}

// HasPointers reports whether values of T contain pointers,
// such values must not live in memory hidden from the garbage collector.
func HasPointers[T any]() bool { return Holds[T](ContainsPointers) }

func IsBool[T any]() bool          { return Holds[T](Bool) }
func IsString[T any]() bool        { return Holds[T](String) }
func IsPointer[T any]() bool       { return Holds[T](Pointer) }
func IsUnsafePointer[T any]() bool { return Holds[T](UnsafePointer) }
func IsArray[T any]() bool         { return Holds[T](Array) }
func IsSlice[T any]() bool         { return Holds[T](Slice) }
func IsMap[T any]() bool           { return Holds[T](Map) }
func IsChan[T any]() bool          { return Holds[T](Chan) }
func IsFunc[T any]() bool          { return Holds[T](Func) }
func IsInterface[T any]() bool     { return Holds[T](Interface) }
func IsStruct[T any]() bool        { return Holds[T](Struct) }
func IsEnum[T any]() bool          { return Holds[T](Enum) }
func IsSigned[T any]() bool        { return Holds[T](SignedInt) }
func IsUnsigned[T any]() bool      { return Holds[T](UnsignedInt) }
func IsIntegral[T any]() bool      { return Holds[T](Integral) }
func IsFloatingPoint[T any]() bool { return Holds[T](FloatingPoint) }
func IsComplex[T any]() bool       { return Holds[T](Complex) }
func IsArithmetic[T any]() bool    { return Holds[T](Arithmetic) }
func IsFundamental[T any]() bool   { return Holds[T](Fundamental) }
func IsScalar[T any]() bool        { return Holds[T](Scalar) }
func IsObject[T any]() bool        { return Holds[T](Object) }
func IsNilable[T any]() bool       { return Holds[T](Nilable) }
func IsComparable[T any]() bool    { return Holds[T](Comparable) }
func IsDefined[T any]() bool       { return Holds[T](Defined) }

// IsNil reports whether v is nil or holds a nil value of a nilable type,
// like a nil pointer stored in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	if Nilable(rv.Type()) {
		return rv.IsNil()
	}
	return false
}
