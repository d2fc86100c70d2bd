// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package constraints defines the compile-time type constraints of eden.
//
// The numeric constraints extend [golang.org/x/exp/constraints], the
// behavioral ones describe what the containers look for in an element
// type. Use the runtime counterparts in package traits when a decision
// has to be made inside a generic function.
package constraints

import (
	"golang.org/x/exp/constraints"

	"github.com/gaissmai/eden/internal/value"
)

// Signed permits any signed integer type.
type Signed interface {
	constraints.Signed
}

// Unsigned permits any unsigned integer type.
type Unsigned interface {
	constraints.Unsigned
}

// Integer permits any integer type.
type Integer interface {
	constraints.Integer
}

// Float permits any floating-point type.
type Float interface {
	constraints.Float
}

// Complex permits any complex numeric type.
type Complex interface {
	constraints.Complex
}

// Arithmetic permits any type supporting + - * /, integers, floats and complex numbers.
type Arithmetic interface {
	Integer | Float | Complex
}

// Ordered permits any type supporting the operators < <= >= >.
type Ordered interface {
	constraints.Ordered
}

// PointerTo permits pointers to T, including named pointer types.
type PointerTo[T any] interface {
	~*T
}

// Cloner is implemented by types that deep-copy themselves.
type Cloner[T any] interface {
	value.Cloner[T]
}

// Equaler is implemented by types that decide their own equality.
type Equaler[T any] interface {
	value.Equaler[T]
}
