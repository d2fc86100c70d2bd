// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package traits

import "reflect"

// And returns a predicate satisfied when all ps are satisfied.
// And() without arguments is always true.
func And(ps ...Predicate) Predicate {
	return func(t reflect.Type) bool {
		for _, p := range ps {
			if !p(t) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate satisfied when any of ps is satisfied.
// Or() without arguments is always false.
func Or(ps ...Predicate) Predicate {
	return func(t reflect.Type) bool {
		for _, p := range ps {
			if p(t) {
				return true
			}
		}
		return false
	}
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(t reflect.Type) bool {
		return !p(t)
	}
}
