// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package traits

// Then applies f to p unless p is nil, a nil-safe member access:
//
//	city := traits.Then(user, func(u *User) *City { return u.Address.City })
func Then[A, B any](p *A, f func(*A) *B) *B {
	if p == nil {
		return nil
	}
	return f(p)
}

// Then2 chains two nil-safe steps.
func Then2[A, B, C any](p *A, f func(*A) *B, g func(*B) *C) *C {
	return Then(Then(p, f), g)
}

// Then3 chains three nil-safe steps.
func Then3[A, B, C, D any](p *A, f func(*A) *B, g func(*B) *C, h func(*C) *D) *D {
	return Then(Then2(p, f, g), h)
}

// Do calls f with p unless p is nil and reports whether f was called.
func Do[A any](p *A, f func(*A)) bool {
	if p == nil {
		return false
	}
	f(p)
	return true
}

// ValueOr dereferences p or returns def for a nil p.
func ValueOr[A any](p *A, def A) A {
	if p == nil {
		return def
	}
	return *p
}
