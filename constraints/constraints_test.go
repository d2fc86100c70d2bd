// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package constraints_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaissmai/eden/constraints"
)

func sum[T constraints.Arithmetic](xs ...T) (s T) {
	for _, x := range xs {
		s += x
	}
	return
}

func maxOf[T constraints.Ordered](x T, ys ...T) T {
	for _, y := range ys {
		if y > x {
			x = y
		}
	}
	return x
}

func abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func highBit[T constraints.Unsigned](x T) (n int) {
	for x != 0 {
		x >>= 1
		n++
	}
	return
}

func deref[T any, P constraints.PointerTo[T]](p P) T {
	return *p
}

func cloneAll[T constraints.Cloner[T]](xs []T) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = x.Clone()
	}
	return out
}

func equalAll[T constraints.Equaler[T]](xs, ys []T) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !xs[i].Equal(ys[i]) {
			return false
		}
	}
	return true
}

type celsius float32

type intPtr *int

type box struct{ v []int }

func (b box) Clone() box       { return box{v: append([]int(nil), b.v...)} }
func (b box) Equal(o box) bool { return len(b.v) == len(o.v) }

func TestArithmetic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, sum(1, 2, 3))
	assert.Equal(t, uint8(255), sum[uint8](200, 55))
	assert.InDelta(t, 3.5, sum(1.5, 2.0), 1e-9)
	assert.Equal(t, complex(2, 2), sum(complex(1, 1), complex(1, 1)))
	assert.Equal(t, celsius(21.5), sum[celsius](20, 1.5))
}

func TestOrdered(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 9, maxOf(3, 9, 1))
	assert.Equal(t, "pear", maxOf("apple", "pear", "fig"))
	assert.Equal(t, celsius(3), maxOf[celsius](-1, 3))
}

func TestSignedUnsigned(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int8(5), abs[int8](-5))
	assert.Equal(t, 2.5, abs(-2.5))
	assert.Equal(t, 8, highBit[uint8](0x80))
	assert.Equal(t, 0, highBit[uint](0))
}

func TestPointerTo(t *testing.T) {
	t.Parallel()

	x := 42
	assert.Equal(t, 42, deref[int](&x))
	assert.Equal(t, 42, deref[int](intPtr(&x)))
}

func TestClonerEqualer(t *testing.T) {
	t.Parallel()

	orig := []box{{v: []int{1}}, {v: []int{2, 3}}}
	clones := cloneAll(orig)
	clones[0].v = append(clones[0].v, 9)

	assert.Equal(t, []int{1}, orig[0].v)
	assert.False(t, equalAll(orig, clones))
	assert.True(t, equalAll(orig, cloneAll(orig)))
}
