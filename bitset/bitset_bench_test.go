// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

import (
	"math/rand/v2"
	"testing"
)

var sink int

func BenchmarkCount(b *testing.B) {
	prng := rand.New(rand.NewPCG(42, 42))
	bs := randomBitset[W1024](prng)

	b.ResetTimer()
	for range b.N {
		sink = bs.Count()
	}
}

func BenchmarkAnd(b *testing.B) {
	prng := rand.New(rand.NewPCG(42, 42))
	x := randomBitset[W1024](prng)
	y := randomBitset[W1024](prng)

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		sink = x.And(y).Count()
	}
}

func BenchmarkTest(b *testing.B) {
	prng := rand.New(rand.NewPCG(42, 42))
	bs := randomBitset[W1024](prng)

	b.ResetTimer()
	for i := range b.N {
		if ok, _ := bs.Test(uint(i & 1023)); ok {
			sink++
		}
	}
}

func BenchmarkString(b *testing.B) {
	prng := rand.New(rand.NewPCG(42, 42))
	bs := randomBitset[W256](prng)

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		sink = len(bs.String())
	}
}
