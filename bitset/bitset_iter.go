// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

import (
	"iter"
	"math/bits"
)

// Bits iterates over all the set bits in ascending order.
func (b *Bitset[W]) Bits() iter.Seq[uint] {
	return func(yield func(u uint) bool) {
		for idx, word := range b.words {
			for word != 0 {
				u := uint(idx<<6 + bits.TrailingZeros64(word))

				if !yield(u) {
					return
				}

				// clear the rightmost set bit
				word &= word - 1
			}
		}
	}
}
