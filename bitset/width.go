// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

// Width is the constraint for the width marker of a [Bitset].
//
// A width marker is an empty struct type with a Bits method returning the
// number of addressable bits. Two bitsets can only be combined when they
// share the same width marker, the compiler rejects everything else.
//
// Define your own width for sizes not predeclared here:
//
//	type W100 struct{}
//
//	func (W100) Bits() uint { return 100 }
type Width interface {
	~struct{}
	Bits() uint
}

// predeclared widths
type (
	W8    struct{}
	W16   struct{}
	W32   struct{}
	W64   struct{}
	W128  struct{}
	W256  struct{}
	W512  struct{}
	W1024 struct{}
)

func (W8) Bits() uint    { return 8 }
func (W16) Bits() uint   { return 16 }
func (W32) Bits() uint   { return 32 }
func (W64) Bits() uint   { return 64 }
func (W128) Bits() uint  { return 128 }
func (W256) Bits() uint  { return 256 }
func (W512) Bits() uint  { return 512 }
func (W1024) Bits() uint { return 1024 }

// wordsNeeded calculates the number of words needed for n bits.
func wordsNeeded(n uint) int {
	return int((n + 63) >> 6)
}

// tailMask returns the mask of the valid bits in the last word for width n.
func tailMask(n uint) uint64 {
	if n&63 == 0 {
		return ^uint64(0)
	}
	return 1<<(n&63) - 1
}
