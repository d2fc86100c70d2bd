// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitset implements a bounded bitset, a fixed width sequence of
// boolean flags packed into 64 bit words.
//
// The width is part of the type:
//
//	a := bitset.MustParse[bitset.W16]("1010")
//	b := bitset.New[bitset.W16]()
//	c := a.And(b) // ok, same width
//
// A Bitset[W8] can't be combined with a Bitset[W16], the compiler
// rejects it. Single bit accessors are bounds checked against the width
// and return [ErrOutOfRange] for bits >= Len().
//
// Studied [github.com/bits-and-blooms/bitset] inside out
// and rewrote needed parts from scratch for the bounded use case.
package bitset

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

var (
	// ErrOutOfRange is returned for bit positions >= width.
	ErrOutOfRange = errors.New("bitset: bit out of range")

	// ErrInvalidChar is returned when parsing text with characters other than '0' or '1'.
	ErrInvalidChar = errors.New("bitset: invalid character")

	// ErrWidthMismatch is returned when decoding a bitset of another width.
	ErrWidthMismatch = errors.New("bitset: width mismatch")

	// ErrInvalidEncoding is returned when decoding malformed binary data.
	ErrInvalidEncoding = errors.New("bitset: invalid encoding")
)

//   i>>6 is the word index of bit i, like (i / 64) but faster
//   i&63 is the bit index in the word, like (i % 64) but mostly faster

// Bitset is a fixed width set of bits, the width is given by W.
//
// The zero value is an empty bitset ready to use, the words are
// allocated on first write. Bits at positions >= width are never set.
//
// Bitset is not safe for concurrent use.
type Bitset[W Width] struct {
	words []uint64
}

// New returns an all-zero bitset.
func New[W Width]() *Bitset[W] {
	b := new(Bitset[W])
	b.init()
	return b
}

// Parse returns a bitset from its textual representation, most significant
// bit first: the last character of s is bit 0.
//
// Strings shorter than the width leave the high bits zero. Strings longer
// than the width are truncated from the front, the extra leading characters
// are ignored. Every remaining character must be '0' or '1', otherwise
// [ErrInvalidChar] is returned.
func Parse[W Width](s string) (*Bitset[W], error) {
	b := New[W]()
	n := b.Len()

	// skip the truncated prefix
	start := 0
	if uint(len(s)) > n {
		start = len(s) - int(n)
	}
	for i := start; i < len(s); i++ {
		if c := s[i]; c != '0' && c != '1' {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidChar, c, i)
		}
	}

	last := len(s) - 1
	for i := 0; uint(i) < n && i <= last; i++ {
		if s[last-i] == '1' {
			b.words[i>>6] |= 1 << (i & 63)
		}
	}
	return b, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse[W Width](s string) *Bitset[W] {
	b, err := Parse[W](s)
	if err != nil {
		panic(err)
	}
	return b
}

// init allocates the words on first write.
func (b *Bitset[W]) init() {
	if b.words == nil {
		b.words = make([]uint64, wordsNeeded(b.Len()))
	}
}

// zeroWords backs the view of zero value bitsets up to W1024, read only.
var zeroWords [16]uint64

// view returns the words for reading, all-zero for the zero value.
// The result must not be modified.
func (b *Bitset[W]) view() []uint64 {
	if b.words != nil {
		return b.words
	}
	n := wordsNeeded(b.Len())
	if n <= len(zeroWords) {
		return zeroWords[:n:n]
	}
	return make([]uint64, n)
}

// mask clears the bits beyond the width in the last word.
func (b *Bitset[W]) mask() {
	if len(b.words) == 0 {
		return
	}
	b.words[len(b.words)-1] &= tailMask(b.Len())
}

// Len returns the width, the number of addressable bits.
func (b *Bitset[W]) Len() uint {
	var w W
	return w.Bits()
}

// check returns ErrOutOfRange for bits >= width.
func (b *Bitset[W]) check(i uint) error {
	if n := b.Len(); i >= n {
		return fmt.Errorf("%w: bit %d, width %d", ErrOutOfRange, i, n)
	}
	return nil
}

// Test reports whether bit i is set.
func (b *Bitset[W]) Test(i uint) (bool, error) {
	if err := b.check(i); err != nil {
		return false, err
	}
	if b.words == nil {
		return false, nil
	}
	return b.words[i>>6]&(1<<(i&63)) != 0, nil
}

// Set sets bit i to 1.
func (b *Bitset[W]) Set(i uint) error {
	return b.SetTo(i, true)
}

// SetTo sets bit i to value.
func (b *Bitset[W]) SetTo(i uint, value bool) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.init()
	if value {
		b.words[i>>6] |= 1 << (i & 63)
	} else {
		b.words[i>>6] &^= 1 << (i & 63)
	}
	return nil
}

// Clear sets bit i to 0.
func (b *Bitset[W]) Clear(i uint) error {
	return b.SetTo(i, false)
}

// Flip toggles bit i.
func (b *Bitset[W]) Flip(i uint) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.init()
	b.words[i>>6] ^= 1 << (i & 63)
	return nil
}

// SetAll sets all bits to 1.
func (b *Bitset[W]) SetAll() *Bitset[W] {
	b.init()
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	b.mask()
	return b
}

// ClearAll sets all bits to 0.
func (b *Bitset[W]) ClearAll() *Bitset[W] {
	clear(b.words)
	return b
}

// FlipAll toggles all bits.
func (b *Bitset[W]) FlipAll() *Bitset[W] {
	b.init()
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
	b.mask()
	return b
}

// All reports whether all bits are set. A bitset of width 0 is all set.
func (b *Bitset[W]) All() bool {
	ws := b.view()
	if len(ws) == 0 {
		return true
	}

	last := len(ws) - 1
	for _, word := range ws[:last] {
		if word != ^uint64(0) {
			return false
		}
	}
	return ws[last] == tailMask(b.Len())
}

// Any reports whether at least one bit is set.
func (b *Bitset[W]) Any() bool {
	for _, word := range b.words {
		if word != 0 {
			return true
		}
	}
	return false
}

// None reports whether no bit is set.
func (b *Bitset[W]) None() bool {
	return !b.Any()
}

// Count returns the number of set bits, also known as popcount.
func (b *Bitset[W]) Count() (cnt int) {
	for _, word := range b.words {
		cnt += bits.OnesCount64(word)
	}
	return
}

// Clone returns a copy with its own storage.
func (b *Bitset[W]) Clone() *Bitset[W] {
	c := New[W]()
	copy(c.words, b.words)
	return c
}

// Equal reports whether b and c have the same bits set.
func (b *Bitset[W]) Equal(c *Bitset[W]) bool {
	bw, cw := b.view(), c.view()
	for i := range bw {
		if bw[i] != cw[i] {
			return false
		}
	}
	return true
}

// combine returns a new bitset with op applied word by word.
func (b *Bitset[W]) combine(c *Bitset[W], op func(x, y uint64) uint64) *Bitset[W] {
	r := New[W]()
	bw, cw := b.view(), c.view()

	// same width, same length
	for i := range bw {
		r.words[i] = op(bw[i], cw[i])
	}
	r.mask()
	return r
}

// And returns the intersection of b and c, the bitset equivalent of &.
func (b *Bitset[W]) And(c *Bitset[W]) *Bitset[W] {
	return b.combine(c, func(x, y uint64) uint64 { return x & y })
}

// Or returns the union of b and c, the bitset equivalent of |.
func (b *Bitset[W]) Or(c *Bitset[W]) *Bitset[W] {
	return b.combine(c, func(x, y uint64) uint64 { return x | y })
}

// Xor returns the symmetric difference of b and c, the bitset equivalent of ^.
func (b *Bitset[W]) Xor(c *Bitset[W]) *Bitset[W] {
	return b.combine(c, func(x, y uint64) uint64 { return x ^ y })
}

// AndNot returns the difference of b and c, the bitset equivalent of &^.
func (b *Bitset[W]) AndNot(c *Bitset[W]) *Bitset[W] {
	return b.combine(c, func(x, y uint64) uint64 { return x &^ y })
}

// Not returns the complement of b, the bitset equivalent of ^x.
func (b *Bitset[W]) Not() *Bitset[W] {
	return b.Clone().FlipAll()
}

// InPlaceAnd overwrites b with the intersection of b and c.
func (b *Bitset[W]) InPlaceAnd(c *Bitset[W]) *Bitset[W] {
	*b = *b.And(c)
	return b
}

// InPlaceOr overwrites b with the union of b and c.
func (b *Bitset[W]) InPlaceOr(c *Bitset[W]) *Bitset[W] {
	*b = *b.Or(c)
	return b
}

// InPlaceXor overwrites b with the symmetric difference of b and c.
func (b *Bitset[W]) InPlaceXor(c *Bitset[W]) *Bitset[W] {
	*b = *b.Xor(c)
	return b
}

// InPlaceNot overwrites b with its complement.
func (b *Bitset[W]) InPlaceNot() *Bitset[W] {
	return b.FlipAll()
}

// ShiftLeft returns a new bitset with all bits moved n positions up.
// Bits moved beyond the width are dropped.
func (b *Bitset[W]) ShiftLeft(n uint) *Bitset[W] {
	r := New[W]()
	if n >= b.Len() {
		return r
	}

	src := b.view()
	wShift, bShift := int(n>>6), n&63

	for i := len(r.words) - 1; i >= wShift; i-- {
		word := src[i-wShift] << bShift
		if bShift != 0 && i-wShift-1 >= 0 {
			word |= src[i-wShift-1] >> (64 - bShift)
		}
		r.words[i] = word
	}
	r.mask()
	return r
}

// ShiftRight returns a new bitset with all bits moved n positions down.
// Bits moved below zero are dropped.
func (b *Bitset[W]) ShiftRight(n uint) *Bitset[W] {
	r := New[W]()
	if n >= b.Len() {
		return r
	}

	src := b.view()
	wShift, bShift := int(n>>6), n&63
	last := len(src) - 1

	for i := 0; i+wShift <= last; i++ {
		word := src[i+wShift] >> bShift
		if bShift != 0 && i+wShift+1 <= last {
			word |= src[i+wShift+1] << (64 - bShift)
		}
		r.words[i] = word
	}
	return r
}

// NextSet returns the next bit set from the specified start bit,
// including possibly the current bit along with an ok code.
func (b *Bitset[W]) NextSet(i uint) (uint, bool) {
	x := int(i >> 6)
	if x >= len(b.words) || i >= b.Len() {
		return 0, false
	}

	// process the first (maybe partial) word
	if first := b.words[x] >> (i & 63); first != 0 {
		return i + uint(bits.TrailingZeros64(first)), true
	}

	// process the following words until next bit is set
	x++
	for j, word := range b.words[x:] {
		if word != 0 {
			return uint((x+j)<<6 + bits.TrailingZeros64(word)), true
		}
	}
	return 0, false
}

// AsSlice appends all set bits to buf[:0] and returns it.
func (b *Bitset[W]) AsSlice(buf []uint) []uint {
	buf = buf[:0]
	for wIdx, word := range b.words {
		for word != 0 {
			buf = append(buf, uint(wIdx<<6+bits.TrailingZeros64(word)))

			// clear the rightmost set bit
			word &= word - 1
		}
	}
	return buf
}

// Words returns a copy of the underlying words, bit 0 is the lowest bit of word 0.
func (b *Bitset[W]) Words() []uint64 {
	return append([]uint64(nil), b.view()...)
}

// String returns the bits as '0' and '1' characters, most significant bit
// first, exactly Len() characters long. The result parses back with [Parse].
func (b *Bitset[W]) String() string {
	n := b.Len()
	ws := b.view()

	var sb strings.Builder
	sb.Grow(int(n))
	for i := n; i > 0; i-- {
		if ws[(i-1)>>6]&(1<<((i-1)&63)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
