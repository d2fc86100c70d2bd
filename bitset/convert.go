// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	bbs "github.com/bits-and-blooms/bitset"
)

// ToDynamic returns a copy as growable [bbs.BitSet] of length Len().
func (b *Bitset[W]) ToDynamic() *bbs.BitSet {
	return bbs.FromWithLength(b.Len(), b.Words())
}

// FromDynamic returns a bounded copy of d.
// Bits set at positions >= width are reported as [ErrOutOfRange].
func FromDynamic[W Width](d *bbs.BitSet) (*Bitset[W], error) {
	b := New[W]()
	if d == nil {
		return b, nil
	}

	for i, ok := d.NextSet(0); ok; i, ok = d.NextSet(i + 1) {
		if err := b.Set(i); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// ToRoaring returns the set bits as compressed [roaring.Bitmap].
// Widths beyond 1<<32 bits are not representable.
func (b *Bitset[W]) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	for i := range b.Bits() {
		rb.Add(uint32(i))
	}
	return rb
}

// FromRoaring returns a bounded copy of rb.
// Bits set at positions >= width are reported as [ErrOutOfRange].
func FromRoaring[W Width](rb *roaring.Bitmap) (*Bitset[W], error) {
	b := New[W]()
	if rb == nil {
		return b, nil
	}

	it := rb.Iterator()
	for it.HasNext() {
		i := uint(it.Next())
		if err := b.Set(i); err != nil {
			return nil, fmt.Errorf("from roaring: %w", err)
		}
	}
	return b, nil
}
