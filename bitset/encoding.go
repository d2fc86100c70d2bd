// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"io"
)

var (
	_ encoding.TextMarshaler     = (*Bitset[W8])(nil)
	_ encoding.TextUnmarshaler   = (*Bitset[W8])(nil)
	_ encoding.BinaryMarshaler   = (*Bitset[W8])(nil)
	_ encoding.BinaryUnmarshaler = (*Bitset[W8])(nil)
	_ io.WriterTo                = (*Bitset[W8])(nil)
	_ io.ReaderFrom              = (*Bitset[W8])(nil)
)

// MarshalText implements [encoding.TextMarshaler], see [Bitset.String].
func (b *Bitset[W]) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], see [Parse].
func (b *Bitset[W]) UnmarshalText(text []byte) error {
	p, err := Parse[W](string(text))
	if err != nil {
		return err
	}
	*b = *p
	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler].
//
// Layout, little endian: the width as uint64, followed by the words.
func (b *Bitset[W]) MarshalBinary() ([]byte, error) {
	ws := b.view()
	buf := make([]byte, 8+8*len(ws))

	binary.LittleEndian.PutUint64(buf, uint64(b.Len()))
	for i, word := range ws {
		binary.LittleEndian.PutUint64(buf[8+8*i:], word)
	}
	return buf, nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (b *Bitset[W]) UnmarshalBinary(data []byte) error {
	if len(data) < 8 {
		return fmt.Errorf("%w: short header, %d bytes", ErrInvalidEncoding, len(data))
	}

	if width := binary.LittleEndian.Uint64(data); width != uint64(b.Len()) {
		return fmt.Errorf("%w: got %d, want %d", ErrWidthMismatch, width, b.Len())
	}

	nWords := wordsNeeded(b.Len())
	if len(data) != 8+8*nWords {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidEncoding, len(data), 8+8*nWords)
	}

	words := make([]uint64, nWords)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(data[8+8*i:])
	}

	if nWords > 0 && words[nWords-1]&^tailMask(b.Len()) != 0 {
		return fmt.Errorf("%w: bits set beyond width %d", ErrInvalidEncoding, b.Len())
	}

	b.words = words
	return nil
}

// WriteTo implements [io.WriterTo] with the layout of [Bitset.MarshalBinary].
func (b *Bitset[W]) WriteTo(w io.Writer) (int64, error) {
	buf, err := b.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// ReadFrom implements [io.ReaderFrom] with the layout of [Bitset.MarshalBinary].
// It reads exactly the bytes of one encoded bitset of width W.
func (b *Bitset[W]) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, 8+8*wordsNeeded(b.Len()))

	n, err := io.ReadFull(r, buf)
	if err != nil {
		return int64(n), fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return int64(n), b.UnmarshalBinary(buf)
}
