// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package vector

import "iter"

// All returns an iterator over the indices and elements in order.
// The sequence must not be modified during iteration.
func (s *Small[T, B]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range s.size {
			if !yield(i, *s.slot(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (s *Small[T, B]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range s.size {
			if !yield(*s.slot(i)) {
				return
			}
		}
	}
}

// AppendTo appends the elements to dst and returns the extended slice.
func (s *Small[T, B]) AppendTo(dst []T) []T {
	for i := range min(s.size, s.inlineCap()) {
		dst = append(dst, s.inline[i])
	}
	return append(dst, s.HeapData()...)
}
