// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package alloc

import "sync/atomic"

// Counting wraps an allocator and counts its traffic.
type Counting[T any] struct {
	next Allocator[T]

	allocs   atomic.Int64
	frees    atomic.Int64
	failures atomic.Int64
	live     atomic.Int64 // elements
}

// NewCounting returns a counting allocator forwarding to next,
// a nil next allocates from the heap.
func NewCounting[T any](next Allocator[T]) *Counting[T] {
	if next == nil {
		next = Heap[T]{}
	}
	return &Counting[T]{next: next}
}

// Allocate forwards to the wrapped allocator and counts the outcome.
func (c *Counting[T]) Allocate(n int) ([]T, error) {
	s, err := c.next.Allocate(n)
	if err != nil {
		c.failures.Add(1)
		return nil, err
	}
	c.allocs.Add(1)
	c.live.Add(int64(len(s)))
	return s, nil
}

// Deallocate counts the release of s and forwards it, an empty s is ignored.
func (c *Counting[T]) Deallocate(s []T) {
	if len(s) == 0 {
		return
	}
	c.frees.Add(1)
	c.live.Add(-int64(len(s)))
	c.next.Deallocate(s)
}

// Allocs returns the number of successful allocations.
func (c *Counting[T]) Allocs() int64 { return c.allocs.Load() }

// Frees returns the number of deallocations.
func (c *Counting[T]) Frees() int64 { return c.frees.Load() }

// Failures returns the number of failed allocations.
func (c *Counting[T]) Failures() int64 { return c.failures.Load() }

// LiveElems returns the number of elements allocated and not yet freed.
func (c *Counting[T]) LiveElems() int64 { return c.live.Load() }
