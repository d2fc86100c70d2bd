// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package alloc

import (
	"math/bits"
	"sync"
	"sync/atomic"
)

// maxClass, requests above 1<<maxClass elements bypass the pool.
const maxClass = 24

// Pool recycles slices in power of two size classes, one sync.Pool per class.
//
// It tracks statistics on allocations and active use for debugging
// and performance tuning. The zero value is ready to use, a nil *Pool
// allocates without recycling and tracking. A Pool must not be copied
// after first use.
type Pool[T any] struct {
	classes [maxClass + 1]sync.Pool // class c holds *[]T with cap 1<<c

	totalAllocated atomic.Int64 // slices ever created by this pool
	currentLive    atomic.Int64 // slices handed out and not yet returned
}

// NewPool returns a new pool for slices of T.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// sizeClass returns the smallest c with 1<<c >= n.
func sizeClass(n int) int {
	return bits.Len(uint(n - 1))
}

// Allocate retrieves a slice from the pool, or creates a new one if needed.
func (p *Pool[T]) Allocate(n int) ([]T, error) {
	if _, err := Bytes[T](n); err != nil {
		return nil, err
	}

	c := sizeClass(n)
	if p == nil || c > maxClass {
		return make([]T, n), nil
	}
	p.currentLive.Add(1)

	if sp, ok := p.classes[c].Get().(*[]T); ok {
		return (*sp)[:n], nil
	}

	p.totalAllocated.Add(1)
	return make([]T, n, 1<<c), nil
}

// Deallocate returns s back to the pool for potential reuse.
//
// The elements are cleared before storage. Slices whose capacity
// is no size class are discarded.
func (p *Pool[T]) Deallocate(s []T) {
	if p == nil || cap(s) == 0 {
		return
	}

	c := sizeClass(cap(s))
	if c > maxClass || cap(s) != 1<<c {
		return
	}
	p.currentLive.Add(-1)

	s = s[:cap(s)]
	clear(s) // drop references, keep storage
	p.classes[c].Put(&s)
}

// Stats returns the number of currently live (checked-out) slices
// and the total number of slices ever allocated by this pool.
func (p *Pool[T]) Stats() (live int64, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}
