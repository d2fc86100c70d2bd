// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package alloc

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Limited wraps an allocator with a byte budget.
//
// Requests exceeding the remaining budget fail with ErrOutOfMemory,
// nothing is forwarded to the wrapped allocator then.
// Limited is safe for concurrent use if the wrapped allocator is.
type Limited[T any] struct {
	next   Allocator[T]
	budget int64
	sem    *semaphore.Weighted
	used   atomic.Int64
	log    *zap.Logger
}

// Option configures a Limited allocator.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger reports denied requests to l at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// NewLimited returns an allocator forwarding to next, at most budget bytes
// outstanding. A nil next allocates from the heap.
func NewLimited[T any](next Allocator[T], budget int64, opts ...Option) *Limited[T] {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	if next == nil {
		next = Heap[T]{}
	}
	budget = max(budget, 0)

	return &Limited[T]{
		next:   next,
		budget: budget,
		sem:    semaphore.NewWeighted(budget),
		log:    o.log,
	}
}

// Allocate reserves the bytes for n elements and forwards the request.
// The reservation is rolled back if the wrapped allocator fails.
func (l *Limited[T]) Allocate(n int) ([]T, error) {
	size, err := Bytes[T](n)
	if err != nil {
		return nil, err
	}

	if !l.sem.TryAcquire(size) {
		l.log.Debug("allocation denied",
			zap.Int("elems", n),
			zap.Int64("bytes", size),
			zap.Int64("used", l.used.Load()),
			zap.Int64("budget", l.budget))

		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use",
			ErrOutOfMemory, size, l.used.Load(), l.budget)
	}

	s, err := l.next.Allocate(n)
	if err != nil {
		l.sem.Release(size)
		return nil, err
	}

	l.used.Add(size)
	return s, nil
}

// Deallocate forwards s and returns its bytes to the budget.
func (l *Limited[T]) Deallocate(s []T) {
	if len(s) == 0 {
		return
	}

	size, err := Bytes[T](len(s))
	if err != nil {
		return
	}

	l.next.Deallocate(s)
	l.used.Add(-size)
	l.sem.Release(size)
}

// Used returns the bytes currently allocated through l.
func (l *Limited[T]) Used() int64 {
	return l.used.Load()
}

// Budget returns the configured limit in bytes.
func (l *Limited[T]) Budget() int64 {
	return l.budget
}
