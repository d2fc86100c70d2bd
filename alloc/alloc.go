// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package alloc obtains and releases memory for the containers of eden.
//
// An [Allocator] hands out slices of exactly the requested length and takes
// them back, unchanged, when the caller is done. Allocation may fail and
// the failure is an explicit error, callers must check it.
//
// The allocators compose:
//
//	a := alloc.NewCounting(alloc.NewLimited(alloc.NewPool[int](), 1<<20))
package alloc

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"unsafe"
)

var (
	// ErrInvalidSize is returned for a non-positive element count.
	ErrInvalidSize = errors.New("alloc: invalid size")

	// ErrOutOfMemory is returned when a request can not be satisfied.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrPointerType is returned by allocators that hide their memory from
	// the garbage collector when the element type contains pointers.
	ErrPointerType = errors.New("alloc: element type contains pointers")

	// ErrUnsupported is returned on platforms lacking the allocator's mechanism.
	ErrUnsupported = errors.New("alloc: unsupported on this platform")
)

// maxBytes, larger requests make the runtime panic on 64-bit platforms.
const maxBytes = 1 << 47

// Allocator obtains and releases slices of T.
//
// Allocate returns a slice with len n, every element the zero value.
// Deallocate takes back a slice returned by Allocate of the same allocator,
// the caller must not use it afterwards.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(s []T)
}

// Bytes returns the number of bytes n elements of T occupy.
// It fails with ErrInvalidSize for n <= 0 and ErrOutOfMemory on overflow.
func Bytes[T any](n int) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	var zero T
	hi, lo := bits.Mul64(uint64(n), uint64(unsafe.Sizeof(zero)))
	if hi != 0 || lo > maxBytes || lo > math.MaxInt {
		return 0, fmt.Errorf("%w: %d elements of %d bytes", ErrOutOfMemory, n, unsafe.Sizeof(zero))
	}
	return int64(lo), nil
}

// Heap allocates from the garbage collected heap.
// It is stateless, the zero value is ready to use.
type Heap[T any] struct{}

// Allocate returns make([]T, n).
func (Heap[T]) Allocate(n int) ([]T, error) {
	if _, err := Bytes[T](n); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// Deallocate leaves s to the garbage collector.
func (Heap[T]) Deallocate([]T) {}
