// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

//go:build unix

package alloc

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/gaissmai/eden/internal/value"
	"github.com/gaissmai/eden/traits"
)

// Mmap allocates from anonymous private memory mappings, off the Go heap.
//
// The garbage collector does not scan mapped memory, element types
// containing pointers are refused with ErrPointerType.
// Every allocation is a mapping of its own, page granular,
// suited for large long-lived buffers. The zero value is ready to use.
type Mmap[T any] struct{}

// Allocate maps a zeroed region of n elements.
func (Mmap[T]) Allocate(n int) ([]T, error) {
	if traits.HasPointers[T]() {
		return nil, fmt.Errorf("%w: %s", ErrPointerType, traits.TypeOf[T]())
	}
	if value.IsZST[T]() {
		return nil, fmt.Errorf("%w: zero sized type %s", ErrInvalidSize, traits.TypeOf[T]())
	}

	size, err := Bytes[T](n)
	if err != nil {
		return nil, err
	}

	data, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %w", ErrOutOfMemory, size, err)
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n), nil
}

// Deallocate unmaps s, s must be the unchanged slice from Allocate.
func (Mmap[T]) Deallocate(s []T) {
	if cap(s) == 0 {
		return
	}

	var zero T
	size := uintptr(cap(s)) * unsafe.Sizeof(zero)

	// the exact byte slice unix.Mmap returned, munmap looks it up by address
	data := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), size)
	if err := unix.Munmap(data); err != nil {
		panic(fmt.Sprintf("alloc: munmap: %v", err))
	}
}
