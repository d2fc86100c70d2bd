// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

//go:build !unix

package alloc

// Mmap is not available on this platform, Allocate fails with ErrUnsupported.
type Mmap[T any] struct{}

// Allocate always returns ErrUnsupported.
func (Mmap[T]) Allocate(int) ([]T, error) { return nil, ErrUnsupported }

// Deallocate is a no-op.
func (Mmap[T]) Deallocate([]T) {}
