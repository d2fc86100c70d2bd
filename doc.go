// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package eden is a collection of small generic building blocks.
//
//   - bitset: Bitset[W], a fixed width bitset, the width is part of the type
//   - vector: Small[T, B], a growable sequence with inline storage for the first len(B) elements
//   - alloc: Allocator[T] and allocators for the heap region of Small
//   - constraints: compile-time type constraints
//   - traits: runtime type predicates, type transformations and nil-safe chaining
//
// The command eden in cmd/eden exercises all packages from the shell.
package eden

// Version of the eden module.
const Version = "v0.1.0"
