// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package vector implements Small, a growable sequence with inline storage.
//
// The first elements live in a fixed size array embedded in the Small itself,
// no separate allocation is needed as long as they fit. Further elements
// spill into a heap region obtained from an [alloc.Allocator]:
//
//	var v vector.Small[int, [8]int]  // 8 elements inline
//	for i := range 100 {
//		if err := v.PushBack(i); err != nil {
//			return err
//		}
//	}
//	defer v.Free()
//
// The inline capacity is the length of the array type B. Pointers into the
// inline region stay valid as long as the Small lives, pointers into the
// heap region are invalidated by growth.
//
// A Small must not be copied by assignment, use Clone, CopyFrom, Take
// or MoveFrom. It is not safe for concurrent use.
package vector

import (
	"errors"
	"fmt"

	"github.com/gaissmai/eden/alloc"
	"github.com/gaissmai/eden/internal/value"
)

// GrowthFactor multiplies the heap capacity when the heap region is full.
const GrowthFactor = 2

// ErrOutOfRange is returned for indices outside the sequence.
var ErrOutOfRange = errors.New("vector: index out of range")

// Inline is the set of array types usable as inline region for elements of T.
type Inline[T any] interface {
	~[1]T | ~[2]T | ~[4]T | ~[8]T | ~[16]T | ~[32]T | ~[64]T
}

// Small is a sequence of T, the first len(B) elements inline.
// The zero value is an empty Small allocating from the Go heap.
type Small[T any, B Inline[T]] struct {
	inline B
	heap   []T // the allocated heap region, len is the heap capacity
	size   int
	alloc  alloc.Allocator[T]
}

// Option configures a Small.
type Option[T any] func(*options[T])

type options[T any] struct {
	alloc alloc.Allocator[T]
}

// WithAllocator sets the allocator for the heap region.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(o *options[T]) {
		o.alloc = a
	}
}

// New returns an empty Small.
func New[T any, B Inline[T]](opts ...Option[T]) *Small[T, B] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	return &Small[T, B]{alloc: o.alloc}
}

// Filled returns a Small with count copies of val.
func Filled[T any, B Inline[T]](count int, val T, opts ...Option[T]) (*Small[T, B], error) {
	s := New[T, B](opts...)
	if err := s.Reserve(count); err != nil {
		return nil, err
	}
	for range count {
		*s.pushSlot() = value.CloneVal(val)
	}
	return s, nil
}

// From returns a Small holding items, allocating from the Go heap.
func From[T any, B Inline[T]](items ...T) (*Small[T, B], error) {
	s := New[T, B]()
	if err := s.Reserve(len(items)); err != nil {
		return nil, err
	}
	for _, item := range items {
		*s.pushSlot() = item
	}
	return s, nil
}

func (s *Small[T, B]) allocator() alloc.Allocator[T] {
	if s.alloc == nil {
		return alloc.Heap[T]{}
	}
	return s.alloc
}

// inlineCap returns len(B).
func (s *Small[T, B]) inlineCap() int {
	return len(s.inline)
}

// slot returns the address of element i, the region is chosen by i.
// Past the capacity it panics like any index expression.
func (s *Small[T, B]) slot(i int) *T {
	n := s.inlineCap()
	if i < n {
		return &s.inline[i]
	}
	return &s.heap[i-n]
}

// pushSlot returns the next free slot and increments the size,
// the capacity must have been reserved.
func (s *Small[T, B]) pushSlot() *T {
	p := s.slot(s.size)
	s.size++
	return p
}

// checkIndex returns a wrapped ErrOutOfRange unless 0 <= i < Len.
func (s *Small[T, B]) checkIndex(i int) error {
	if i < 0 || i >= s.size {
		return fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, s.size)
	}
	return nil
}

// Len returns the number of elements.
func (s *Small[T, B]) Len() int {
	return s.size
}

// Cap returns the inline capacity plus the heap capacity.
func (s *Small[T, B]) Cap() int {
	return s.inlineCap() + len(s.heap)
}

// IsEmpty reports whether s has no elements.
func (s *Small[T, B]) IsEmpty() bool {
	return s.size == 0
}

// Spilled reports whether elements live in the heap region.
func (s *Small[T, B]) Spilled() bool {
	return s.size > s.inlineCap()
}

// HeapLen returns the number of elements in the heap region.
func (s *Small[T, B]) HeapLen() int {
	return max(s.size-s.inlineCap(), 0)
}

// HeapCap returns the capacity of the heap region, 0 if none is allocated.
func (s *Small[T, B]) HeapCap() int {
	return len(s.heap)
}

// HeapData returns the live elements of the heap region.
// The slice aliases the storage, it is invalidated by growth.
func (s *Small[T, B]) HeapData() []T {
	return s.heap[:s.HeapLen()]
}

// Reserve ensures room for n elements without further allocation.
// The heap region grows by GrowthFactor until n fits.
func (s *Small[T, B]) Reserve(n int) error {
	need := n - s.inlineCap()
	if need <= len(s.heap) {
		return nil
	}

	newCap := max(len(s.heap), 1) * GrowthFactor
	for newCap < need {
		newCap *= GrowthFactor
	}
	return s.growHeap(newCap)
}

// growHeap relocates the heap elements into a new region of newCap.
// On failure s is unchanged.
func (s *Small[T, B]) growHeap(newCap int) error {
	buf, err := s.allocator().Allocate(newCap)
	if err != nil {
		return fmt.Errorf("vector: grow heap region to %d: %w", newCap, err)
	}

	copy(buf, s.HeapData())
	s.releaseHeap()
	s.heap = buf

	return nil
}

// releaseHeap zeroes and deallocates the heap region.
func (s *Small[T, B]) releaseHeap() {
	if s.heap == nil {
		return
	}
	clear(s.heap)
	s.allocator().Deallocate(s.heap)
	s.heap = nil
}

// PushBack appends v. If the heap region must grow and the allocation fails,
// the error is returned and s is unchanged.
func (s *Small[T, B]) PushBack(v T) error {
	if err := s.reserveOne(); err != nil {
		return err
	}
	*s.pushSlot() = v
	return nil
}

// EmplaceBack appends a zero element, initializes it in place with init
// and returns its address.
func (s *Small[T, B]) EmplaceBack(init func(*T)) (*T, error) {
	if err := s.reserveOne(); err != nil {
		return nil, err
	}
	p := s.pushSlot()
	if init != nil {
		init(p)
	}
	return p, nil
}

// reserveOne makes room for one more element.
func (s *Small[T, B]) reserveOne() error {
	if s.size < s.Cap() {
		return nil
	}
	return s.growHeap(max(len(s.heap), 1) * GrowthFactor)
}

// PopBack removes and returns the last element.
// It panics if s is empty.
func (s *Small[T, B]) PopBack() T {
	if s.size == 0 {
		panic("vector: PopBack on empty Small")
	}

	var zero T
	s.size--
	p := s.slot(s.size)
	v := *p
	*p = zero

	return v
}

// At returns element i, or ErrOutOfRange unless 0 <= i < Len.
func (s *Small[T, B]) At(i int) (T, error) {
	if err := s.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return *s.slot(i), nil
}

// Index returns element i without checking i against Len.
// Indices in [Len, Cap) return the zero value, beyond that Index panics.
func (s *Small[T, B]) Index(i int) T {
	return *s.slot(i)
}

// Ptr returns the address of element i, it panics unless 0 <= i < Len.
func (s *Small[T, B]) Ptr(i int) *T {
	if err := s.checkIndex(i); err != nil {
		panic(err)
	}
	return s.slot(i)
}

// Set replaces element i, or returns ErrOutOfRange unless 0 <= i < Len.
func (s *Small[T, B]) Set(i int, v T) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	*s.slot(i) = v
	return nil
}

// Front returns the first element, it panics if s is empty.
func (s *Small[T, B]) Front() T {
	return *s.Ptr(0)
}

// Back returns the last element, it panics if s is empty.
func (s *Small[T, B]) Back() T {
	return *s.Ptr(s.size - 1)
}

// Resize changes the length to n. New elements are zero values,
// removed elements are zeroed. A negative n is ErrOutOfRange.
func (s *Small[T, B]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrOutOfRange, n)
	}

	if err := s.Reserve(n); err != nil {
		return err
	}

	var zero T
	for i := n; i < s.size; i++ {
		*s.slot(i) = zero
	}
	s.size = n

	return nil
}

// Clear removes all elements and releases the heap region.
func (s *Small[T, B]) Clear() {
	s.clearElems()
	s.releaseHeap()
}

// clearElems zeroes every live slot, the heap region is kept.
func (s *Small[T, B]) clearElems() {
	var zero T
	for i := range min(s.size, s.inlineCap()) {
		s.inline[i] = zero
	}
	clear(s.heap)
	s.size = 0
}

// Free clears s and drops the allocator, s is the zero value afterwards.
// Free may be called more than once.
func (s *Small[T, B]) Free() {
	if s == nil {
		return
	}
	s.Clear()
	s.alloc = nil
}

// Clone returns a deep copy of s using the same allocator.
// Elements implementing Clone() T are cloned, others copied.
func (s *Small[T, B]) Clone() (*Small[T, B], error) {
	c := &Small[T, B]{alloc: s.alloc}
	if err := c.CopyFrom(s); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the elements of s with deep copies of the elements of src.
// s keeps its allocator. On allocation failure s is unchanged.
func (s *Small[T, B]) CopyFrom(src *Small[T, B]) error {
	if s == src {
		return nil
	}

	// allocate before anything is destroyed
	if heapLen := src.HeapLen(); heapLen > len(s.heap) {
		buf, err := s.allocator().Allocate(heapLen)
		if err != nil {
			return fmt.Errorf("vector: copy heap region of %d: %w", heapLen, err)
		}
		s.releaseHeap()
		s.heap = buf
	}
	s.clearElems()

	cloneFn := value.CloneFnFactory[T]()
	for i := range src.size {
		*s.slot(i) = cloneFn(*src.slot(i))
	}
	s.size = src.size

	return nil
}

// Equal reports whether s and o hold equal elements in the same order.
// Elements implementing Equal(T) bool decide themselves,
// others are compared with reflect.DeepEqual.
func (s *Small[T, B]) Equal(o *Small[T, B]) bool {
	if s.size != o.size {
		return false
	}
	for i := range s.size {
		if !value.Equal(*s.slot(i), *o.slot(i)) {
			return false
		}
	}
	return true
}

// Take moves the elements of s into a new Small and leaves s empty.
func (s *Small[T, B]) Take() *Small[T, B] {
	dst := &Small[T, B]{}
	dst.MoveFrom(s)
	return dst
}

// MoveFrom destroys the elements of s and moves the elements of src into s.
// Inline elements are copied over. A heap region is transferred together
// with its allocator, without one s keeps its own allocator.
// src is left empty, without heap region and allocator.
func (s *Small[T, B]) MoveFrom(src *Small[T, B]) {
	if s == src {
		return
	}

	s.Clear()

	// the heap region must be released by the allocator it came from
	if src.heap != nil {
		s.alloc = src.alloc
	}

	var zero B
	s.inline, src.inline = src.inline, zero
	s.heap, src.heap = src.heap, nil
	s.size, src.size = src.size, 0
	src.alloc = nil
}
