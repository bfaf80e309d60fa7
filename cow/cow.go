// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cow provides a reference-counted copy-on-write buffer.
// Cloning a Slice and taking sub-range views are O(1) and alias the
// same backing storage; mutation copies only when another handle
// aliases the storage or the handle's view does not span the whole
// allocation. Reads never copy.
//
// Reference counts are plain ints: the buffer is meant for a strictly
// single-writer-at-a-time calling convention and is not safe for
// concurrent mutation without an external lock.
package cow

import "fmt"

// shared is the backing allocation. refs counts live Slice handles.
type shared[T any] struct {
	vals []T
	refs int
}

// A Slice is a handle onto a window [start:end) of a shared buffer.
// The zero Slice is an empty buffer ready to use. Handles must be
// duplicated with Clone or Slice, never by plain assignment: an
// uncounted copy would defeat the uniqueness check that keeps
// in-place mutation unobservable.
type Slice[T any] struct {
	s          *shared[T]
	start, end int
}

// New returns an empty buffer.
func New[T any]() Slice[T] {
	return Slice[T]{}
}

// WithCapacity returns an empty buffer with room for n elements.
func WithCapacity[T any](n int) Slice[T] {
	return Slice[T]{s: &shared[T]{vals: make([]T, 0, n), refs: 1}}
}

// FromSlice copies vals into a freshly owned buffer.
func FromSlice[T any](vals []T) Slice[T] {
	v := make([]T, len(vals))
	copy(v, vals)
	return Slice[T]{s: &shared[T]{vals: v, refs: 1}, end: len(v)}
}

// Repeat returns a buffer holding n copies of val.
func Repeat[T any](val T, n int) Slice[T] {
	v := make([]T, n)
	for i := range v {
		v[i] = val
	}
	return Slice[T]{s: &shared[T]{vals: v, refs: 1}, end: n}
}

// Len returns the number of elements in the visible window.
func (c Slice[T]) Len() int {
	return c.end - c.start
}

// Values returns the visible window as an immutable view.
// Callers must not write through it; use MutableValues or Modify.
func (c Slice[T]) Values() []T {
	if c.s == nil {
		return nil
	}
	return c.s.vals[c.start:c.end]
}

// At returns the element at index i of the visible window.
func (c Slice[T]) At(i int) T {
	return c.s.vals[c.start+i]
}

// unique reports whether this handle is the only one referencing
// its backing allocation.
func (c *Slice[T]) unique() bool {
	return c.s == nil || c.s.refs <= 1
}

// Clone returns a new handle aliasing the same storage. O(1).
func (c Slice[T]) Clone() Slice[T] {
	if c.s != nil {
		c.s.refs++
	}
	return c
}

// Release drops this handle's reference. Using c afterward is an error.
func (c *Slice[T]) Release() {
	if c.s != nil {
		c.s.refs--
		c.s = nil
	}
}

// SameStorage reports whether two handles alias the same backing
// allocation with identical windows.
func (c Slice[T]) SameStorage(other Slice[T]) bool {
	return c.s == other.s && c.start == other.start && c.end == other.end
}

// Slice returns an O(1) view of the window [lo:hi) of c.
// It panics if the range does not lie within c's visible window.
func (c Slice[T]) Slice(lo, hi int) Slice[T] {
	if lo < 0 || hi < lo || c.start+hi > c.end {
		panic(fmt.Sprintf("cow: slice bounds [%d:%d) out of range for length %d", lo, hi, c.Len()))
	}
	if c.s != nil {
		c.s.refs++
	}
	return Slice[T]{s: c.s, start: c.start + lo, end: c.start + hi}
}

// Chunks splits the window into consecutive views of the given size,
// each an O(1) alias. The window length must be a multiple of size.
func (c Slice[T]) Chunks(size int) []Slice[T] {
	if size <= 0 || c.Len()%size != 0 {
		panic(fmt.Sprintf("cow: chunk size %d does not divide length %d", size, c.Len()))
	}
	chunks := make([]Slice[T], c.Len()/size)
	for i := range chunks {
		chunks[i] = c.Slice(i*size, (i+1)*size)
	}
	return chunks
}

// Modify is the central copy-on-write primitive. If the handle is
// uniquely owned and its window spans the whole backing allocation,
// f runs directly against the backing store and the window's end is
// advanced to the new length. Otherwise the visible range is copied
// into freshly owned storage, f runs against the copy, and the handle
// is replaced. Older handles never observe the mutation.
func (c *Slice[T]) Modify(f func(vals *[]T)) {
	if c.unique() && c.start == 0 && (c.s == nil || c.end == len(c.s.vals)) {
		if c.s == nil {
			c.s = &shared[T]{refs: 1}
		}
		f(&c.s.vals)
		c.end = len(c.s.vals)
		return
	}
	vals := make([]T, c.Len())
	copy(vals, c.s.vals[c.start:c.end])
	f(&vals)
	c.s.refs--
	c.s = &shared[T]{vals: vals, refs: 1}
	c.start = 0
	c.end = len(vals)
}

// MutableValues returns the visible window as a writable slice. Like
// Modify, writing requires exclusive full-extent ownership, so the
// window is copied into fresh storage when the handle is shared or
// does not span the whole allocation. Unlike Modify it cannot change
// the window's length.
func (c *Slice[T]) MutableValues() []T {
	if !c.unique() || c.start != 0 || (c.s != nil && c.end != len(c.s.vals)) {
		vals := make([]T, c.Len())
		copy(vals, c.s.vals[c.start:c.end])
		c.s.refs--
		c.s = &shared[T]{vals: vals, refs: 1}
		c.start = 0
		c.end = len(vals)
	}
	if c.s == nil {
		return nil
	}
	return c.s.vals[c.start:c.end]
}

// Append adds vals to the end of the buffer.
func (c *Slice[T]) Append(vals ...T) {
	c.Modify(func(v *[]T) {
		*v = append(*v, vals...)
	})
}

// AppendSlice adds the visible window of other to the end of c.
func (c *Slice[T]) AppendSlice(other Slice[T]) {
	vals := other.Values()
	c.Modify(func(v *[]T) {
		*v = append(*v, vals...)
	})
}

// Truncate shrinks the visible window to at most n elements.
// Storage is never freed eagerly.
func (c *Slice[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if end := c.start + n; end < c.end {
		c.end = end
	}
}

// SplitOff removes the elements from index at onward and returns them
// in a freshly owned buffer.
func (c *Slice[T]) SplitOff(at int) Slice[T] {
	if at < 0 || at > c.Len() {
		panic(fmt.Sprintf("cow: split index %d out of range for length %d", at, c.Len()))
	}
	other := WithCapacity[T](c.Len() - at)
	tail := c.Values()[at:]
	other.Modify(func(v *[]T) {
		*v = append(*v, tail...)
	})
	c.Truncate(at)
	return other
}
