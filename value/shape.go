// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"strings"
)

// A Shape is the ordered list of per-axis element counts of an array,
// outermost axis first. A nil or empty Shape is a scalar.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Elems returns the total element count, the product of all dimensions.
func (s Shape) Elems() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// RowLen returns the element count of one row, the product of all but
// the leading dimension. For a scalar it is 1.
func (s Shape) RowLen() int {
	if len(s) == 0 {
		return 1
	}
	return s[1:].Elems()
}

// Rows returns the length of the leading axis; 1 for a scalar.
func (s Shape) Rows() int {
	if len(s) == 0 {
		return 1
	}
	return s[0]
}

// Eq reports whether two shapes have the same rank and dimensions.
func (s Shape) Eq(t Shape) bool {
	if len(s) != len(t) {
		return false
	}
	for i, d := range s {
		if d != t[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	return append(Shape(nil), s...)
}

// HasZero reports whether any dimension is zero.
func (s Shape) HasZero() bool {
	for _, d := range s {
		if d == 0 {
			return true
		}
	}
	return false
}

// Strides returns the row-major stride of each axis:
// strides[i] is the flat distance between consecutive indices on axis i.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

func (s Shape) String() string {
	if len(s) == 0 {
		return "scalar"
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 {
			b.WriteString(" × ")
		}
		fmt.Fprintf(&b, "%d", d)
	}
	return b.String()
}
