// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"

	"github.com/tapirlang/tapir/cow"
)

// An Array pairs a shape with a flat copy-on-write buffer holding
// product(shape) elements in row-major order. Two arrays may alias
// the same storage after a cheap slice; each independently obeys
// copy-on-write on mutation, so arrays behave as values.
type Array[E Elem] struct {
	shape Shape
	data  cow.Slice[E]
}

// NewArray makes an array from a shape and a buffer. The element
// count must match the shape; a mismatch is an engine bug, not a
// user error, so it panics.
func NewArray[E Elem](shape Shape, data cow.Slice[E]) *Array[E] {
	a := &Array[E]{shape: shape, data: data}
	a.validate()
	return a
}

// NewArrayFrom copies vals into a freshly owned array.
func NewArrayFrom[E Elem](shape Shape, vals []E) *Array[E] {
	return NewArray(shape, cow.FromSlice(vals))
}

// NewList makes a rank-1 array of the given elements.
func NewList[E Elem](vals ...E) *Array[E] {
	return NewArrayFrom(Shape{len(vals)}, vals)
}

// NewScalar makes a rank-0 array holding one element.
func NewScalar[E Elem](v E) *Array[E] {
	return NewArrayFrom(nil, []E{v})
}

// validate panics if the shape and data length disagree.
// Every shape-mutating operation ends with a validate call.
func (a *Array[E]) validate() {
	if a.shape.Elems() != a.data.Len() {
		panic(fmt.Sprintf("value: array shape %v disagrees with data length %d", a.shape, a.data.Len()))
	}
}

// Shape returns the array's shape. Callers must not modify it.
func (a *Array[E]) Shape() Shape { return a.shape }

// Rank returns the number of axes.
func (a *Array[E]) Rank() int { return a.shape.Rank() }

// Elems returns the total element count.
func (a *Array[E]) Elems() int { return a.data.Len() }

// RowCount returns the length of the leading axis; 1 for a scalar.
func (a *Array[E]) RowCount() int { return a.shape.Rows() }

// RowLen returns the element count of one row.
func (a *Array[E]) RowLen() int { return a.shape.RowLen() }

// Data returns the elements in row-major order as an immutable view.
func (a *Array[E]) Data() []E { return a.data.Values() }

// Kind returns the array's element kind.
func (a *Array[E]) Kind() Kind { return kindOf[E]() }

func (a *Array[E]) isValue() {}

func (a *Array[E]) String() string {
	return fmt.Sprintf("<%s %v %v>", a.Kind(), a.shape, a.data.Values())
}

// Clone returns a new array handle aliasing the same storage. O(1).
func (a *Array[E]) Clone() *Array[E] {
	return &Array[E]{shape: a.shape.Clone(), data: a.data.Clone()}
}

// Row returns the i'th row as an O(1) view onto shared storage.
func (a *Array[E]) Row(i int) *Array[E] {
	rl := a.RowLen()
	var shape Shape
	if a.Rank() > 0 {
		shape = a.shape[1:].Clone()
	}
	return &Array[E]{shape: shape, data: a.data.Slice(i*rl, (i+1)*rl)}
}

// Rows returns all rows as O(1) views. A scalar has one row: itself.
func (a *Array[E]) Rows() []*Array[E] {
	if a.Rank() == 0 {
		return []*Array[E]{a.Clone()}
	}
	rows := make([]*Array[E], a.RowCount())
	for i := range rows {
		rows[i] = a.Row(i)
	}
	return rows
}

// rowSlice returns the i'th row's elements without allocating.
func (a *Array[E]) rowSlice(i int) []E {
	rl := a.RowLen()
	return a.data.Values()[i*rl : (i+1)*rl]
}

// eq reports exact structural equality: same shape, all elements
// equal under the authoritative comparator.
func (a *Array[E]) eq(b *Array[E]) bool {
	if !a.shape.Eq(b.shape) {
		return false
	}
	bd := b.data.Values()
	for i, e := range a.data.Values() {
		if !elemEq(e, bd[i]) {
			return false
		}
	}
	return true
}

// fromRows assembles rows of identical shape into one array with a
// new leading axis of length len(rows).
func fromRows[E Elem](rows []*Array[E]) (*Array[E], error) {
	if len(rows) == 0 {
		return NewArray(Shape{0}, cow.New[E]()), nil
	}
	rowShape := rows[0].shape
	data := cow.WithCapacity[E](len(rows) * rowShape.Elems())
	for _, r := range rows {
		if !r.shape.Eq(rowShape) {
			return nil, shapeErrorf("cannot combine rows with shapes %v and %v", rowShape, r.shape)
		}
		data.AppendSlice(r.data)
	}
	shape := append(Shape{len(rows)}, rowShape.Clone()...)
	return NewArray(shape, data), nil
}

// join concatenates b to a along the leading axis. The operands'
// row shapes must agree; an operand whose whole shape equals the
// other's row shape joins as a single row.
func (a *Array[E]) join(b *Array[E]) (*Array[E], error) {
	var shape Shape
	switch {
	case a.Rank() == b.Rank():
		if a.Rank() == 0 {
			return NewArrayFrom(Shape{2}, []E{a.data.At(0), b.data.At(0)}), nil
		}
		if !a.shape[1:].Eq(b.shape[1:]) {
			return nil, shapeErrorf("cannot join arrays of shapes %v and %v", a.shape, b.shape)
		}
		shape = a.shape.Clone()
		shape[0] += b.shape[0]
	case a.Rank()+1 == b.Rank():
		if !a.shape.Eq(b.shape[1:]) {
			return nil, shapeErrorf("cannot join arrays of shapes %v and %v", a.shape, b.shape)
		}
		shape = b.shape.Clone()
		shape[0]++
	case a.Rank() == b.Rank()+1:
		if !a.shape[1:].Eq(b.shape) {
			return nil, shapeErrorf("cannot join arrays of shapes %v and %v", a.shape, b.shape)
		}
		shape = a.shape.Clone()
		shape[0]++
	default:
		return nil, shapeErrorf("cannot join arrays of shapes %v and %v", a.shape, b.shape)
	}
	data := a.data.Clone()
	data.AppendSlice(b.data)
	return NewArray(shape, data), nil
}

// padToShape grows the array to the target shape of the same rank,
// padding the far end of each axis with fill.
func (a *Array[E]) padToShape(target Shape, fill E) *Array[E] {
	if a.shape.Eq(target) {
		return a.Clone()
	}
	data := cow.WithCapacity[E](target.Elems())
	padAxis(a.shape, target, a.data.Values(), fill, &data)
	return NewArray(target.Clone(), data)
}

func padAxis[E Elem](shape, target Shape, src []E, fill E, dst *cow.Slice[E]) {
	if len(target) == 0 {
		dst.Append(src[0])
		return
	}
	srcRows := 0
	srcRowLen := 0
	if len(shape) > 0 {
		srcRows = shape[0]
		srcRowLen = shape.RowLen()
	}
	fillRowLen := target.RowLen()
	for i := 0; i < target[0]; i++ {
		if i < srcRows {
			padAxis(shape[1:], target[1:], src[i*srcRowLen:(i+1)*srcRowLen], fill, dst)
		} else {
			for j := 0; j < fillRowLen; j++ {
				dst.Append(fill)
			}
		}
	}
}
