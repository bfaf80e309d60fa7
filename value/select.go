// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"slices"

	"github.com/tapirlang/tapir/cow"
)

// Select gathers rows of from by index. Indices may be negative and
// may repeat; an out-of-range index selects a row of fill values when
// a fill is set. A higher-rank index array recurses per leading row,
// and a rank-0 index drops the leading axis from the result.
func Select(indices, from Value, f *Fill) (Value, error) {
	idxShape, idx, err := asIndexList(indices, "indices")
	if err != nil {
		return nil, err
	}
	switch a := widenForFill(from, f).(type) {
	case *Array[float64]:
		return selectImpl(a, idxShape, idx, f)
	case *Array[byte]:
		return selectImpl(a, idxShape, idx, f)
	case *Array[complex128]:
		return selectImpl(a, idxShape, idx, f)
	case *Array[rune]:
		return selectImpl(a, idxShape, idx, f)
	case *Array[Boxed]:
		return selectImpl(a, idxShape, idx, f)
	}
	return nil, typeErrorf("cannot select from %s array", from.Kind())
}

func selectImpl[E Elem](a *Array[E], idxShape Shape, idx []int, f *Fill) (*Array[E], error) {
	if idxShape.Rank() > 1 {
		idxRowLen := idxShape[1:].Elems()
		if idxRowLen == 0 {
			shape := append(idxShape.Clone(), a.shape[1:]...)
			return NewArray(shape, cow.New[E]()), nil
		}
		rows := make([]*Array[E], 0, idxShape[0])
		for lo := 0; lo < len(idx); lo += idxRowLen {
			row, err := selectImpl(a, idxShape[1:], idx[lo:lo+idxRowLen], f)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		return fromRows(rows)
	}
	out, err := selectRows(a, idx, f)
	if err != nil {
		return nil, err
	}
	if idxShape.Rank() == 0 {
		out.shape = out.shape[1:]
	}
	return out, nil
}

func selectRows[E Elem](a *Array[E], idx []int, f *Fill) (*Array[E], error) {
	rowLen := a.RowLen()
	rowCount := a.RowCount()
	data := cow.WithCapacity[E](rowLen * len(idx))
	for _, i := range idx {
		r := i
		if r < 0 {
			r += rowCount
		}
		if r < 0 || r >= rowCount {
			fill, ok := fillFor[E](f)
			if !ok {
				return nil, boundsErrorf("index %d is out of bounds of length %d%s", i, rowCount, noFillNote)
			}
			for k := 0; k < rowLen; k++ {
				data.Append(fill)
			}
			continue
		}
		data.AppendSlice(a.data.Slice(r*rowLen, (r+1)*rowLen))
	}
	var shape Shape
	if a.Rank() > 0 {
		shape = a.shape.Clone()
		shape[0] = len(idx)
	} else {
		shape = Shape{len(idx)}
	}
	return NewArray(shape, data), nil
}

// Unselect writes each row of an edited selection back to its index
// position in into, leaving unselected rows untouched. Duplicate
// resolved indices would make the result order-dependent, so they are
// rejected, as is a multi-dimensional index array.
func Unselect(indices, selected, into Value, f *Fill) (Value, error) {
	idxShape, idx, err := asIndexList(indices, "indices")
	if err != nil {
		return nil, err
	}
	if idxShape.Rank() > 1 {
		return nil, inverseErrorf("cannot undo multi-dimensional selection")
	}
	resolved := make([]int, len(idx))
	for i, n := range idx {
		if n < 0 {
			n += into.Shape().Rows()
		}
		resolved[i] = n
	}
	sorted := slices.Clone(resolved)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] == sorted[i] {
			return nil, inverseErrorf("cannot undo selection with duplicate indices")
		}
	}
	pair, err := coerce(selected, into, "unselect")
	if err != nil {
		return nil, err
	}
	scalarIdx := idxShape.Rank() == 0
	switch a := pair.a.(type) {
	case *Array[float64]:
		return unselect(a, scalarIdx, resolved, pair.b.(*Array[float64]))
	case *Array[byte]:
		return unselect(a, scalarIdx, resolved, pair.b.(*Array[byte]))
	case *Array[complex128]:
		return unselect(a, scalarIdx, resolved, pair.b.(*Array[complex128]))
	case *Array[rune]:
		return unselect(a, scalarIdx, resolved, pair.b.(*Array[rune]))
	case *Array[Boxed]:
		return unselect(a, scalarIdx, resolved, pair.b.(*Array[Boxed]))
	}
	return nil, typeErrorf("cannot unselect %s array into %s array", selected.Kind(), into.Kind())
}

func unselect[E Elem](selected *Array[E], scalarIdx bool, resolved []int, into *Array[E]) (*Array[E], error) {
	var rowShape Shape
	if into.Rank() > 0 {
		rowShape = into.shape[1:]
	}
	expected := rowShape
	if !scalarIdx {
		expected = append(Shape{len(resolved)}, rowShape...)
	}
	if !selected.shape.Eq(expected) {
		return nil, inverseErrorf("cannot undo selection: the shape of the selected array changed from %s to %s",
			expected, selected.shape)
	}
	rowLen := into.RowLen()
	rowCount := into.RowCount()
	out := into.Clone()
	vals := out.data.MutableValues()
	src := selected.data.Values()
	for k, i := range resolved {
		if i < 0 || i >= rowCount {
			out.data.Release()
			return nil, boundsErrorf("index %d is out of bounds of length %d", i, rowCount)
		}
		copy(vals[i*rowLen:(i+1)*rowLen], src[k*rowLen:(k+1)*rowLen])
	}
	return out, nil
}
