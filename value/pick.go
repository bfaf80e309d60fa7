// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"slices"

	"github.com/tapirlang/tapir/cow"
)

// Pick indexes points out of from. A rank-0 or rank-1 index addresses
// one leading axis per component; a higher-rank index batches one
// point-pick per row, stacking the results under the index array's
// leading dimensions.
func Pick(index, from Value, f *Fill) (Value, error) {
	idxShape, idx, err := asIndexList(index, "index")
	if err != nil {
		return nil, err
	}
	switch a := widenForFill(from, f).(type) {
	case *Array[float64]:
		return pick(a, idxShape, idx, f)
	case *Array[byte]:
		return pick(a, idxShape, idx, f)
	case *Array[complex128]:
		return pick(a, idxShape, idx, f)
	case *Array[rune]:
		return pick(a, idxShape, idx, f)
	case *Array[Boxed]:
		return pick(a, idxShape, idx, f)
	}
	return nil, typeErrorf("cannot pick from %s array", from.Kind())
}

func pick[E Elem](a *Array[E], idxShape Shape, idx []int, f *Fill) (*Array[E], error) {
	if idxShape.Rank() <= 1 {
		return pickSingle(a, idx, f)
	}
	return pickMulti(a, idxShape, idx, f)
}

func pickMulti[E Elem](a *Array[E], idxShape Shape, idx []int, f *Fill) (*Array[E], error) {
	pointLen := idxShape[len(idxShape)-1]
	if pointLen > a.Rank() {
		return nil, shapeErrorf("cannot pick from rank %d array with index of length %d", a.Rank(), pointLen)
	}
	idxRowLen := idxShape[1:].Elems()
	data := cow.WithCapacity[E](idxShape[:len(idxShape)-1].Elems() * a.shape[pointLen:].Elems())
	if idxRowLen == 0 {
		row, err := pick(a, idxShape[1:], idx, f)
		if err != nil {
			return nil, err
		}
		for i := 0; i < idxShape[0]; i++ {
			data.AppendSlice(row.data)
		}
	} else {
		for lo := 0; lo < len(idx); lo += idxRowLen {
			row, err := pick(a, idxShape[1:], idx[lo:lo+idxRowLen], f)
			if err != nil {
				return nil, err
			}
			data.AppendSlice(row.data)
		}
	}
	shape := append(idxShape[:len(idxShape)-1].Clone(), a.shape[pointLen:]...)
	return NewArray(shape, data), nil
}

func pickSingle[E Elem](a *Array[E], idx []int, f *Fill) (*Array[E], error) {
	if len(idx) > a.Rank() {
		return nil, shapeErrorf("cannot pick from rank %d array with index of length %d", a.Rank(), len(idx))
	}
	picked := a.data.Clone()
	for d, i := range idx {
		axis := a.shape[d]
		rowLen := a.shape[d+1:].Elems()
		if i >= axis || i < -axis {
			fill, ok := fillFor[E](f)
			if !ok {
				picked.Release()
				return nil, boundsErrorf("index %d is out of bounds of length %d (dimension %d) in shape %s%s",
					i, axis, d, a.shape, noFillNote)
			}
			// The fill stands in for the whole remaining row; later
			// components index within it as usual.
			picked.Release()
			picked = cow.Repeat(fill, rowLen)
			continue
		}
		if i < 0 {
			i += axis
		}
		next := picked.Slice(i*rowLen, (i+1)*rowLen)
		picked.Release()
		picked = next
	}
	return NewArray(a.shape[len(idx):].Clone(), picked), nil
}

// Unpick writes an edited pick result back over the picked positions
// of into. The edit must keep the shape pick would produce, and the
// index array must address each point at most once.
func Unpick(index, selected, into Value, f *Fill) (Value, error) {
	idxShape, idx, err := asIndexList(index, "index")
	if err != nil {
		return nil, err
	}
	if idxShape.Rank() > 1 {
		if err := checkDuplicatePoints(idxShape, idx, into.Shape()); err != nil {
			return nil, err
		}
	}
	pair, err := coerce(selected, into, "unpick")
	if err != nil {
		return nil, err
	}
	switch a := pair.a.(type) {
	case *Array[float64]:
		return unpick(a, idxShape, idx, pair.b.(*Array[float64]))
	case *Array[byte]:
		return unpick(a, idxShape, idx, pair.b.(*Array[byte]))
	case *Array[complex128]:
		return unpick(a, idxShape, idx, pair.b.(*Array[complex128]))
	case *Array[rune]:
		return unpick(a, idxShape, idx, pair.b.(*Array[rune]))
	case *Array[Boxed]:
		return unpick(a, idxShape, idx, pair.b.(*Array[Boxed]))
	}
	return nil, typeErrorf("cannot unpick %s array from %s array", selected.Kind(), into.Kind())
}

// checkDuplicatePoints rejects a multi-point index that addresses the
// same resolved point twice. A zero-length last axis makes every row
// the same (empty) point, so more than one such row is a duplicate.
func checkDuplicatePoints(idxShape Shape, idx []int, intoShape Shape) error {
	pointLen := idxShape[len(idxShape)-1]
	if pointLen == 0 {
		for _, n := range idxShape[:len(idxShape)-1] {
			if n > 1 {
				return inverseErrorf("cannot undo pick with duplicate indices")
			}
		}
		return nil
	}
	points := make([][]int, 0, len(idx)/pointLen)
	for lo := 0; lo < len(idx); lo += pointLen {
		point := make([]int, pointLen)
		for j, i := range idx[lo : lo+pointLen] {
			if i < 0 && j < len(intoShape) {
				i += intoShape[j]
			}
			point[j] = i
		}
		points = append(points, point)
	}
	slices.SortFunc(points, slices.Compare)
	for i := 1; i < len(points); i++ {
		if slices.Equal(points[i-1], points[i]) {
			return inverseErrorf("cannot undo pick with duplicate indices")
		}
	}
	return nil
}

func unpick[E Elem](selected *Array[E], idxShape Shape, idx []int, into *Array[E]) (*Array[E], error) {
	out := into.Clone()
	if err := unpickInto(selected, idxShape, idx, out); err != nil {
		out.data.Release()
		return nil, err
	}
	return out, nil
}

// unpickInto splices selected over the addressed points of out, which
// the caller owns. The first write copies the shared storage; further
// points land in place.
func unpickInto[E Elem](selected *Array[E], idxShape Shape, idx []int, out *Array[E]) error {
	if idxShape.Rank() <= 1 {
		return unpickSingle(selected, idx, out)
	}
	pointLen := idxShape[len(idxShape)-1]
	if pointLen > out.Rank() {
		return shapeErrorf("cannot pick from rank %d array with index of length %d", out.Rank(), pointLen)
	}
	expected := append(idxShape[:len(idxShape)-1].Clone(), out.shape[pointLen:]...)
	if !selected.shape.Eq(expected) {
		return inverseErrorf("cannot undo pick: the shape of the selected array changed from %s to %s",
			expected, selected.shape)
	}
	idxRowLen := idxShape[1:].Elems()
	if idxRowLen == 0 {
		for _, row := range selected.Rows() {
			if err := unpickInto(row, idxShape[1:], idx, out); err != nil {
				return err
			}
		}
	} else {
		for i, row := range selected.Rows() {
			lo := i * idxRowLen
			if err := unpickInto(row, idxShape[1:], idx[lo:lo+idxRowLen], out); err != nil {
				return err
			}
		}
	}
	return nil
}

func unpickSingle[E Elem](selected *Array[E], idx []int, out *Array[E]) error {
	if len(idx) > out.Rank() {
		return shapeErrorf("cannot pick from rank %d array with index of length %d", out.Rank(), len(idx))
	}
	expected := out.shape[len(idx):]
	if !selected.shape.Eq(expected) {
		return inverseErrorf("cannot undo pick: the shape of the selected array changed from %s to %s",
			expected, selected.shape)
	}
	start := 0
	for d, i := range idx {
		axis := out.shape[d]
		if i >= axis || i < -axis {
			return boundsErrorf("index %d is out of bounds of length %d (dimension %d) in shape %s",
				i, axis, d, out.shape)
		}
		if i < 0 {
			i += axis
		}
		start += i * out.shape[d+1:].Elems()
	}
	src := selected.data.Values()
	vals := out.data.MutableValues()
	copy(vals[start:start+len(src)], src)
	return nil
}
