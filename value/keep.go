// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "github.com/tapirlang/tapir/cow"

// Keep replicates or filters the rows of v. A rank-0 counts value
// replicates the whole array that many times; a list of counts
// replicates each row count times. Counts shorter than the row count
// are completed from the fill value; longer counts are an error.
func Keep(counts, v Value, f *Fill) (Value, error) {
	if counts.Rank() == 0 {
		n, err := asNat(counts, "keep amount")
		if err != nil {
			return nil, err
		}
		return scalarKeepValue(v, n), nil
	}
	ns, err := asNatList(counts, "keep amount")
	if err != nil {
		return nil, err
	}
	switch a := v.(type) {
	case *Array[float64]:
		return listKeep(a, ns, f)
	case *Array[byte]:
		return listKeep(a, ns, f)
	case *Array[complex128]:
		return listKeep(a, ns, f)
	case *Array[rune]:
		return listKeep(a, ns, f)
	case *Array[Boxed]:
		return listKeep(a, ns, f)
	}
	return nil, typeErrorf("cannot keep %s array", v.Kind())
}

// Unkeep inverts a boolean keep: kept is the (possibly edited)
// result of the keep, into is the array to restore dropped rows
// from. Non-boolean counts cannot be inverted.
func Unkeep(counts, kept, into Value) (Value, error) {
	if counts.Rank() == 0 {
		return nil, inverseErrorf("cannot invert scalar keep")
	}
	ns, err := asNatList(counts, "keep amount")
	if err != nil {
		return nil, err
	}
	pair, err := coerce(kept, into, "unkeep")
	if err != nil {
		return nil, err
	}
	switch a := pair.a.(type) {
	case *Array[float64]:
		return unkeep(a, ns, pair.b.(*Array[float64]))
	case *Array[byte]:
		return unkeep(a, ns, pair.b.(*Array[byte]))
	case *Array[complex128]:
		return unkeep(a, ns, pair.b.(*Array[complex128]))
	case *Array[rune]:
		return unkeep(a, ns, pair.b.(*Array[rune]))
	case *Array[Boxed]:
		return unkeep(a, ns, pair.b.(*Array[Boxed]))
	}
	return nil, typeErrorf("cannot unkeep %s array", pair.a.Kind())
}

func scalarKeepValue(v Value, count int) Value {
	switch a := v.(type) {
	case *Array[float64]:
		return scalarKeep(a, count)
	case *Array[byte]:
		return scalarKeep(a, count)
	case *Array[complex128]:
		return scalarKeep(a, count)
	case *Array[rune]:
		return scalarKeep(a, count)
	case *Array[Boxed]:
		return scalarKeep(a, count)
	}
	panic("value: unreachable keep dispatch")
}

// scalarKeep replicates the whole array count times along the leading
// axis. A kept scalar becomes a list of count copies.
func scalarKeep[E Elem](a *Array[E], count int) *Array[E] {
	if a.Rank() == 0 {
		data := cow.Repeat(a.data.At(0), count)
		return NewArray(Shape{count}, data)
	}
	// Keep nothing.
	if count == 0 {
		shape := a.shape.Clone()
		shape[0] = 0
		return NewArray(shape, cow.New[E]())
	}
	// Keep 1 is a no-op.
	if count == 1 {
		return a.Clone()
	}
	// Keep 2 or more repeats the backing data.
	data := a.data.Clone()
	n := data.Len()
	data.Modify(func(vals *[]E) {
		for i := 1; i < count; i++ {
			*vals = append(*vals, (*vals)[:n]...)
		}
	})
	shape := a.shape.Clone()
	shape[0] *= count
	return NewArray(shape, data)
}

func listKeep[E Elem](a *Array[E], counts []int, f *Fill) (*Array[E], error) {
	switch {
	case len(counts) == a.RowCount():
	case len(counts) < a.RowCount():
		fill, ok, err := f.keepFill()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, shapeErrorf("cannot keep array with shape %v with counts of shape %v"+noFillNote,
				a.shape, Shape{len(counts)})
		}
		padded := make([]int, a.RowCount())
		copy(padded, counts)
		for i := len(counts); i < len(padded); i++ {
			padded[i] = fill
		}
		counts = padded
	default:
		if _, ok, _ := f.keepFill(); ok {
			return nil, shapeErrorf(
				"cannot keep array with shape %v with counts of shape %v: a fill value is available, but keep can only be filled when there are fewer counts than rows",
				a.shape, Shape{len(counts)})
		}
		return nil, shapeErrorf("cannot keep array with shape %v with counts of shape %v"+noFillNote,
			a.shape, Shape{len(counts)})
	}
	if a.Rank() == 0 {
		return scalarKeep(a, counts[0]), nil
	}
	allBools := true
	trueCount := 0
	for _, n := range counts {
		switch n {
		case 0:
		case 1:
			trueCount++
		default:
			allBools = false
		}
		if !allBools {
			break
		}
	}
	rowLen := a.RowLen()
	if allBools {
		// Boolean mask: pure filter, copy only the kept rows.
		data := cow.WithCapacity[E](trueCount * rowLen)
		if rowLen > 0 {
			for i, n := range counts {
				if n == 1 {
					data.Append(a.rowSlice(i)...)
				}
			}
		}
		shape := a.shape.Clone()
		shape[0] = trueCount
		return NewArray(shape, data), nil
	}
	data := cow.New[E]()
	newRows := 0
	for i, n := range counts {
		newRows += n
		if rowLen > 0 {
			for j := 0; j < n; j++ {
				data.Append(a.rowSlice(i)...)
			}
		}
	}
	shape := a.shape.Clone()
	shape[0] = newRows
	return NewArray(shape, data), nil
}

func unkeep[E Elem](kept *Array[E], counts []int, into *Array[E]) (*Array[E], error) {
	for _, n := range counts {
		if n > 1 {
			return nil, inverseErrorf("cannot invert keep with non-boolean counts")
		}
	}
	newRows := make([]*Array[E], 0, len(counts))
	next := 0
	for i, n := range counts {
		if i >= into.RowCount() {
			break
		}
		intoRow := into.Row(i)
		if n == 0 {
			newRows = append(newRows, intoRow)
			continue
		}
		if next >= kept.RowCount() {
			return nil, inverseErrorf("kept array has fewer rows than it was created with, so the keep cannot be inverted")
		}
		newRow := kept.Row(next)
		next++
		if !newRow.shape.Eq(intoRow.shape) {
			return nil, inverseErrorf("kept array's row shape was changed from %v to %v, so the keep cannot be inverted",
				intoRow.shape, newRow.shape)
		}
		newRows = append(newRows, newRow)
	}
	return fromRows(newRows)
}
