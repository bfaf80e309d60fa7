// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "github.com/tapirlang/tapir/cow"

// Take selects a prefix or suffix along each leading axis of from.
// A positive count takes from the front, a negative one from the back.
// Taking past the end extends with the fill value when one is set.
func Take(index, from Value, f *Fill) (Value, error) {
	if from.Rank() == 0 {
		return nil, shapeErrorf("cannot take from scalar")
	}
	_, idx, err := asIndexList(index, "index")
	if err != nil {
		return nil, err
	}
	switch a := widenForFill(from, f).(type) {
	case *Array[float64]:
		return takeFrom(a, idx, f)
	case *Array[byte]:
		return takeFrom(a, idx, f)
	case *Array[complex128]:
		return takeFrom(a, idx, f)
	case *Array[rune]:
		return takeFrom(a, idx, f)
	case *Array[Boxed]:
		return takeFrom(a, idx, f)
	}
	return nil, typeErrorf("cannot take from %s array", from.Kind())
}

// Drop removes a prefix or suffix along each leading axis of from.
// Dropping past the end yields an empty axis rather than an error.
func Drop(index, from Value, f *Fill) (Value, error) {
	if from.Rank() == 0 {
		return nil, shapeErrorf("cannot drop from scalar")
	}
	_, idx, err := asIndexList(index, "index")
	if err != nil {
		return nil, err
	}
	switch a := from.(type) {
	case *Array[float64]:
		return dropFrom(a, idx)
	case *Array[byte]:
		return dropFrom(a, idx)
	case *Array[complex128]:
		return dropFrom(a, idx)
	case *Array[rune]:
		return dropFrom(a, idx)
	case *Array[Boxed]:
		return dropFrom(a, idx)
	}
	return nil, typeErrorf("cannot drop from %s array", from.Kind())
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func takeFrom[E Elem](a *Array[E], idx []int, f *Fill) (*Array[E], error) {
	switch len(idx) {
	case 0:
		return a.Clone(), nil
	case 1:
		return takeAxis(a, idx[0], f)
	}
	if len(idx) > a.Rank() {
		return nil, shapeErrorf("cannot take from rank %d array with index of length %d", a.Rank(), len(idx))
	}
	// Full-width trailing components reduce to a leading-axis take.
	full := true
	for d, i := range idx[1:] {
		if abs(i) != a.shape[d+1] {
			full = false
			break
		}
	}
	if full {
		return takeAxis(a, idx[0], f)
	}
	taking := idx[0]
	n := abs(taking)
	rows := make([]*Array[E], 0, min(n, a.RowCount()))
	if taking >= 0 {
		for i := 0; i < min(n, a.RowCount()); i++ {
			row, err := takeFrom(a.Row(i), idx[1:], f)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
	} else {
		for i := max(a.RowCount()-n, 0); i < a.RowCount(); i++ {
			row, err := takeFrom(a.Row(i), idx[1:], f)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
	}
	out, err := fromRows(rows)
	if err != nil {
		return nil, err
	}
	if n > out.RowCount() {
		fill, ok := fillFor[E](f)
		if !ok {
			return nil, boundsErrorf("cannot take %d rows from array with %d row%s%s",
				n, out.RowCount(), plural(out.RowCount()), noFillNote)
		}
		pad := cow.Repeat(fill, (n-out.RowCount())*out.RowLen())
		if taking >= 0 {
			out.data.AppendSlice(pad)
		} else {
			pad.AppendSlice(out.data)
			out.data.Release()
			out.data = pad
		}
	}
	out.shape[0] = n
	out.validate()
	return out, nil
}

// takeAxis takes along the leading axis only. The in-bounds cases are
// O(1) window adjustments on shared storage.
func takeAxis[E Elem](a *Array[E], taking int, f *Fill) (*Array[E], error) {
	rowLen := a.RowLen()
	rowCount := a.RowCount()
	n := abs(taking)
	shape := a.shape.Clone()
	if n <= rowCount {
		var data cow.Slice[E]
		if taking >= 0 {
			data = a.data.Clone()
			data.Truncate(n * rowLen)
		} else {
			data = a.data.Slice((rowCount-n)*rowLen, rowCount*rowLen)
		}
		shape[0] = n
		return NewArray(shape, data), nil
	}
	fill, ok := fillFor[E](f)
	if !ok {
		return nil, boundsErrorf("cannot take %d rows from array with %d row%s%s",
			n, rowCount, plural(rowCount), noFillNote)
	}
	data := cow.WithCapacity[E](n * rowLen)
	pad := cow.Repeat(fill, (n-rowCount)*rowLen)
	if taking >= 0 {
		data.AppendSlice(a.data)
		data.AppendSlice(pad)
	} else {
		data.AppendSlice(pad)
		data.AppendSlice(a.data)
	}
	shape[0] = n
	return NewArray(shape, data), nil
}

func dropFrom[E Elem](a *Array[E], idx []int) (*Array[E], error) {
	switch len(idx) {
	case 0:
		return a.Clone(), nil
	case 1:
		return dropAxis(a, idx[0]), nil
	}
	if len(idx) > a.Rank() {
		return nil, shapeErrorf("cannot drop from rank %d array with index of length %d", a.Rank(), len(idx))
	}
	dropping := idx[0]
	n := abs(dropping)
	keep := max(a.RowCount()-n, 0)
	rows := make([]*Array[E], 0, keep)
	var lo int
	if dropping >= 0 {
		lo = a.RowCount() - keep
	}
	for i := lo; i < lo+keep; i++ {
		row, err := dropFrom(a.Row(i), idx[1:])
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return fromRows(rows)
}

// dropAxis drops along the leading axis, saturating to empty. Always
// an O(1) window adjustment. A scalar drops as a one-element list.
func dropAxis[E Elem](a *Array[E], dropping int) *Array[E] {
	rowLen := a.RowLen()
	rowCount := a.RowCount()
	n := min(abs(dropping), rowCount)
	var data cow.Slice[E]
	if dropping >= 0 {
		data = a.data.Slice(n*rowLen, rowCount*rowLen)
	} else {
		data = a.data.Clone()
		data.Truncate((rowCount - n) * rowLen)
	}
	shape := a.shape.Clone()
	if len(shape) == 0 {
		shape = Shape{rowCount}
	}
	shape[0] = rowCount - n
	return NewArray(shape, data)
}

// Untake writes an edited take result back over the rows it was taken
// from, leaving the untaken rows of into as they are.
func Untake(index, taken, into Value, f *Fill) (Value, error) {
	_, idx, err := asIndexList(index, "index")
	if err != nil {
		return nil, err
	}
	return undoTake("take", "taken", idx, taken, into, f)
}

// Undrop is Untake from the other end: the dropped rows stay and the
// edited remainder is spliced back after them.
func Undrop(index, dropped, into Value, f *Fill) (Value, error) {
	_, idx, err := asIndexList(index, "index")
	if err != nil {
		return nil, err
	}
	intoShape := into.Shape()
	if len(idx) > len(intoShape) {
		idx = idx[:len(intoShape)]
	}
	translated := make([]int, len(idx))
	for d, i := range idx {
		if i >= 0 {
			translated[d] = min(i-intoShape[d], 0)
		} else {
			translated[d] = max(i+intoShape[d], 0)
		}
	}
	return undoTake("drop", "dropped", translated, dropped, into, f)
}

func undoTake(name, past string, idx []int, from, into Value, f *Fill) (Value, error) {
	pair, err := coerce(from, into, "un"+name)
	if err != nil {
		return nil, err
	}
	switch a := pair.a.(type) {
	case *Array[float64]:
		return untake(name, past, a, idx, pair.b.(*Array[float64]), f)
	case *Array[byte]:
		return untake(name, past, a, idx, pair.b.(*Array[byte]), f)
	case *Array[complex128]:
		return untake(name, past, a, idx, pair.b.(*Array[complex128]), f)
	case *Array[rune]:
		return untake(name, past, a, idx, pair.b.(*Array[rune]), f)
	case *Array[Boxed]:
		return untake(name, past, a, idx, pair.b.(*Array[Boxed]), f)
	}
	return nil, typeErrorf("cannot un%s %s array into %s array", name, from.Kind(), into.Kind())
}

func untake[E Elem](name, past string, from *Array[E], idx []int, into *Array[E], f *Fill) (*Array[E], error) {
	switch {
	case from.Rank() < into.Rank():
		if !from.shape.Eq(into.shape[1:]) {
			return nil, inverseErrorf("cannot undo %s: the %s section's rank was modified to be incompatible",
				name, past)
		}
	case from.Rank() > into.Rank():
		return nil, inverseErrorf("cannot undo %s: the %s section's rank was modified from %d to %d",
			name, past, into.Rank(), from.Rank())
	}
	switch len(idx) {
	case 0:
		return into.Clone(), nil
	case 1:
		rest := dropAxis(into, idx[0])
		if idx[0] >= 0 {
			return from.join(rest)
		}
		return rest.join(from)
	}
	n := abs(idx[0])
	if n != from.RowCount() {
		return nil, inverseErrorf("cannot undo %s: the %s section's row count was modified from %d to %d",
			name, past, n, from.RowCount())
	}
	rows := make([]*Array[E], 0, into.RowCount())
	if idx[0] >= 0 {
		for i, fr := range from.Rows() {
			row, err := untake(name, past, fr, idx[1:], into.Row(i), f)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		for i := n; i < into.RowCount(); i++ {
			rows = append(rows, into.Row(i))
		}
	} else {
		start := max(into.RowCount()-n, 0)
		for i := 0; i < start; i++ {
			rows = append(rows, into.Row(i))
		}
		for i, fr := range from.Rows() {
			row, err := untake(name, past, fr, idx[1:], into.Row(start+i), f)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
	}
	return fromRows(rows)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
