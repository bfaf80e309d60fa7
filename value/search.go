// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "hash/maphash"

// Row lookups hash rows into buckets and then confirm every candidate
// with the element-wise comparator: the fingerprint is an
// optimization, never the authority.

var rowSeed = maphash.MakeSeed()

func rowHash[E Elem](row []E) uint64 {
	var h maphash.Hash
	h.SetSeed(rowSeed)
	for _, e := range row {
		writeElem(&h, e)
	}
	return h.Sum64()
}

func rowEq[E Elem](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i, e := range a {
		if !elemEq(e, b[i]) {
			return false
		}
	}
	return true
}

// Member reports which rows of elems occur among the rows of of.
func Member(elems, of Value, f *Fill) (Value, error) {
	pair, err := coerce(elems, of, "look for members of")
	if err != nil {
		return nil, err
	}
	switch a := pair.a.(type) {
	case *Array[float64]:
		return member(a, pair.b.(*Array[float64]))
	case *Array[byte]:
		return member(a, pair.b.(*Array[byte]))
	case *Array[complex128]:
		return member(a, pair.b.(*Array[complex128]))
	case *Array[rune]:
		return member(a, pair.b.(*Array[rune]))
	case *Array[Boxed]:
		return member(a, pair.b.(*Array[Boxed]))
	}
	return nil, typeErrorf("cannot look for members of %s array in %s array", elems.Kind(), of.Kind())
}

func member[E Elem](elems, of *Array[E]) (*Array[byte], error) {
	switch {
	case elems.Rank() == of.Rank():
		members := make(map[uint64][][]E, of.RowCount())
		for i := 0; i < of.RowCount(); i++ {
			row := of.rowSlice(i)
			h := rowHash(row)
			members[h] = append(members[h], row)
		}
		bits := make([]byte, elems.RowCount())
		for i := range bits {
			row := elems.rowSlice(i)
			for _, cand := range members[rowHash(row)] {
				if rowEq(row, cand) {
					bits[i] = 1
					break
				}
			}
		}
		var shape Shape
		if elems.Rank() > 0 {
			shape = elems.shape[:1]
		}
		return boolArray(shape, bits), nil
	case elems.Rank() > of.Rank():
		rows := make([]*Array[byte], 0, elems.RowCount())
		for _, row := range elems.Rows() {
			r, err := member(row, of)
			if err != nil {
				return nil, err
			}
			rows = append(rows, r)
		}
		return fromRows(rows)
	default:
		if of.Rank()-elems.Rank() == 1 {
			if elems.Rank() == 0 {
				e := elems.data.At(0)
				for _, o := range of.data.Values() {
					if elemEq(e, o) {
						return NewScalar[byte](1), nil
					}
				}
				return NewScalar[byte](0), nil
			}
			for i := 0; i < of.RowCount(); i++ {
				if rowEq(elems.data.Values(), of.rowSlice(i)) && elems.shape.Eq(of.shape[1:]) {
					return NewScalar[byte](1), nil
				}
			}
			return NewScalar[byte](0), nil
		}
		rows := make([]*Array[byte], 0, of.RowCount())
		for _, row := range of.Rows() {
			r, err := member(elems, row)
			if err != nil {
				return nil, err
			}
			rows = append(rows, r)
		}
		return fromRows(rows)
	}
}

// IndexOf returns the first-match position of each row of elems among
// the rows of of, with row_count(of) standing for "not found". The
// same target row may satisfy any number of queries.
func IndexOf(elems, of Value, f *Fill) (Value, error) {
	pair, err := coerce(elems, of, "look for indices of")
	if err != nil {
		return nil, err
	}
	switch a := pair.a.(type) {
	case *Array[float64]:
		return indexOf(a, pair.b.(*Array[float64]))
	case *Array[byte]:
		return indexOf(a, pair.b.(*Array[byte]))
	case *Array[complex128]:
		return indexOf(a, pair.b.(*Array[complex128]))
	case *Array[rune]:
		return indexOf(a, pair.b.(*Array[rune]))
	case *Array[Boxed]:
		return indexOf(a, pair.b.(*Array[Boxed]))
	}
	return nil, typeErrorf("cannot look for indices of %s array in %s array", elems.Kind(), of.Kind())
}

func indexOf[E Elem](elems, of *Array[E]) (*Array[float64], error) {
	switch {
	case elems.Rank() == of.Rank():
		// Bucket target rows by fingerprint, keeping first positions.
		buckets := make(map[uint64][]int, of.RowCount())
		for i := 0; i < of.RowCount(); i++ {
			h := rowHash(of.rowSlice(i))
			buckets[h] = append(buckets[h], i)
		}
		out := make([]float64, elems.RowCount())
		for i := range out {
			row := elems.rowSlice(i)
			pos := of.RowCount()
			for _, j := range buckets[rowHash(row)] {
				if rowEq(row, of.rowSlice(j)) {
					pos = j
					break
				}
			}
			out[i] = float64(pos)
		}
		var shape Shape
		if elems.Rank() > 0 {
			shape = elems.shape[:1]
		}
		return NewArrayFrom(shape.Clone(), out), nil
	case elems.Rank() > of.Rank():
		rows := make([]*Array[float64], 0, elems.RowCount())
		for _, row := range elems.Rows() {
			r, err := indexOf(row, of)
			if err != nil {
				return nil, err
			}
			rows = append(rows, r)
		}
		return fromRows(rows)
	default:
		if of.Rank()-elems.Rank() == 1 {
			return NewScalar(float64(singleRowPosition(elems, of))), nil
		}
		rows := make([]*Array[float64], 0, of.RowCount())
		for _, row := range of.Rows() {
			r, err := indexOf(elems, row)
			if err != nil {
				return nil, err
			}
			rows = append(rows, r)
		}
		return fromRows(rows)
	}
}

// singleRowPosition finds elems (one rank below of) among of's rows.
func singleRowPosition[E Elem](elems, of *Array[E]) int {
	if elems.Rank() == 0 {
		e := elems.data.At(0)
		for i, o := range of.data.Values() {
			if elemEq(e, o) {
				return i
			}
		}
		return of.RowCount()
	}
	for i := 0; i < of.RowCount(); i++ {
		if elems.shape.Eq(of.shape[1:]) && rowEq(elems.data.Values(), of.rowSlice(i)) {
			return i
		}
	}
	return of.RowCount()
}

// ProgressiveIndexOf is IndexOf except that each matched position in
// the target is consumed by the first query that matches it, turning
// repeated queries into a permutation-style assignment.
func ProgressiveIndexOf(elems, of Value, f *Fill) (Value, error) {
	pair, err := coerce(elems, of, "look for indices of")
	if err != nil {
		return nil, err
	}
	switch a := pair.a.(type) {
	case *Array[float64]:
		return progressiveIndexOf(a, pair.b.(*Array[float64]))
	case *Array[byte]:
		return progressiveIndexOf(a, pair.b.(*Array[byte]))
	case *Array[complex128]:
		return progressiveIndexOf(a, pair.b.(*Array[complex128]))
	case *Array[rune]:
		return progressiveIndexOf(a, pair.b.(*Array[rune]))
	case *Array[Boxed]:
		return progressiveIndexOf(a, pair.b.(*Array[Boxed]))
	}
	return nil, typeErrorf("cannot look for indices of %s array in %s array", elems.Kind(), of.Kind())
}

type usedPos struct {
	hash uint64
	pos  int
}

func progressiveIndexOf[E Elem](elems, of *Array[E]) (*Array[float64], error) {
	switch {
	case elems.Rank() == of.Rank():
		used := make(map[usedPos]bool)
		out := make([]float64, elems.RowCount())
		for i := range out {
			row := elems.rowSlice(i)
			h := rowHash(row)
			pos := of.RowCount()
			for j := 0; j < of.RowCount(); j++ {
				if rowEq(row, of.rowSlice(j)) && !used[usedPos{h, j}] {
					used[usedPos{h, j}] = true
					pos = j
					break
				}
			}
			out[i] = float64(pos)
		}
		var shape Shape
		if elems.Rank() > 0 {
			shape = elems.shape[:1]
		}
		return NewArrayFrom(shape.Clone(), out), nil
	case elems.Rank() > of.Rank():
		rows := make([]*Array[float64], 0, elems.RowCount())
		for _, row := range elems.Rows() {
			r, err := progressiveIndexOf(row, of)
			if err != nil {
				return nil, err
			}
			rows = append(rows, r)
		}
		return fromRows(rows)
	default:
		if of.Rank()-elems.Rank() == 1 {
			return NewScalar(float64(singleRowPosition(elems, of))), nil
		}
		rows := make([]*Array[float64], 0, of.RowCount())
		for _, row := range of.Rows() {
			r, err := progressiveIndexOf(elems, row)
			if err != nil {
				return nil, err
			}
			rows = append(rows, r)
		}
		return fromRows(rows)
	}
}
