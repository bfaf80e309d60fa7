// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "github.com/tapirlang/tapir/cow"

// Reshape returns v reshaped according to spec. A rank-0 non-negative
// spec replicates the whole value as that many new leading rows.
// Otherwise spec is a list of dimensions, at most one of which may be
// a negative placeholder computed from the element count. If the new
// shape needs more elements than v has, they come from the fill value
// when available and otherwise by cyclically repeating v's data; extra
// elements are truncated.
func Reshape(spec, v Value, f *Fill) (Value, error) {
	if spec.Rank() == 0 {
		if n, err := asNat(spec, "reshape count"); err == nil {
			return reshapeScalar(v, n), nil
		}
	}
	if spec.Rank() > 1 {
		return nil, typeErrorf("reshape shape must be a single natural number or a list of integers, not a rank %d array", spec.Rank())
	}
	_, dims, err := asIndexList(spec, "reshape shape")
	if err != nil {
		return nil, err
	}
	switch a := widenForFill(v, f).(type) {
	case *Array[float64]:
		return reshape(a, dims, f)
	case *Array[byte]:
		return reshape(a, dims, f)
	case *Array[complex128]:
		return reshape(a, dims, f)
	case *Array[rune]:
		return reshape(a, dims, f)
	case *Array[Boxed]:
		return reshape(a, dims, f)
	}
	return nil, typeErrorf("cannot reshape %s array", v.Kind())
}

// Unreshape restores oldShape onto v's data, undoing a prior reshape.
// The scalar reshape form is ambiguous to invert, and the element
// counts must still match.
func Unreshape(oldShape, v Value) (Value, error) {
	if oldShape.Rank() == 0 {
		if _, err := asNat(oldShape, "old shape"); err == nil {
			return nil, inverseErrorf("cannot undo scalar reshape")
		}
	}
	shape, err := asNatList(oldShape, "old shape")
	if err != nil {
		return nil, err
	}
	if Shape(shape).Elems() != v.Elems() {
		return nil, inverseErrorf(
			"cannot unreshape array because its old shape was %v, but its new shape is %v, which has a different number of elements",
			Shape(shape), v.Shape())
	}
	return withShape(v, Shape(shape).Clone()), nil
}

// reshapeScalar replicates the whole value as count new leading rows.
func reshapeScalar(v Value, count int) Value {
	switch a := v.(type) {
	case *Array[float64]:
		return reshapeScalarArray(a, count)
	case *Array[byte]:
		return reshapeScalarArray(a, count)
	case *Array[complex128]:
		return reshapeScalarArray(a, count)
	case *Array[rune]:
		return reshapeScalarArray(a, count)
	case *Array[Boxed]:
		return reshapeScalarArray(a, count)
	}
	panic("value: unreachable reshape dispatch")
}

func reshapeScalarArray[E Elem](a *Array[E], count int) *Array[E] {
	data := a.data.Clone()
	n := data.Len()
	data.Modify(func(vals *[]E) {
		if count == 0 {
			*vals = (*vals)[:0]
			return
		}
		for i := 1; i < count; i++ {
			*vals = append(*vals, (*vals)[:n]...)
		}
	})
	shape := append(Shape{count}, a.shape.Clone()...)
	return NewArray(shape, data)
}

func reshape[E Elem](a *Array[E], dims []int, f *Fill) (*Array[E], error) {
	fill, hasFill := fillFor[E](f)
	shape, err := deriveShape(a.shape, dims, hasFill)
	if err != nil {
		return nil, err
	}
	targetLen := shape.Elems()
	data := a.data.Clone()
	switch {
	case data.Len() == targetLen:
	case data.Len() > targetLen:
		data.Truncate(targetLen)
	case hasFill:
		data.Modify(func(vals *[]E) {
			for len(*vals) < targetLen {
				*vals = append(*vals, fill)
			}
		})
	case data.Len() == 0:
		if !shape.HasZero() {
			return nil, shapeErrorf("cannot reshape empty array to shape %v without a fill value"+noFillNote, shape)
		}
	case a.Rank() == 0:
		data = cow.Repeat(a.data.At(0), targetLen)
	default:
		// Cyclically repeat the existing data.
		n := data.Len()
		data.Modify(func(vals *[]E) {
			for i := 0; len(*vals) < targetLen; i++ {
				*vals = append(*vals, (*vals)[i%n])
			}
		})
	}
	return NewArray(shape, data), nil
}

// deriveShape resolves a dimension list with at most one negative
// placeholder against the current shape. The placeholder becomes
// ceil(total/rest) when a fill value is available, floor otherwise.
func deriveShape(shape Shape, dims []int, hasFill bool) (Shape, error) {
	neg := -1
	for i, d := range dims {
		if d < 0 {
			if neg >= 0 {
				return nil, shapeErrorf("cannot reshape array with multiple negative dimensions in %v", dims)
			}
			neg = i
		}
	}
	if neg < 0 {
		return Shape(dims).Clone(), nil
	}
	rest := 1
	for i, d := range dims {
		if i != neg {
			rest *= d
		}
	}
	if rest == 0 {
		return nil, shapeErrorf("cannot reshape array with a negative dimension alongside a 0 dimension in %v", dims)
	}
	derived := shape.Elems() / rest
	if hasFill && shape.Elems()%rest != 0 {
		derived++
	}
	out := Shape(dims).Clone()
	out[neg] = derived
	return out, nil
}

// Rerank reinterprets the boundary between v's leading axes and the
// rest. A positive rank r merges leading axes until r remain (or
// prepends 1s when r is at least the current rank); a negative rank
// of magnitude m merges exactly the first m axes.
func Rerank(rank, v Value) (Value, error) {
	r, err := asInt(rank, "rank")
	if err != nil {
		return nil, err
	}
	shape := v.Shape()
	var out Shape
	if r >= 0 {
		if r >= shape.Rank() {
			out = shape.Clone()
			for i := 0; i < r-shape.Rank()+1; i++ {
				out = append(Shape{1}, out...)
			}
		} else {
			mid := shape.Rank() - r
			out = append(Shape{shape[:mid].Elems()}, shape[mid:].Clone()...)
		}
	} else {
		m := -r
		if m > shape.Rank() {
			return nil, shapeErrorf("negative rerank has magnitude %d, which is greater than the array's rank %d", m, shape.Rank())
		}
		out = append(Shape{shape[:m].Elems()}, shape[m:].Clone()...)
	}
	return withShape(v, out), nil
}

// Unrerank restores origShape's merged leading axes onto v. A boxed
// scalar un-reranks through its element. An element-count mismatch
// leaves v untouched.
func Unrerank(rank, origShape, v Value) (Value, error) {
	if v.Rank() == 0 {
		if b, ok := v.(*Array[Boxed]); ok {
			inner, err := Unrerank(rank, origShape, b.data.At(0).V)
			if err != nil {
				return nil, err
			}
			return Box(inner), nil
		}
		return v, nil
	}
	r, err := asInt(rank, "rank")
	if err != nil {
		return nil, err
	}
	orig, err := asNatList(origShape, "shape")
	if err != nil {
		return nil, err
	}
	shape := v.Shape()
	var out Shape
	if r >= 0 {
		keep := len(orig) - r
		if keep < 0 {
			keep = 0
		}
		skip := r + 1 - len(orig)
		if skip < 1 {
			skip = 1
		}
		out = append(Shape(orig[:keep]).Clone(), shape[min(skip, shape.Rank()):].Clone()...)
	} else {
		m := min(-r, len(orig))
		out = append(Shape(orig[:m]).Clone(), shape[1:].Clone()...)
	}
	if out.Elems() != v.Elems() {
		return v, nil
	}
	return withShape(v, out), nil
}

// withShape returns v's data under a new shape with the same element
// count.
func withShape(v Value, shape Shape) Value {
	switch a := v.(type) {
	case *Array[float64]:
		return NewArray(shape, a.data.Clone())
	case *Array[byte]:
		return NewArray(shape, a.data.Clone())
	case *Array[complex128]:
		return NewArray(shape, a.data.Clone())
	case *Array[rune]:
		return NewArray(shape, a.data.Clone())
	case *Array[Boxed]:
		return NewArray(shape, a.data.Clone())
	}
	panic("value: unreachable shape dispatch")
}

// widenForFill converts a byte array to numeric when the fill context
// holds a numeric fill that bytes cannot represent, so the operation's
// fill path behaves as if the array had been numeric all along.
func widenForFill(v Value, f *Fill) Value {
	if a, ok := v.(*Array[byte]); ok && f.hasNumFill() {
		if _, ok := fillFor[byte](f); !ok {
			return bytesToNums(a)
		}
	}
	return v
}
