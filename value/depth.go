// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// depthSlices aligns the leading aDepth axes of a with the leading
// bDepth axes of the operand described by bShape/bData, then applies
// f to each pair of aligned cells in a's mutable data. It is the one
// reusable shape-prefix reconciliation routine: leading length-1 axes
// are dropped from a mismatched prefix, and the side with the smaller
// depth is scalar-extended by replication until the depths agree.
func depthSlices[E Elem, U any](
	a *Array[E], bShape Shape, bData []U,
	aDepth, bDepth int,
	f func(aShape Shape, acell []E, bShape Shape, bcell []U) error,
) (*Array[E], error) {
	out := a.Clone()
	aShape := out.shape.Clone()
	bShape = bShape.Clone()
	aDepth = min(aDepth, aShape.Rank())
	bDepth = min(bDepth, bShape.Rank())
	if !prefixesMatch(aShape[:aDepth], bShape[:bDepth]) {
		for len(aShape) > 0 && aShape[0] == 1 && aDepth > 0 {
			aShape = aShape[1:]
			aDepth--
		}
		for len(bShape) > 0 && bShape[0] == 1 && bDepth > 0 {
			bShape = bShape[1:]
			bDepth--
		}
		if !prefixesMatch(aShape[:aDepth], bShape[:bDepth]) {
			return nil, shapeErrorf(
				"cannot combine arrays with shapes %v and %v because shape prefixes %v and %v are not compatible",
				out.shape, bShape, Shape(aShape[:aDepth]), Shape(bShape[:bDepth]))
		}
	}
	aData := append([]E(nil), out.data.Values()...)
	bData = append([]U(nil), bData...)
	switch {
	case aDepth < bDepth:
		// Scalar-extend a by b's extra leading dims, innermost first.
		for i := bDepth - aDepth - 1; i >= 0; i-- {
			aData = replicate(aData, bShape[i])
			aShape = append(Shape{bShape[i]}, aShape...)
			aDepth++
		}
	case bDepth < aDepth:
		for i := aDepth - bDepth - 1; i >= 0; i-- {
			bData = replicate(bData, aShape[i])
			bShape = append(Shape{aShape[i]}, bShape...)
			bDepth++
		}
	}
	aRowShape := aShape[aDepth:]
	bRowShape := bShape[bDepth:]
	aRowLen := aRowShape.Elems()
	bRowLen := bRowShape.Elems()
	if aRowLen > 0 {
		for i, j := 0, 0; i+aRowLen <= len(aData); i, j = i+aRowLen, j+bRowLen {
			var bcell []U
			if bRowLen > 0 && j+bRowLen <= len(bData) {
				bcell = bData[j : j+bRowLen]
			}
			if err := f(aRowShape, aData[i:i+aRowLen], bRowShape, bcell); err != nil {
				return nil, err
			}
		}
	}
	return NewArrayFrom(aShape, aData), nil
}

func prefixesMatch(a, b Shape) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// replicate repeats vals count times, the data half of a scalar
// reshape.
func replicate[T any](vals []T, count int) []T {
	out := make([]T, 0, len(vals)*count)
	for i := 0; i < count; i++ {
		out = append(out, vals...)
	}
	return out
}
