// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Rotate cyclically rotates v left by one signed offset per leading
// axis. When a fill value is available the cells that wrapped around
// are overwritten with it, turning the rotation into a directional
// shift.
func Rotate(by, v Value, f *Fill) (Value, error) {
	if by.Rank() > 1 {
		return nil, typeErrorf("rotation amount must be a single integer or list of integers, not a rank %d array", by.Rank())
	}
	_, offsets, err := asIndexList(by, "rotation amount")
	if err != nil {
		return nil, err
	}
	v = widenNumFill(v, f)
	switch a := v.(type) {
	case *Array[float64]:
		return rotateArray(a, offsets, f)
	case *Array[byte]:
		return rotateArray(a, offsets, f)
	case *Array[complex128]:
		return rotateArray(a, offsets, f)
	case *Array[rune]:
		return rotateArray(a, offsets, f)
	case *Array[Boxed]:
		return rotateArray(a, offsets, f)
	}
	return nil, typeErrorf("cannot rotate %s array", v.Kind())
}

// RotateDepth rotates rows of v at the given depth, pairing each
// depth-row of v with the corresponding row of the offsets array
// after shape-prefix alignment.
func RotateDepth(by, v Value, byDepth, depth int) (Value, error) {
	byShape, offsets, err := asIndexList(by, "rotation amount")
	if err != nil {
		return nil, err
	}
	switch a := v.(type) {
	case *Array[float64]:
		return rotateDepth(a, byShape, offsets, depth, byDepth)
	case *Array[byte]:
		return rotateDepth(a, byShape, offsets, depth, byDepth)
	case *Array[complex128]:
		return rotateDepth(a, byShape, offsets, depth, byDepth)
	case *Array[rune]:
		return rotateDepth(a, byShape, offsets, depth, byDepth)
	case *Array[Boxed]:
		return rotateDepth(a, byShape, offsets, depth, byDepth)
	}
	return nil, typeErrorf("cannot rotate %s array", v.Kind())
}

// widenNumFill converts a byte array to numeric when a numeric fill
// is present, so shifted-in cells take the numeric fill exactly.
func widenNumFill(v Value, f *Fill) Value {
	if a, ok := v.(*Array[byte]); ok && f.hasNumFill() {
		return bytesToNums(a)
	}
	return v
}

func rotateArray[E Elem](a *Array[E], by []int, f *Fill) (*Array[E], error) {
	if len(by) > a.Rank() {
		return nil, shapeErrorf("cannot rotate rank %d array with offsets of length %d", a.Rank(), len(by))
	}
	out := a.Clone()
	data := out.data.MutableValues()
	rotate(by, out.shape, data)
	if fill, ok := fillFor[E](f); ok {
		fillShift(by, out.shape, data, fill)
	}
	return out, nil
}

func rotateDepth[E Elem](a *Array[E], byShape Shape, by []int, depth, byDepth int) (*Array[E], error) {
	return depthSlices(a, byShape, by, depth, byDepth, func(aShape Shape, acell []E, bShape Shape, bcell []int) error {
		if bShape.Rank() > 1 {
			return shapeErrorf("cannot rotate by rank %d array", bShape.Rank())
		}
		rotate(bcell, aShape, acell)
		return nil
	})
}

// rotate cyclically rotates data left by by[0] rows on the leading
// axis using three reversals, then recurses into each row with the
// remaining offsets.
func rotate[E any](by []int, shape Shape, data []E) {
	if len(by) == 0 || len(shape) == 0 {
		return
	}
	rowCount := shape[0]
	if rowCount == 0 {
		return
	}
	rowLen := shape.RowLen()
	mid := ((by[0] % rowCount) + rowCount) % rowCount * rowLen
	reverse(data[:mid])
	reverse(data[mid:])
	reverse(data)
	by = by[1:]
	shape = shape[1:]
	if len(by) == 0 || len(shape) == 0 {
		return
	}
	for i := 0; i+rowLen <= len(data); i += rowLen {
		rotate(by, shape, data[i:i+rowLen])
	}
}

// fillShift overwrites the wrapped-around boundary region of a
// rotation with the fill value, axis by axis.
func fillShift[E any](by []int, shape Shape, data []E, fill E) {
	if len(by) == 0 || len(shape) == 0 {
		return
	}
	rowCount := shape[0]
	if rowCount == 0 {
		return
	}
	offset := by[0]
	rowLen := shape.RowLen()
	if offset != 0 {
		abs := offset
		if abs < 0 {
			abs = -abs
		}
		boundary := abs * rowLen
		if boundary > len(data) {
			boundary = len(data)
		}
		if offset > 0 {
			for i := len(data) - boundary; i < len(data); i++ {
				data[i] = fill
			}
		} else {
			for i := 0; i < boundary; i++ {
				data[i] = fill
			}
		}
	}
	by = by[1:]
	shape = shape[1:]
	if len(by) == 0 || len(shape) == 0 {
		return
	}
	for i := 0; i+rowLen <= len(data); i += rowLen {
		fillShift(by, shape, data[i:i+rowLen], fill)
	}
}

func reverse[E any](s []E) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
