// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "github.com/tapirlang/tapir/cow"

// Windows returns the sliding windows of v, one size per windowed
// leading axis. The result has shape
// [dim−size+1 per windowed axis] ++ sizes ++ remaining dims.
// A negative size counts back from the far end of its axis.
func Windows(sizes, v Value) (Value, error) {
	if sizes.Rank() > 1 {
		return nil, typeErrorf("window size must be a single integer or list of integers, not a rank %d array", sizes.Rank())
	}
	_, spec, err := asIndexList(sizes, "window size")
	if err != nil {
		return nil, err
	}
	switch a := v.(type) {
	case *Array[float64]:
		return windows(a, spec)
	case *Array[byte]:
		return windows(a, spec)
	case *Array[complex128]:
		return windows(a, spec)
	case *Array[rune]:
		return windows(a, spec)
	case *Array[Boxed]:
		return windows(a, spec)
	}
	return nil, typeErrorf("cannot take windows of %s array", v.Kind())
}

func windows[E Elem](a *Array[E], spec []int) (*Array[E], error) {
	for _, s := range spec {
		if s == 0 {
			return nil, shapeErrorf("window size cannot be zero")
		}
	}
	if len(spec) > a.Rank() {
		return nil, shapeErrorf("window size %v has too many axes for shape %v", spec, a.shape)
	}
	sizes := make([]int, len(spec))
	for i, s := range spec {
		d := a.shape[i]
		abs := s
		if abs < 0 {
			abs = -abs
		}
		if abs > d {
			return nil, shapeErrorf("window size %d is too large for axis of length %d", s, d)
		}
		if s >= 0 {
			sizes[i] = s
		} else {
			sizes[i] = max(d+1+s, 0)
		}
	}
	newShape := make(Shape, 0, a.Rank()+len(sizes))
	for i, s := range sizes {
		newShape = append(newShape, a.shape[i]+1-s)
	}
	newShape = append(newShape, sizes...)
	newShape = append(newShape, a.shape[len(sizes):]...)
	// A resolved size larger than its axis leaves no window positions.
	for i, s := range sizes {
		if s > a.shape[i] {
			return NewArray(newShape, cow.New[E]()), nil
		}
	}
	if newShape.Elems() == 0 {
		return NewArray(newShape, cow.New[E]()), nil
	}
	// Window shape extended to the full rank of the source.
	trueSize := make([]int, a.Rank())
	copy(trueSize, sizes)
	copy(trueSize[len(sizes):], a.shape[len(sizes):])

	src := a.data.Values()
	dst := make([]E, newShape.Elems())
	strides := a.shape.Strides()
	corner := make([]int, a.Rank())
	curr := make([]int, a.Rank())
	k := 0
	for {
		for i := range curr {
			curr[i] = 0
		}
		// Copy the window at the current corner.
		for {
			srcIndex := 0
			for i := range corner {
				srcIndex += (corner[i] + curr[i]) * strides[i]
			}
			dst[k] = src[srcIndex]
			k++
			i := len(curr) - 1
			for ; i >= 0; i-- {
				if curr[i] == trueSize[i]-1 {
					curr[i] = 0
				} else {
					curr[i]++
					break
				}
			}
			if i < 0 {
				break
			}
		}
		// Advance to the next corner.
		i := len(corner) - 1
		for ; i >= 0; i-- {
			if corner[i] == a.shape[i]-trueSize[i] {
				corner[i] = 0
			} else {
				corner[i]++
				break
			}
		}
		if i < 0 {
			return NewArrayFrom(newShape, dst), nil
		}
	}
}
