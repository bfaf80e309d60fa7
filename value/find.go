// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Find reports, for every window of haystack shaped like needle,
// whether the window matches needle element for element. The result
// is a boolean array padded back out to haystack's outer shape. If
// needle outranks haystack or exceeds it on some axis, haystack is
// extended with the fill value first; without a fill the result is
// all zeros of haystack's shape.
func Find(needle, haystack Value, f *Fill) (Value, error) {
	pair, err := coerce(needle, haystack, "find")
	if err != nil {
		return nil, err
	}
	switch a := pair.a.(type) {
	case *Array[float64]:
		return find(a, pair.b.(*Array[float64]), f)
	case *Array[byte]:
		return find(a, pair.b.(*Array[byte]), f)
	case *Array[complex128]:
		return find(a, pair.b.(*Array[complex128]), f)
	case *Array[rune]:
		return find(a, pair.b.(*Array[rune]), f)
	case *Array[Boxed]:
		return find(a, pair.b.(*Array[Boxed]), f)
	}
	return nil, typeErrorf("cannot find %s array in %s array", needle.Kind(), haystack.Kind())
}

func find[E Elem](needle, haystack *Array[E], f *Fill) (*Array[byte], error) {
	anyDimGreater := false
	ns, hs := needle.shape, haystack.shape
	for i := 1; i <= min(len(ns), len(hs)); i++ {
		if ns[len(ns)-i] > hs[len(hs)-i] {
			anyDimGreater = true
		}
	}
	if needle.Rank() > haystack.Rank() || anyDimGreater {
		fill, ok := fillFor[E](f)
		if !ok {
			// Degrade to an all-false result of the haystack's shape.
			return boolArray(haystack.shape, make([]byte, haystack.Elems())), nil
		}
		target := haystack.shape.Clone()
		if len(target) == 0 {
			target = Shape{needle.RowCount()}
		} else {
			target[0] = needle.RowCount()
		}
		haystack = haystack.padToShape(target, fill)
	}

	// Left-pad the needle's shape with 1s to the haystack's rank.
	needleShape := make(Shape, haystack.Rank())
	pad := haystack.Rank() - needle.Rank()
	for i := range needleShape {
		if i < pad {
			needleShape[i] = 1
		} else {
			needleShape[i] = needle.shape[i-pad]
		}
	}

	outShape := make(Shape, haystack.Rank())
	for i := range outShape {
		outShape[i] = haystack.shape[i] + 1 - needleShape[i]
	}
	bits := make([]byte, outShape.Elems())

	if !haystack.shape.HasZero() {
		hayData := haystack.data.Values()
		needleData := needle.data.Values()
		hayStrides := haystack.shape.Strides()
		needleStrides := needleShape.Strides()
		corner := make([]int, haystack.Rank())
		curr := make([]int, haystack.Rank())
		k := 0
	windows:
		for {
			for i := range curr {
				curr[i] = 0
			}
			// Compare the window at this corner, stopping at the
			// first mismatch.
			for {
				hayIndex := 0
				needleIndex := 0
				for i := range corner {
					hayIndex += (corner[i] + curr[i]) * hayStrides[i]
					needleIndex += curr[i] * needleStrides[i]
				}
				same := needleIndex < len(needleData) && elemEq(hayData[hayIndex], needleData[needleIndex])
				if !same {
					bits[k] = 0
					k++
					break
				}
				i := len(curr) - 1
				for ; i >= 0; i-- {
					if curr[i] == needleShape[i]-1 {
						curr[i] = 0
					} else {
						curr[i]++
						break
					}
				}
				if i < 0 {
					bits[k] = 1
					k++
					break
				}
			}
			i := len(corner) - 1
			for ; i >= 0; i-- {
				if corner[i] == haystack.shape[i]-needleShape[i] {
					corner[i] = 0
				} else {
					corner[i]++
					continue windows
				}
			}
			break
		}
	}
	// Pad the match map back out to the haystack's outer shape.
	out := boolArray(outShape, bits)
	return out.padToShape(haystack.shape[:len(needleShape)].Clone(), 0), nil
}
