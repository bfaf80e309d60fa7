// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math"

// A Fill supplies per-type default values used to materialize
// elements an operation would otherwise be missing: out-of-range
// picks, short reshapes, shifted-in rotate cells, and so on.
//
// A Fill is provided by the caller for the duration of one operation
// and is never stored on an array. A nil *Fill means no fill value of
// any type is available.
type Fill struct {
	num  *float64
	b    *byte
	cpx  *complex128
	char *rune
	box  *Value
}

// NewFill returns an empty fill context.
func NewFill() *Fill {
	return &Fill{}
}

// Num sets the numeric fill value.
func (f *Fill) Num(v float64) *Fill {
	f.num = &v
	return f
}

// Byte sets the byte fill value.
func (f *Fill) Byte(v byte) *Fill {
	f.b = &v
	return f
}

// Complex sets the complex fill value.
func (f *Fill) Complex(v complex128) *Fill {
	f.cpx = &v
	return f
}

// Char sets the character fill value.
func (f *Fill) Char(v rune) *Fill {
	f.char = &v
	return f
}

// Box sets the fill value for boxed arrays.
func (f *Fill) Box(v Value) *Fill {
	f.box = &v
	return f
}

// fillFor reports the fill value for element type E, if one is
// available. A byte fill may also be satisfied by a numeric fill that
// is an integer in [0, 255], and a complex fill by a numeric one.
func fillFor[E Elem](f *Fill) (E, bool) {
	var z E
	if f == nil {
		return z, false
	}
	switch any(z).(type) {
	case float64:
		if f.num != nil {
			return any(*f.num).(E), true
		}
	case byte:
		if f.b != nil {
			return any(*f.b).(E), true
		}
		if f.num != nil {
			if n := *f.num; n == math.Trunc(n) && 0 <= n && n <= 255 {
				return any(byte(n)).(E), true
			}
		}
	case complex128:
		if f.cpx != nil {
			return any(*f.cpx).(E), true
		}
		if f.num != nil {
			return any(complex(*f.num, 0)).(E), true
		}
	case rune:
		if f.char != nil {
			return any(*f.char).(E), true
		}
	default:
		if f.box != nil {
			return any(Boxed{V: *f.box}).(E), true
		}
	}
	return z, false
}

// hasNumFill reports whether a numeric fill is present. Byte arrays
// widen to numeric ones before operations whose fill path this
// would change.
func (f *Fill) hasNumFill() bool {
	return f != nil && f.num != nil
}

// keepFill returns the numeric fill as a keep count. Keep counts must
// be non-negative integers, so a fractional or negative fill is an
// error rather than a silent truncation.
func (f *Fill) keepFill() (int, bool, error) {
	if f == nil || f.num == nil {
		return 0, false, nil
	}
	n := *f.num
	if n < 0 || n != math.Trunc(n) {
		return 0, false, shapeErrorf("fill value for keep must be a non-negative integer, but it is %v", n)
	}
	return int(n), true, nil
}
