// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"hash/maphash"
	"math"
)

// Kind identifies one of the five concrete element types.
type Kind int

const (
	NumKind Kind = iota
	ByteKind
	ComplexKind
	CharKind
	BoxKind
)

func (k Kind) String() string {
	switch k {
	case NumKind:
		return "number"
	case ByteKind:
		return "byte"
	case ComplexKind:
		return "complex"
	case CharKind:
		return "character"
	case BoxKind:
		return "box"
	}
	return "invalid"
}

// Boxed wraps a Value so it can be an element of another array,
// giving nested, heterogeneous structure.
type Boxed struct {
	V Value
}

// Elem is the closed set of concrete element types. Boxed holds an
// interface field, so the union must not also require strict
// comparability; equality goes through elemEq instead of ==.
type Elem interface {
	float64 | byte | complex128 | rune | Boxed
}

// kindOf returns the Kind of the instantiated element type.
func kindOf[E Elem]() Kind {
	var z E
	switch any(z).(type) {
	case float64:
		return NumKind
	case byte:
		return ByteKind
	case complex128:
		return ComplexKind
	case rune:
		return CharKind
	default:
		return BoxKind
	}
}

// elemEq is the authoritative element comparator. NaN compares equal
// to NaN so that search operations can locate it.
func elemEq[E Elem](a, b E) bool {
	switch a := any(a).(type) {
	case float64:
		return fEq(a, any(b).(float64))
	case complex128:
		b := any(b).(complex128)
		return fEq(real(a), real(b)) && fEq(imag(a), imag(b))
	case Boxed:
		return valueEq(a.V, any(b).(Boxed).V)
	default:
		return a == any(b)
	}
}

func fEq(a, b float64) bool {
	return a == b || a != a && b != b
}

// writeElem feeds one element into a row fingerprint. The encoding
// must agree with elemEq: values that compare equal hash identically
// (signed zeros are normalized, NaNs collapse to one bit pattern).
func writeElem[E Elem](h *maphash.Hash, e E) {
	switch e := any(e).(type) {
	case float64:
		writeFloat(h, e)
	case byte:
		h.WriteByte(e)
	case complex128:
		writeFloat(h, real(e))
		writeFloat(h, imag(e))
	case rune:
		writeUint64(h, uint64(e))
	case Boxed:
		writeValue(h, e.V)
	}
}

func writeFloat(h *maphash.Hash, f float64) {
	if f == 0 {
		f = 0
	}
	if f != f {
		f = math.NaN()
	}
	writeUint64(h, math.Float64bits(f))
}

func writeUint64(h *maphash.Hash, u uint64) {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(u >> (8 * i))
	}
	h.Write(buf[:])
}

// writeValue fingerprints a whole value: kind, shape, then elements.
func writeValue(h *maphash.Hash, v Value) {
	if v == nil {
		h.WriteByte(0xff)
		return
	}
	h.WriteByte(byte(v.Kind()))
	for _, d := range v.Shape() {
		writeUint64(h, uint64(d))
	}
	switch a := v.(type) {
	case *Array[float64]:
		for _, e := range a.data.Values() {
			writeElem(h, e)
		}
	case *Array[byte]:
		h.Write(a.data.Values())
	case *Array[complex128]:
		for _, e := range a.data.Values() {
			writeElem(h, e)
		}
	case *Array[rune]:
		for _, e := range a.data.Values() {
			writeElem(h, e)
		}
	case *Array[Boxed]:
		for _, e := range a.data.Values() {
			writeElem(h, e)
		}
	}
}
