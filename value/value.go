// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the shape-polymorphic array core of the
// Tapir runtime: typed dense arrays over copy-on-write storage, the
// polymorphic Value layer above them, and the dyadic transformation
// suite (reshape, keep, rotate, windows, find, member, index-of,
// pick, take, drop, select) together with its undo counterparts.
//
// Every operation is a pure function from operands and an optional
// fill context to a new Value or an error; no operation mutates a
// Value visible to its caller.
package value

import "github.com/tapirlang/tapir/cow"

// A Value is one of exactly five array types: *Array[float64],
// *Array[byte], *Array[complex128], *Array[rune], or *Array[Boxed].
type Value interface {
	Shape() Shape
	Rank() int
	Elems() int
	Kind() Kind
	String() string

	isValue()
}

// Box wraps a value as a rank-0 boxed array.
func Box(v Value) *Array[Boxed] {
	return NewScalar(Boxed{V: v})
}

// valueEq reports structural equality of two values, widening
// byte/num pairs. Used by boxed-element comparison.
func valueEq(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if x, ok := a.(*Array[byte]); ok {
		if _, isNum := b.(*Array[float64]); isNum {
			a = bytesToNums(x)
		}
	}
	if y, ok := b.(*Array[byte]); ok {
		if _, isNum := a.(*Array[float64]); isNum {
			b = bytesToNums(y)
		}
	}
	switch x := a.(type) {
	case *Array[float64]:
		y, ok := b.(*Array[float64])
		return ok && x.eq(y)
	case *Array[byte]:
		y, ok := b.(*Array[byte])
		return ok && x.eq(y)
	case *Array[complex128]:
		y, ok := b.(*Array[complex128])
		return ok && x.eq(y)
	case *Array[rune]:
		y, ok := b.(*Array[rune])
		return ok && x.eq(y)
	case *Array[Boxed]:
		y, ok := b.(*Array[Boxed])
		return ok && x.eq(y)
	}
	return false
}

// bytesToNums widens a byte array to a numeric one.
func bytesToNums(a *Array[byte]) *Array[float64] {
	vals := make([]float64, a.Elems())
	for i, b := range a.data.Values() {
		vals[i] = float64(b)
	}
	return NewArrayFrom(a.shape.Clone(), vals)
}

// toBoxes lifts a value to a boxed array: a box array passes through,
// anything else becomes a rank-0 box holding the whole value.
func toBoxes(v Value) *Array[Boxed] {
	if b, ok := v.(*Array[Boxed]); ok {
		return b
	}
	return Box(v)
}

// Join concatenates two values along the leading axis. The operands
// must have equal row shapes, or one may be a single row of the other
// (ranks differing by exactly one). Two scalars join into a pair.
func Join(a, b Value) (Value, error) {
	pair, err := coerce(a, b, "join")
	if err != nil {
		return nil, err
	}
	switch x := pair.a.(type) {
	case *Array[float64]:
		return x.join(pair.b.(*Array[float64]))
	case *Array[byte]:
		return x.join(pair.b.(*Array[byte]))
	case *Array[complex128]:
		return x.join(pair.b.(*Array[complex128]))
	case *Array[rune]:
		return x.join(pair.b.(*Array[rune]))
	case *Array[Boxed]:
		return x.join(pair.b.(*Array[Boxed]))
	}
	return nil, typeErrorf("cannot join %s array and %s array", a.Kind(), b.Kind())
}

// coerced is a same-typed operand pair produced by coerce.
type coerced struct {
	a, b Value
}

// coerce normalizes a cross-type operand pair the way every binary
// operation requires: identical kinds pass through, a byte operand
// widens to match a numeric one, and if either side is boxed the
// other is boxed too. Any other pairing is a type mismatch; opName
// appears in the error along with both kinds.
func coerce(a, b Value, opName string) (coerced, error) {
	if a.Kind() == b.Kind() {
		return coerced{a, b}, nil
	}
	switch {
	case a.Kind() == ByteKind && b.Kind() == NumKind:
		return coerced{bytesToNums(a.(*Array[byte])), b}, nil
	case a.Kind() == NumKind && b.Kind() == ByteKind:
		return coerced{a, bytesToNums(b.(*Array[byte]))}, nil
	case a.Kind() == BoxKind || b.Kind() == BoxKind:
		return coerced{toBoxes(a), toBoxes(b)}, nil
	}
	return coerced{}, typeErrorf("cannot %s %s array and %s array", opName, a.Kind(), b.Kind())
}

// asIndexList reads a value as a flat list of signed integer indices,
// together with its shape. Only numeric and byte arrays qualify.
func asIndexList(v Value, what string) (Shape, []int, error) {
	switch a := v.(type) {
	case *Array[float64]:
		idx := make([]int, a.Elems())
		for i, n := range a.data.Values() {
			if n != float64(int(n)) {
				return nil, nil, typeErrorf("%s must be an array of integers, but %v is not an integer", what, n)
			}
			idx[i] = int(n)
		}
		return a.shape, idx, nil
	case *Array[byte]:
		idx := make([]int, a.Elems())
		for i, n := range a.data.Values() {
			idx[i] = int(n)
		}
		return a.shape, idx, nil
	}
	return nil, nil, typeErrorf("%s must be an array of integers, not a %s array", what, v.Kind())
}

// asInt reads a rank-0 numeric value as a single integer.
func asInt(v Value, what string) (int, error) {
	if v.Rank() != 0 {
		return 0, typeErrorf("%s must be a single integer, not a rank %d array", what, v.Rank())
	}
	_, idx, err := asIndexList(v, what)
	if err != nil {
		return 0, err
	}
	return idx[0], nil
}

// asNat reads a rank-0 numeric value as a non-negative integer.
func asNat(v Value, what string) (int, error) {
	n, err := asInt(v, what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, typeErrorf("%s must be non-negative, but it is %d", what, n)
	}
	return n, nil
}

// asNatList reads a value as a flat list of non-negative integers.
func asNatList(v Value, what string) ([]int, error) {
	_, idx, err := asIndexList(v, what)
	if err != nil {
		return nil, err
	}
	for _, n := range idx {
		if n < 0 {
			return nil, typeErrorf("%s must be non-negative, but it contains %d", what, n)
		}
	}
	return idx, nil
}

// boolArray makes a byte array of 0/1 flags with the given shape.
func boolArray(shape Shape, bits []byte) *Array[byte] {
	return NewArray(shape.Clone(), cow.FromSlice(bits))
}
