// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRows(t *testing.T) {
	a := na(Shape{3, 2}, 1, 2, 3, 4, 5, 6)
	got, err := Select(nl(2, 0, 0), a, nil)
	require.NoError(t, err)
	requireValue(t, na(Shape{3, 2}, 5, 6, 1, 2, 1, 2), got)
}

func TestSelectNegativeIndices(t *testing.T) {
	got, err := Select(nl(-1, -3), nl(1, 2, 3), nil)
	require.NoError(t, err)
	requireValue(t, nl(3, 1), got)
}

func TestSelectScalarIndexDropsAxis(t *testing.T) {
	a := na(Shape{3, 2}, 1, 2, 3, 4, 5, 6)
	got, err := Select(ns(1), a, nil)
	require.NoError(t, err)
	requireValue(t, nl(3, 4), got)
}

func TestSelectOutOfBounds(t *testing.T) {
	_, err := Select(nl(3), nl(1, 2, 3), nil)
	var be BoundsError
	require.ErrorAs(t, err, &be)

	got, err := Select(nl(3, 0), nl(1, 2, 3), NewFill().Num(9))
	require.NoError(t, err)
	requireValue(t, nl(9, 1), got)
}

func TestSelectMultiDimIndex(t *testing.T) {
	idx := NewArrayFrom(Shape{2, 2}, []float64{0, 1, 1, 2})
	got, err := Select(idx, nl(10, 20, 30), nil)
	require.NoError(t, err)
	requireValue(t, na(Shape{2, 2}, 10, 20, 20, 30), got)
}

func TestUnselectRoundTrip(t *testing.T) {
	a := na(Shape{3, 2}, 1, 2, 3, 4, 5, 6)
	idx := nl(2, 0)
	sel, err := Select(idx, a, nil)
	require.NoError(t, err)
	back, err := Unselect(idx, sel, a, nil)
	require.NoError(t, err)
	requireValue(t, a, back)
}

func TestUnselectEdit(t *testing.T) {
	a := na(Shape{3, 2}, 1, 2, 3, 4, 5, 6)
	got, err := Unselect(nl(1), na(Shape{1, 2}, 30, 40), a, nil)
	require.NoError(t, err)
	requireValue(t, na(Shape{3, 2}, 1, 2, 30, 40, 5, 6), got)
	// The target is untouched.
	requireValue(t, na(Shape{3, 2}, 1, 2, 3, 4, 5, 6), a)
}

func TestUnselectScalarIndex(t *testing.T) {
	a := na(Shape{3, 2}, 1, 2, 3, 4, 5, 6)
	got, err := Unselect(ns(2), nl(50, 60), a, nil)
	require.NoError(t, err)
	requireValue(t, na(Shape{3, 2}, 1, 2, 3, 4, 50, 60), got)
}

func TestUnselectDuplicateIndices(t *testing.T) {
	a := nl(1, 2, 3)
	_, err := Unselect(nl(0, 0), nl(9, 9), a, nil)
	var ie InverseError
	require.ErrorAs(t, err, &ie)

	// Duplicates hide behind negative indices too.
	_, err = Unselect(nl(0, -3), nl(9, 9), a, nil)
	require.ErrorAs(t, err, &ie)
}

func TestUnselectMultiDimIndex(t *testing.T) {
	idx := NewArrayFrom(Shape{2, 1}, []float64{0, 1})
	_, err := Unselect(idx, na(Shape{2, 1}, 9, 9), nl(1, 2), nil)
	var ie InverseError
	require.ErrorAs(t, err, &ie)
}

func TestUnselectShapeDrift(t *testing.T) {
	a := na(Shape{3, 2}, 1, 2, 3, 4, 5, 6)
	_, err := Unselect(nl(1), na(Shape{2, 2}, 9, 9, 9, 9), a, nil)
	var ie InverseError
	require.ErrorAs(t, err, &ie)
	assert.Contains(t, err.Error(), "1 × 2")
	assert.Contains(t, err.Error(), "2 × 2")
}

func TestUnselectScalarTarget(t *testing.T) {
	sel, err := Select(nl(0), ns(7), nil)
	require.NoError(t, err)
	requireValue(t, nl(7), sel)

	got, err := Unselect(nl(0), nl(9), ns(7), nil)
	require.NoError(t, err)
	requireValue(t, ns(9), got)
}
