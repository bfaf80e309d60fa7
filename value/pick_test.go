// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickRow(t *testing.T) {
	a := na(Shape{2, 2}, 10, 20, 30, 40)
	got, err := Pick(nl(1), a, nil)
	require.NoError(t, err)
	requireValue(t, nl(30, 40), got)
}

func TestPickElement(t *testing.T) {
	a := na(Shape{2, 2}, 10, 20, 30, 40)
	got, err := Pick(nl(1, 0), a, nil)
	require.NoError(t, err)
	requireValue(t, ns(30), got)
}

func TestPickNegativeIndex(t *testing.T) {
	got, err := Pick(ns(-1), nl(1, 2, 3), nil)
	require.NoError(t, err)
	requireValue(t, ns(3), got)
}

func TestPickOutOfBounds(t *testing.T) {
	a := na(Shape{2, 2}, 10, 20, 30, 40)
	_, err := Pick(nl(5), a, nil)
	var be BoundsError
	require.ErrorAs(t, err, &be)
	assert.Contains(t, err.Error(), "5")
	assert.Contains(t, err.Error(), "2 × 2")

	// A fill value stands in for the whole missing row.
	got, err := Pick(nl(5), a, NewFill().Num(9))
	require.NoError(t, err)
	requireValue(t, nl(9, 9), got)
}

func TestPickIndexTooLong(t *testing.T) {
	_, err := Pick(nl(0, 0), nl(1, 2, 3), nil)
	var se ShapeError
	require.ErrorAs(t, err, &se)
}

func TestPickMultiIndex(t *testing.T) {
	got, err := Pick(NewArrayFrom(Shape{2, 1}, []float64{0, 1}), nl(10, 20, 30), nil)
	require.NoError(t, err)
	requireValue(t, nl(10, 20), got)
}

func TestPickMultiIndexRows(t *testing.T) {
	a := na(Shape{3, 2}, 1, 2, 3, 4, 5, 6)
	idx := NewArrayFrom(Shape{2, 2}, []float64{2, 0, 0, 1})
	got, err := Pick(idx, a, nil)
	require.NoError(t, err)
	requireValue(t, nl(5, 2), got)
}

func TestUnpickRoundTrip(t *testing.T) {
	a := na(Shape{2, 2}, 1, 2, 3, 4)
	idx := nl(1)
	picked, err := Pick(idx, a, nil)
	require.NoError(t, err)
	back, err := Unpick(idx, picked, a, nil)
	require.NoError(t, err)
	requireValue(t, a, back)
}

func TestUnpickEdit(t *testing.T) {
	a := na(Shape{2, 2}, 1, 2, 3, 4)
	got, err := Unpick(nl(1), nl(30, 40), a, nil)
	require.NoError(t, err)
	requireValue(t, na(Shape{2, 2}, 1, 2, 30, 40), got)
	// The target is untouched.
	requireValue(t, na(Shape{2, 2}, 1, 2, 3, 4), a)
}

func TestUnpickMultiIndexEdit(t *testing.T) {
	a := nl(10, 20, 30)
	idx := NewArrayFrom(Shape{2, 1}, []float64{0, 2})
	got, err := Unpick(idx, nl(11, 33), a, nil)
	require.NoError(t, err)
	requireValue(t, nl(11, 20, 33), got)
}

func TestUnpickDuplicateIndices(t *testing.T) {
	a := nl(10, 20, 30)
	idx := NewArrayFrom(Shape{2, 1}, []float64{0, 0})
	_, err := Unpick(idx, nl(1, 2), a, nil)
	var ie InverseError
	require.ErrorAs(t, err, &ie)
}

func TestUnpickDuplicateAfterResolvingNegatives(t *testing.T) {
	a := nl(10, 20, 30)
	idx := NewArrayFrom(Shape{2, 1}, []float64{0, -3})
	_, err := Unpick(idx, nl(1, 2), a, nil)
	var ie InverseError
	require.ErrorAs(t, err, &ie)
}

func TestUnpickShapeDrift(t *testing.T) {
	a := na(Shape{2, 2}, 1, 2, 3, 4)
	_, err := Unpick(nl(1), nl(30, 40, 50), a, nil)
	var ie InverseError
	require.ErrorAs(t, err, &ie)
	assert.Contains(t, err.Error(), "2")
	assert.Contains(t, err.Error(), "3")
}
