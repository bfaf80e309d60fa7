// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakePrefixSuffix(t *testing.T) {
	got, err := Take(ns(2), nl(1, 2, 3, 4), nil)
	require.NoError(t, err)
	requireValue(t, nl(1, 2), got)

	got, err = Take(ns(-2), nl(1, 2, 3, 4), nil)
	require.NoError(t, err)
	requireValue(t, nl(3, 4), got)
}

func TestTakeRows(t *testing.T) {
	a := na(Shape{3, 2}, 1, 2, 3, 4, 5, 6)
	got, err := Take(ns(2), a, nil)
	require.NoError(t, err)
	requireValue(t, na(Shape{2, 2}, 1, 2, 3, 4), got)
}

func TestTakeOverflowFills(t *testing.T) {
	got, err := Take(ns(5), nl(1, 2, 3), NewFill().Num(0))
	require.NoError(t, err)
	requireValue(t, nl(1, 2, 3, 0, 0), got)

	got, err = Take(ns(-5), nl(1, 2, 3), NewFill().Num(0))
	require.NoError(t, err)
	requireValue(t, nl(0, 0, 1, 2, 3), got)
}

func TestTakeOverflowWithoutFill(t *testing.T) {
	_, err := Take(ns(5), nl(1, 2, 3), nil)
	var be BoundsError
	require.ErrorAs(t, err, &be)
	assert.Contains(t, err.Error(), "no fill value")
}

func TestTakeMultiAxis(t *testing.T) {
	a := na(Shape{2, 2}, 1, 2, 3, 4)
	got, err := Take(nl(1, 1), a, nil)
	require.NoError(t, err)
	requireValue(t, na(Shape{1, 1}, 1), got)

	got, err = Take(nl(-1, -1), a, nil)
	require.NoError(t, err)
	requireValue(t, na(Shape{1, 1}, 4), got)
}

func TestTakeFromScalar(t *testing.T) {
	_, err := Take(ns(1), ns(7), nil)
	var se ShapeError
	require.ErrorAs(t, err, &se)
}

func TestTakeIndexTooLong(t *testing.T) {
	_, err := Take(nl(1, 1), nl(1, 2, 3), nil)
	var se ShapeError
	require.ErrorAs(t, err, &se)
}

func TestDropPrefixSuffix(t *testing.T) {
	got, err := Drop(ns(1), nl(1, 2, 3), nil)
	require.NoError(t, err)
	requireValue(t, nl(2, 3), got)

	got, err = Drop(ns(-1), nl(1, 2, 3), nil)
	require.NoError(t, err)
	requireValue(t, nl(1, 2), got)
}

func TestDropSaturates(t *testing.T) {
	got, err := Drop(ns(5), nl(1, 2, 3), nil)
	require.NoError(t, err)
	assert.Equal(t, Shape{0}, got.Shape())
}

func TestDropMultiAxis(t *testing.T) {
	a := na(Shape{2, 2}, 1, 2, 3, 4)
	got, err := Drop(nl(1, 1), a, nil)
	require.NoError(t, err)
	requireValue(t, na(Shape{1, 1}, 4), got)
}

func TestTakeDropPartition(t *testing.T) {
	a := na(Shape{4, 2}, 1, 2, 3, 4, 5, 6, 7, 8)
	for n := 0; n <= a.RowCount(); n++ {
		head, err := Take(ns(float64(n)), a, nil)
		require.NoError(t, err)
		tail, err := Drop(ns(float64(n)), a, nil)
		require.NoError(t, err)
		whole, err := Join(head, tail)
		require.NoError(t, err)
		requireValue(t, a, whole)
	}
}

func TestUntakeRoundTrip(t *testing.T) {
	a := na(Shape{3, 2}, 1, 2, 3, 4, 5, 6)
	for _, n := range []float64{1, 2, -1, -2} {
		idx := ns(n)
		taken, err := Take(idx, a, nil)
		require.NoError(t, err)
		back, err := Untake(idx, taken, a, nil)
		require.NoError(t, err)
		requireValue(t, a, back)
	}
}

func TestUntakeEdit(t *testing.T) {
	a := nl(1, 2, 3, 4)
	got, err := Untake(ns(2), nl(10, 20), a, nil)
	require.NoError(t, err)
	requireValue(t, nl(10, 20, 3, 4), got)

	got, err = Untake(ns(-1), nl(40), a, nil)
	require.NoError(t, err)
	requireValue(t, nl(1, 2, 3, 40), got)
}

func TestUntakeRankDrift(t *testing.T) {
	a := na(Shape{2, 2}, 1, 2, 3, 4)
	_, err := Untake(ns(1), na(Shape{1, 1, 2}, 9, 9), a, nil)
	var ie InverseError
	require.ErrorAs(t, err, &ie)
}

func TestUntakeMultiAxisEdit(t *testing.T) {
	a := na(Shape{2, 2}, 1, 2, 3, 4)
	got, err := Untake(nl(1, 1), na(Shape{1, 1}, 9), a, nil)
	require.NoError(t, err)
	requireValue(t, na(Shape{2, 2}, 9, 2, 3, 4), got)
}

func TestUndropEdit(t *testing.T) {
	a := nl(1, 2, 3, 4)
	dropped, err := Drop(ns(1), a, nil)
	require.NoError(t, err)
	requireValue(t, nl(2, 3, 4), dropped)

	got, err := Undrop(ns(1), nl(20, 30, 40), a, nil)
	require.NoError(t, err)
	requireValue(t, nl(1, 20, 30, 40), got)
}

func TestUndropRoundTrip(t *testing.T) {
	a := na(Shape{3, 2}, 1, 2, 3, 4, 5, 6)
	for _, n := range []float64{1, 2, -1, -2} {
		idx := ns(n)
		dropped, err := Drop(idx, a, nil)
		require.NoError(t, err)
		back, err := Undrop(idx, dropped, a, nil)
		require.NoError(t, err)
		requireValue(t, a, back)
	}
}

func TestUntakeScalarTarget(t *testing.T) {
	got, err := Untake(ns(1), ns(9), ns(7), nil)
	require.NoError(t, err)
	requireValue(t, nl(9), got)
}

func TestUndropIndexLongerThanRank(t *testing.T) {
	got, err := Undrop(nl(1, 1), nl(8, 9), nl(1, 2, 3), nil)
	require.NoError(t, err)
	requireValue(t, nl(1, 8, 9), got)
}

func TestUndropScalarTarget(t *testing.T) {
	got, err := Undrop(nl(1), ns(5), ns(7), nil)
	require.NoError(t, err)
	requireValue(t, ns(7), got)
}
