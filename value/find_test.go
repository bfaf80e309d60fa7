// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindList(t *testing.T) {
	got, err := Find(nl(2, 3), nl(1, 2, 3, 4, 2, 3), nil)
	require.NoError(t, err)
	assert.Equal(t, ByteKind, got.Kind())
	requireValue(t, nl(0, 1, 0, 0, 1, 0), got)
}

func TestFindScalarNeedle(t *testing.T) {
	got, err := Find(ns(2), nl(1, 2, 3, 2), nil)
	require.NoError(t, err)
	requireValue(t, nl(0, 1, 0, 1), got)
}

func TestFindMatrix(t *testing.T) {
	hay := na(Shape{3, 3},
		1, 2, 3,
		4, 1, 2,
		7, 4, 1)
	needle := na(Shape{2, 2}, 1, 2, 4, 1)
	got, err := Find(needle, hay, nil)
	require.NoError(t, err)
	requireValue(t, na(Shape{3, 3},
		1, 0, 0,
		0, 1, 0,
		0, 0, 0), got)
}

func TestFindOversizeNeedleDegradesWithoutFill(t *testing.T) {
	got, err := Find(nl(1, 2, 3, 4, 5), nl(1, 2), nil)
	require.NoError(t, err)
	requireValue(t, nl(0, 0), got)
}

func TestFindOversizeNeedleExtendsWithFill(t *testing.T) {
	got, err := Find(nl(1, 2, 0), nl(1, 2), NewFill().Num(0))
	require.NoError(t, err)
	requireValue(t, nl(1, 0, 0), got)
}

func TestFindNoMatches(t *testing.T) {
	got, err := Find(nl(9, 9), nl(1, 2, 3), nil)
	require.NoError(t, err)
	requireValue(t, nl(0, 0, 0), got)
}

func TestFindRowNeedleInMatrix(t *testing.T) {
	hay := na(Shape{3, 2}, 1, 2, 3, 4, 1, 2)
	got, err := Find(nl(1, 2), hay, nil)
	require.NoError(t, err)
	requireValue(t, na(Shape{3, 2}, 1, 0, 0, 0, 1, 0), got)
}
