// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifyInPlace(t *testing.T) {
	c := FromSlice([]int{1, 2, 3})
	c.Modify(func(v *[]int) {
		*v = append(*v, 4)
	})
	assert.Equal(t, []int{1, 2, 3, 4}, c.Values())
}

func TestModifyDoesNotLeakIntoViews(t *testing.T) {
	c := FromSlice([]int{1, 2, 3, 4})
	sub := c.Slice(1, 3)
	sub.Modify(func(v *[]int) {
		*v = append(*v, 5)
	})
	assert.Equal(t, []int{1, 2, 3, 4}, c.Values(), "parent must not observe the view's mutation")
	assert.Equal(t, []int{2, 3, 5}, sub.Values())
}

func TestMutableValuesCopiesWhenShared(t *testing.T) {
	c := FromSlice([]int{1, 2, 3, 4})
	clone := c.Clone()
	clone.MutableValues()[1] = 7
	assert.Equal(t, []int{1, 2, 3, 4}, c.Values())
	assert.Equal(t, []int{1, 7, 3, 4}, clone.Values())
	assert.False(t, c.SameStorage(clone), "write must have moved the clone to new storage")
}

func TestMutableValuesInPlaceWhenUnique(t *testing.T) {
	c := FromSlice([]int{1, 2, 3, 4})
	before := c.Values()
	c.MutableValues()[1] = 7
	assert.Equal(t, []int{1, 7, 3, 4}, c.Values())
	// Uniquely owned, full extent: no reallocation.
	assert.Same(t, &before[0], &c.Values()[0])
}

func TestCloneIsO1Alias(t *testing.T) {
	c := FromSlice([]int{1, 2, 3})
	clone := c.Clone()
	assert.True(t, c.SameStorage(clone))
	assert.Equal(t, c.Values(), clone.Values())
}

func TestSliceBounds(t *testing.T) {
	c := FromSlice([]int{1, 2, 3})
	assert.Equal(t, []int{2, 3}, c.Slice(1, 3).Values())
	assert.Panics(t, func() { c.Slice(1, 4) })
	assert.Panics(t, func() { c.Slice(-1, 2) })

	sub := c.Slice(1, 3)
	assert.Panics(t, func() { sub.Slice(0, 3) }, "view bounds are checked against the window, not the allocation")
}

func TestTruncateOnlyShrinksWindow(t *testing.T) {
	c := FromSlice([]int{1, 2, 3, 4})
	c.Truncate(2)
	assert.Equal(t, []int{1, 2}, c.Values())
	c.Truncate(10)
	assert.Equal(t, []int{1, 2}, c.Values())
}

func TestSplitOff(t *testing.T) {
	c := FromSlice([]int{1, 2, 3, 4, 5})
	tail := c.SplitOff(2)
	assert.Equal(t, []int{1, 2}, c.Values())
	assert.Equal(t, []int{3, 4, 5}, tail.Values())
}

func TestChunks(t *testing.T) {
	c := FromSlice([]int{1, 2, 3, 4, 5, 6})
	chunks := c.Chunks(2)
	require.Len(t, chunks, 3)
	assert.Equal(t, []int{3, 4}, chunks[1].Values())
	// Chunks are views; mutating one must not disturb the parent.
	chunks[1].Modify(func(v *[]int) { (*v)[0] = 9 })
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, c.Values())
}

func TestAppendGrowsInPlaceWhenUnique(t *testing.T) {
	c := WithCapacity[int](8)
	c.Append(1, 2, 3)
	other := FromSlice([]int{4, 5})
	c.AppendSlice(other)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, c.Values())
}

func TestZeroValueUsable(t *testing.T) {
	var c Slice[string]
	assert.Equal(t, 0, c.Len())
	c.Append("a")
	assert.Equal(t, []string{"a"}, c.Values())
}

func TestMutableValuesCopiesPartialWindow(t *testing.T) {
	c := FromSlice([]int{1, 2, 3, 4})
	before := c.Values()
	c.Truncate(2)
	c.MutableValues()[0] = 9
	assert.Equal(t, []int{1, 2, 3, 4}, before, "writes through a partial window must land on fresh storage")
	assert.Equal(t, []int{9, 2}, c.Values())
}
