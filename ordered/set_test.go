// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordered_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ordtree/fault"
	"github.com/bitmark-inc/ordtree/ordered"
)

var words = []string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

func members[K cmp.Ordered](s *ordered.Set[K]) []K {
	keys := []K{}
	for k := range s.All() {
		keys = append(keys, k)
	}
	return keys
}

func TestSetOrder(t *testing.T) {
	s := ordered.SetOf(words...)
	require.Equal(t, len(words), s.Size())

	expected := slices.Clone(words)
	slices.Sort(expected)
	assert.Equal(t, expected, members(s), "ascending")

	keys := []string{}
	for k := range s.Backward() {
		keys = append(keys, k)
	}
	slices.Reverse(keys)
	assert.Equal(t, expected, keys, "descending")

	keys = keys[:0]
	for c := s.Begin(); !c.IsEnd(); c = c.Next() {
		keys = append(keys, c.Key())
	}
	assert.Equal(t, expected, keys, "cursor")

	assert.Equal(t, "eight", s.Begin().Key())
	assert.Equal(t, "zero", s.End().Prev().Key())
	assert.NoError(t, s.Check())
}

func TestSetInsert(t *testing.T) {
	var s ordered.Set[int]
	c, inserted := s.Insert(3)
	assert.True(t, inserted)
	assert.Equal(t, 3, c.Key())

	c, inserted = s.Insert(3)
	assert.False(t, inserted, "duplicate")
	assert.Equal(t, 3, c.Key())
	assert.Equal(t, 1, s.Size())

	results := s.Emplace(1, 3, 5)
	require.Len(t, results, 3)
	assert.True(t, results[0].Inserted)
	assert.False(t, results[1].Inserted)
	assert.True(t, results[2].Inserted)
	assert.Equal(t, 5, results[2].Cursor.Key())
	assert.Equal(t, []int{1, 3, 5}, members(&s))
}

func TestSetFindAndBounds(t *testing.T) {
	s := ordered.SetOf(10, 20, 30, 40)

	assert.True(t, s.Contains(20))
	assert.False(t, s.Contains(25))
	assert.Equal(t, 20, s.Find(20).Key())
	assert.True(t, s.Find(25).IsEnd())

	assert.Equal(t, 10, s.LowerBound(5).Key())
	assert.Equal(t, 20, s.LowerBound(20).Key())
	assert.Equal(t, 30, s.LowerBound(25).Key())
	assert.True(t, s.LowerBound(41).IsEnd())

	assert.Equal(t, 2, s.Rank(30))
	c, err := s.Nth(3)
	require.NoError(t, err)
	assert.Equal(t, 40, c.Key())
	_, err = s.Nth(4)
	assert.Equal(t, fault.ErrIndexOutOfRange, err)
}

func TestSetErase(t *testing.T) {
	s := ordered.SetOf(10, 20, 30, 40, 50, 60, 70)

	s.Erase(s.Begin())
	assert.Equal(t, 20, s.Begin().Key())
	s.Erase(s.End().Prev())
	assert.Equal(t, 60, s.End().Prev().Key())
	s.Erase(s.Find(40))
	assert.Equal(t, []int{20, 30, 50, 60}, members(s))
	assert.True(t, s.Delete(30))
	assert.False(t, s.Delete(30))
	require.NoError(t, s.Check())

	assert.PanicsWithValue(t, fault.ErrInvalidIteration, func() { s.Erase(s.End()) }, "erase end")
	assert.PanicsWithValue(t, fault.ErrInvalidIteration, func() { s.End().Key() }, "dereference end")

	s.Clear()
	assert.True(t, s.Empty())
	assert.NoError(t, s.Check())
}

func TestSetCopyMoveSwap(t *testing.T) {
	s := ordered.SetOf(words...)
	c := s.Clone()
	assert.Equal(t, members(s), members(c))
	c.Delete("one")
	assert.True(t, s.Contains("one"), "independent")

	a := ordered.SetOf("x")
	a.Assign(s)
	assert.Equal(t, members(s), members(a))

	m := ordered.MoveSet(a)
	assert.True(t, a.Empty(), "moved from")
	assert.Equal(t, members(s), members(m))

	a.MoveFrom(m)
	assert.True(t, m.Empty())
	assert.Equal(t, 10, a.Size())

	b := ordered.SetOf("alpha")
	a.Swap(b)
	assert.Equal(t, []string{"alpha"}, members(a))
	assert.Equal(t, 10, b.Size())
	assert.Greater(t, b.MaxSize(), 0)
}

func TestSetMerge(t *testing.T) {
	a := ordered.SetOf(1, 5, 10)
	b := ordered.SetOf(2, 4, 5, 8)
	a.Merge(b)
	assert.Equal(t, []int{1, 2, 4, 5, 8, 10}, members(a))
	assert.Equal(t, []int{5}, members(b))

	empty := ordered.NewSet[int]()
	empty.Merge(a)
	assert.Equal(t, []int{1, 2, 4, 5, 8, 10}, members(empty))
	assert.True(t, a.Empty())
}

// collided keys ahead of, between and after the moved ones stay behind
func TestSetMergeCollidedPrefix(t *testing.T) {
	a := ordered.SetOf(1, 2, 3, 7, 20)
	b := ordered.SetOf(1, 2, 3, 4, 5, 7, 9, 20, 21)
	a.Merge(b)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 7, 9, 20, 21}, members(a))
	assert.Equal(t, []int{1, 2, 3, 7, 20}, members(b))
	require.NoError(t, a.Check())
	require.NoError(t, b.Check())

	// second merge finds nothing to move
	a.Merge(b)
	assert.Equal(t, 9, a.Size())
	assert.Equal(t, 5, b.Size())
}
