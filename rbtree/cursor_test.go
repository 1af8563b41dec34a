// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ordtree/fault"
	"github.com/bitmark-inc/ordtree/rbtree"
)

func TestCursorWalk(t *testing.T) {
	tree := rbtree.New[int, string]()
	for _, k := range []int{30, 10, 50, 20, 40} {
		tree.Insert(k, "")
	}

	keys := []int{}
	for c := tree.Begin(); !c.IsEnd(); c = c.Next() {
		keys = append(keys, c.Key())
	}
	assert.Equal(t, []int{10, 20, 30, 40, 50}, keys, "forward")

	keys = keys[:0]
	c := tree.End()
	for c != tree.Begin() {
		c = c.Prev()
		keys = append(keys, c.Key())
	}
	assert.Equal(t, []int{50, 40, 30, 20, 10}, keys, "backward")

	last := tree.End().Prev()
	assert.Equal(t, 50, last.Key(), "last")
	assert.Equal(t, tree.End(), last.Next(), "last steps to end")
	assert.Equal(t, tree.Last(), last.Handle(), "handle")
	assert.Same(t, tree, last.Tree(), "tree")
}

func TestCursorValue(t *testing.T) {
	tree := rbtree.New[string, int]()
	h := tree.Insert("one", 1)
	tree.Insert("two", 2)

	c := tree.At(h)
	assert.Equal(t, 1, c.Value(), "value")
	c.SetValue(11)
	k, v := c.Entry()
	assert.Equal(t, "one", k, "entry key")
	assert.Equal(t, 11, v, "entry value")
	assert.Equal(t, 11, tree.Value(h), "stored value")

	assert.True(t, tree.At(rbtree.Null).IsEnd(), "null handle is end")
}

func TestCursorEmpty(t *testing.T) {
	tree := rbtree.New[int, int]()
	assert.Equal(t, tree.End(), tree.Begin(), "begin is end")
	assert.True(t, tree.Begin().IsEnd(), "begin is end")

	assert.PanicsWithValue(t, fault.ErrInvalidIteration, func() { tree.End().Prev() }, "retreat in empty tree")
}

func TestCursorInvalid(t *testing.T) {
	tree := rbtree.New[int, int]()
	tree.Insert(1, 100)
	tree.Insert(2, 200)

	end := tree.End()
	assert.PanicsWithValue(t, fault.ErrInvalidIteration, func() { end.Next() }, "advance end")
	assert.PanicsWithValue(t, fault.ErrInvalidIteration, func() { end.Key() }, "key of end")
	assert.PanicsWithValue(t, fault.ErrInvalidIteration, func() { end.Value() }, "value of end")
	assert.PanicsWithValue(t, fault.ErrInvalidIteration, func() { end.SetValue(0) }, "set value of end")
	assert.PanicsWithValue(t, fault.ErrInvalidIteration, func() { tree.Begin().Prev() }, "retreat begin")

	var zero rbtree.Cursor[int, int]
	assert.PanicsWithValue(t, fault.ErrInvalidIteration, func() { zero.Key() }, "zero cursor")
}
