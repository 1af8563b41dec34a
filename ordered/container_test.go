// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordered

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ordtree/rbtree"
)

// every erased node must be returned to the arena
func TestNodesAreReleased(t *testing.T) {
	m := NewMap[int, int]()
	for i := 0; i < 100; i += 1 {
		m.Insert(i, i)
	}
	for i := 0; i < 100; i += 3 {
		m.Delete(i)
	}

	total, free := m.c.tree.Allocated()
	assert.Equal(t, 100, total, "total")
	assert.Equal(t, 34, free, "free")

	m.Clear()
	total, free = m.c.tree.Allocated()
	assert.Equal(t, total, free, "after clear")

	// released nodes are used again
	m.Insert(1, 1)
	total, free = m.c.tree.Allocated()
	assert.Equal(t, 100, total, "total after reuse")
	assert.Equal(t, 99, free, "free after reuse")
}

// erasing down to one node and then none must close the sentinel
func TestSizeClasses(t *testing.T) {
	s := SetOf(1, 2)
	tree := s.c.tree

	s.Erase(s.Begin())
	assert.Equal(t, 1, s.Size())
	assert.Equal(t, tree.First(), tree.Last(), "single node is both bounds")
	require.NoError(t, s.Check())

	s.Erase(s.Begin())
	assert.Equal(t, rbtree.Null, tree.First())
	assert.Equal(t, rbtree.Null, tree.Last())
	assert.True(t, tree.IsEmpty())
	require.NoError(t, s.Check())
}

// looking at a zero value must not create its tree
func TestZeroValueReadsDoNotAllocate(t *testing.T) {
	var m Map[int, string]

	assert.True(t, m.Begin().IsEnd(), "map begin")
	assert.True(t, m.End().IsEnd(), "map end")
	assert.Equal(t, m.End(), m.Begin(), "map begin is end")
	assert.True(t, m.Find(1).IsEnd(), "map find")
	assert.False(t, m.Contains(1), "map contains")
	assert.Equal(t, -1, m.Rank(1), "map rank")
	_, err := m.Nth(0)
	assert.Error(t, err, "map nth")
	assert.Equal(t, rbtree.MaxSize[int, string](), m.MaxSize(), "map max size")
	for range m.All() {
		t.Fatal("map all yielded")
	}
	for range m.Backward() {
		t.Fatal("map backward yielded")
	}
	buffer := &bytes.Buffer{}
	assert.Equal(t, 0, m.Fprint(buffer, true), "map print depth")
	require.NoError(t, m.Check())
	assert.Nil(t, m.c.tree, "map tree after reads")

	var s Set[string]

	assert.Equal(t, s.End(), s.Begin(), "set begin is end")
	assert.True(t, s.Find("a").IsEnd(), "set find")
	assert.True(t, s.LowerBound("a").IsEnd(), "set lower bound")
	_, err = s.Nth(3)
	assert.Error(t, err, "set nth")
	assert.True(t, s.MaxSize() > 0, "set max size")
	for range s.All() {
		t.Fatal("set all yielded")
	}
	assert.Nil(t, s.c.tree, "set tree after reads")

	// the end position of an untouched value cannot be stepped or read
	assert.Panics(t, func() { m.End().Prev() }, "map retreat")
	assert.Panics(t, func() { m.Begin().Key() }, "map key")
	assert.Panics(t, func() { s.End().Next() }, "set advance")
	assert.Nil(t, m.c.tree, "map tree after panics")

	// writes still create the tree
	m.Insert(1, "one")
	require.NotNil(t, m.c.tree)
	assert.Equal(t, 1, m.Begin().Key())
}
