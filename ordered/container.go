// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordered

import (
	"cmp"

	"github.com/bitmark-inc/ordtree/fault"
	"github.com/bitmark-inc/ordtree/rbtree"
)

// the unique key layer shared by Map and Set
type container[K cmp.Ordered, V any] struct {
	tree *rbtree.Tree[K, V]
}

// the tree is only created on first use so the zero value works
func (c *container[K, V]) ensure() *rbtree.Tree[K, V] {
	if nil == c.tree {
		c.tree = rbtree.New[K, V]()
	}
	return c.tree
}

func (c *container[K, V]) size() int {
	if nil == c.tree {
		return 0
	}
	return c.tree.Count()
}

func (c *container[K, V]) search(key K) rbtree.Handle {
	if nil == c.tree {
		return rbtree.Null
	}
	h, _ := c.tree.Search(key)
	return h
}

// insert unless the key is already present
func (c *container[K, V]) insert(key K, value V) (rbtree.Handle, bool) {
	tree := c.ensure()
	if h, _ := tree.Search(key); rbtree.Null != h {
		return h, false
	}
	return tree.Insert(key, value), true
}

// position a cursor on a node, Null becomes End
//
// before the tree exists every position is the zero cursor, which
// reports IsEnd and refuses to move or dereference
func (c *container[K, V]) cursor(h rbtree.Handle) rbtree.Cursor[K, V] {
	if nil == c.tree {
		return rbtree.Cursor[K, V]{}
	}
	return c.tree.At(h)
}

func (c *container[K, V]) begin() rbtree.Cursor[K, V] {
	if nil == c.tree {
		return rbtree.Cursor[K, V]{}
	}
	return c.tree.Begin()
}

func (c *container[K, V]) end() rbtree.Cursor[K, V] {
	if nil == c.tree {
		return rbtree.Cursor[K, V]{}
	}
	return c.tree.End()
}

// cursor at the first key not less than key
func (c *container[K, V]) lowerBound(key K) rbtree.Cursor[K, V] {
	if nil == c.tree {
		return rbtree.Cursor[K, V]{}
	}
	return c.tree.At(c.tree.LowerBound(key))
}

// remove the node under a cursor keeping the end sentinel valid
func (c *container[K, V]) erase(cursor rbtree.Cursor[K, V]) {
	tree := c.tree
	if nil == tree || cursor.Tree() != tree || cursor.IsEnd() {
		fault.PanicWithError("erase", fault.ErrInvalidIteration)
	}

	switch tree.Count() {
	case 0:
		return

	case 1:
		tree.Reset()

	default:
		tree.Remove(cursor.Handle())
	}
}

// remove everything, one node at a time from the front
func (c *container[K, V]) clear() {
	switch c.size() {
	case 0:
		return

	case 1:
		c.tree.Reset()

	default:
		for c.tree.Count() > 1 {
			c.erase(c.tree.Begin())
		}
		c.tree.Reset()
	}
}

// replace the content with an independent copy of src
func (c *container[K, V]) copyFrom(src *container[K, V]) {
	if c == src {
		return
	}
	c.clear()
	if 0 == src.size() {
		return
	}
	tree := c.ensure()
	for h := src.tree.First(); rbtree.Sentinel != h; h = src.tree.Next(h) {
		tree.Insert(src.tree.Key(h), src.tree.Value(h))
	}
}

// take over the tree of src leaving src empty
func (c *container[K, V]) moveFrom(src *container[K, V]) {
	if c == src {
		return
	}
	c.tree = src.tree
	src.tree = nil
}

func (c *container[K, V]) swap(other *container[K, V]) {
	c.tree, other.tree = other.tree, c.tree
}

// move every entry of other whose key is absent here
//
// the walk restarts at the first remaining key of other after each
// move, colliding keys are left behind in other
func (c *container[K, V]) merge(other *container[K, V]) {
	if c == other || 0 == other.size() {
		return
	}
	from := other.tree
	h := from.First()
	for rbtree.Sentinel != h {
		key := from.Key(h)
		if rbtree.Null != c.search(key) {
			h = from.Next(h)
			continue
		}
		c.ensure().Insert(key, from.Value(h))
		other.erase(from.At(h))
		if 0 == from.Count() {
			return
		}
		// every key of other ahead of the moved one was already
		// present here, so the lower bound is the first unvisited node
		h = from.LowerBound(key)
	}
}

// cursor at the key with the given index in key order
func (c *container[K, V]) nth(index int) (rbtree.Cursor[K, V], error) {
	if nil == c.tree {
		return rbtree.Cursor[K, V]{}, fault.ErrIndexOutOfRange
	}
	h := c.tree.Get(index)
	if rbtree.Null == h {
		return c.tree.End(), fault.ErrIndexOutOfRange
	}
	return c.tree.At(h), nil
}

// index of a key in key order, -1 if absent
func (c *container[K, V]) rank(key K) int {
	if nil == c.tree {
		return -1
	}
	_, index := c.tree.Search(key)
	return index
}

func (c *container[K, V]) maxSize() int {
	return rbtree.MaxSize[K, V]()
}

func (c *container[K, V]) check() error {
	if nil == c.tree {
		return nil
	}
	return c.tree.Check()
}
