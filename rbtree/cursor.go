// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"

	"github.com/bitmark-inc/ordtree/fault"
)

// Cursor - a position in a tree that can step forwards and backwards
//
// two cursors are equal (==) when they refer to the same node of the
// same tree.  A cursor does not survive the removal of its node.
type Cursor[K cmp.Ordered, V any] struct {
	tree *Tree[K, V]
	node Handle
}

// Begin - cursor at the first node, same as End for an empty tree
func (tree *Tree[K, V]) Begin() Cursor[K, V] {
	if !tree.open {
		return tree.End()
	}
	return Cursor[K, V]{tree: tree, node: tree.First()}
}

// End - cursor one past the last node
func (tree *Tree[K, V]) End() Cursor[K, V] {
	return Cursor[K, V]{tree: tree, node: Sentinel}
}

// At - cursor at a node of the tree
func (tree *Tree[K, V]) At(h Handle) Cursor[K, V] {
	if Null == h {
		return tree.End()
	}
	return Cursor[K, V]{tree: tree, node: h}
}

// Tree - the tree the cursor walks
func (c Cursor[K, V]) Tree() *Tree[K, V] {
	return c.tree
}

// Handle - the node under the cursor
func (c Cursor[K, V]) Handle() Handle {
	return c.node
}

// IsEnd - true at the one past the last position
func (c Cursor[K, V]) IsEnd() bool {
	return Sentinel == c.node
}

// Next - step to the following key, the last node steps to End
func (c Cursor[K, V]) Next() Cursor[K, V] {
	c.valid("advance")
	c.node = c.tree.Next(c.node)
	return c
}

// Prev - step to the preceding key, End steps to the last node
func (c Cursor[K, V]) Prev() Cursor[K, V] {
	if nil == c.tree || !c.tree.open {
		fault.PanicWithError("retreat cursor", fault.ErrInvalidIteration)
	}
	h := c.tree.Prev(c.node)
	if Null == h {
		fault.PanicWithError("retreat cursor", fault.ErrInvalidIteration)
	}
	c.node = h
	return c
}

// Key - the key under the cursor
func (c Cursor[K, V]) Key() K {
	c.valid("dereference")
	return c.tree.at(c.node).key
}

// Value - the value under the cursor
func (c Cursor[K, V]) Value() V {
	c.valid("dereference")
	return c.tree.at(c.node).value
}

// Entry - both the key and the value under the cursor
func (c Cursor[K, V]) Entry() (K, V) {
	c.valid("dereference")
	p := c.tree.at(c.node)
	return p.key, p.value
}

// SetValue - overwrite the value under the cursor, the key cannot
// change as that would break the ordering
func (c Cursor[K, V]) SetValue(value V) {
	c.valid("dereference")
	c.tree.at(c.node).value = value
}

// the end position and a zero cursor hold no data
func (c Cursor[K, V]) valid(action string) {
	if nil == c.tree || Sentinel == c.node || Null == c.node {
		fault.PanicWithError(action+" cursor", fault.ErrInvalidIteration)
	}
}
