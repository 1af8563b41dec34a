// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordtree/fault"
)

// logger channel shared by trees created after Initialise
var globalData struct {
	sync.Mutex
	log         *logger.L
	initialised bool
}

// Initialise - open the "rbtree" logger channel
//
// the logger package must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("rbtree")
	if nil == globalData.log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log.Info("starting…")
	globalData.initialised = true
	return nil
}

// Finalise - flush and detach the logger channel
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.log = nil
	globalData.initialised = false
	return nil
}

func channel() *logger.L {
	globalData.Lock()
	defer globalData.Unlock()
	return globalData.log
}

// Tree - type to hold the root node of a tree
type Tree[K cmp.Ordered, V any] struct {
	arena[K, V]
	root  Handle
	open  bool // sentinel is in use
	count int
	log   *logger.L
}

// New - create an initially empty tree
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	tree := &Tree[K, V]{
		root:  Null,
		open:  false,
		count: 0,
		log:   channel(),
	}
	tree.arena.init()
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return Null == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() Handle {
	return tree.root
}

// MaxSize - theoretical limit on the number of nodes in any tree
// of these key and value types
func MaxSize[K cmp.Ordered, V any]() int {
	return maxNodes[K, V]()
}

// MaxSize - theoretical limit on the number of nodes
func (tree *Tree[K, V]) MaxSize() int {
	return MaxSize[K, V]()
}

// Allocated - nodes ever created and nodes currently in the free pool
func (tree *Tree[K, V]) Allocated() (total int, free int) {
	return tree.totalNodes, tree.freeNodes
}

// Key - read the key from a node
func (tree *Tree[K, V]) Key(h Handle) K {
	return tree.at(h).key
}

// Value - read the value from a node
func (tree *Tree[K, V]) Value(h Handle) V {
	return tree.at(h).value
}

// ValuePointer - address of the value of a node, valid until the node
// is removed
func (tree *Tree[K, V]) ValuePointer(h Handle) *V {
	return &tree.at(h).value
}

// SetValue - overwrite the value of a node
func (tree *Tree[K, V]) SetValue(h Handle, value V) {
	tree.at(h).value = value
}

// Colour - read the colour of a node
func (tree *Tree[K, V]) Colour(h Handle) Colour {
	return tree.at(h).colour
}

// Parent - return parent node of a node
func (tree *Tree[K, V]) Parent(h Handle) Handle {
	return tree.at(h).up
}

// Depth - get the depth of a node
func (tree *Tree[K, V]) Depth(h Handle) int {
	count := 0
	for parent := tree.at(h).up; Null != parent; parent = tree.at(parent).up {
		count += 1
	}
	return count
}

// Height - number of levels in the tree
func (tree *Tree[K, V]) Height() int {
	if Null == tree.root {
		return 0
	}
	type level struct {
		h     Handle
		depth int
	}
	height := 0
	stack := []level{{tree.root, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.depth > height {
			height = top.depth
		}
		p := tree.at(top.h)
		if Null != p.left {
			stack = append(stack, level{p.left, top.depth + 1})
		}
		if Null != p.right {
			stack = append(stack, level{p.right, top.depth + 1})
		}
	}
	return height
}

// size of a possibly empty sub-tree
func (tree *Tree[K, V]) sizeOf(h Handle) int {
	if Null == h {
		return 0
	}
	return tree.at(h).size
}

// Reset - release every node and close the sentinel
func (tree *Tree[K, V]) Reset() {
	if Null != tree.root {
		stack := []Handle{tree.root}
		for len(stack) > 0 {
			h := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			p := tree.at(h)
			if Null != p.left {
				stack = append(stack, p.left)
			}
			if Null != p.right {
				stack = append(stack, p.right)
			}
			tree.freeNode(h)
		}
	}
	tree.root = Null
	tree.count = 0
	tree.closeEnd()
}

// first node into an empty tree: the sentinel brackets it both ways
func (tree *Tree[K, V]) openEnd(h Handle) {
	s := tree.at(Sentinel)
	s.left = h
	s.right = h
	tree.open = true
}

// last node has gone
func (tree *Tree[K, V]) closeEnd() {
	s := tree.at(Sentinel)
	s.left = Null
	s.right = Null
	tree.open = false
}
