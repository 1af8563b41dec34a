// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"
	"math"
	"unsafe"
)

// Handle - stable reference to a node in the arena of a tree
type Handle int32

// special handles
const (
	Null     Handle = -1 // no node
	Sentinel Handle = 0  // the end position, never a tree member
)

// Colour - the red/black tag of a node
type Colour uint8

// node colours
const (
	Black Colour = iota
	Red
)

// String - printable colour
func (c Colour) String() string {
	if Red == c {
		return "R"
	}
	return "B"
}

// page geometry: a page is never moved once allocated so the address
// of a node stays valid until the node is released
const (
	pageBits = 6
	pageSize = 1 << pageBits
	pageMask = pageSize - 1

	// ceiling on bytes that can be addressed on a 64 bit system
	addressSpace = uint64(1) << 47
)

// a node in the tree
type node[K cmp.Ordered, V any] struct {
	left   Handle // left sub-tree
	right  Handle // right sub-tree
	up     Handle // parent node, or free list link when released
	size   int    // number of nodes in this sub-tree
	colour Colour // red or black
	key    K      // key part for ordering
	value  V      // value part for data storage
}

// arena of nodes for a single tree
type arena[K cmp.Ordered, V any] struct {
	pages      []*[pageSize]node[K, V]
	next       Handle // first never used handle
	pool       Handle // linked list of reclaimed nodes
	totalNodes int    // total nodes created
	freeNodes  int    // number of nodes in the pool
}

// reserve page zero so the sentinel always has a slot
func (a *arena[K, V]) init() {
	a.pages = []*[pageSize]node[K, V]{new([pageSize]node[K, V])}
	a.next = Sentinel + 1
	a.pool = Null
	a.totalNodes = 0
	a.freeNodes = 0

	s := a.at(Sentinel)
	s.left = Null
	s.right = Null
	s.up = Null
}

// access a node by handle
func (a *arena[K, V]) at(h Handle) *node[K, V] {
	return &a.pages[h>>pageBits][h&pageMask]
}

// allocate a new red leaf, reuses reclaimed nodes if any are available
func (a *arena[K, V]) newNode(key K, value V) Handle {
	h := a.pool
	if Null == h {
		if 0 != a.freeNodes {
			panic("pool corrupt")
		}
		h = a.next
		if int(h>>pageBits) == len(a.pages) {
			a.pages = append(a.pages, new([pageSize]node[K, V]))
		}
		a.next += 1
		a.totalNodes += 1
	} else {
		a.pool = a.at(h).up
		a.freeNodes -= 1
	}

	p := a.at(h)
	p.key = key
	p.value = value
	p.colour = Red
	p.size = 1
	p.left = Null
	p.right = Null
	p.up = Null // ensure freelist pointer is cleared
	return h
}

// reclaim a node and keep it in the pool
func (a *arena[K, V]) freeNode(h Handle) {
	var zeroKey K
	var zeroValue V

	p := a.at(h)
	p.up = a.pool // use as free list pointer
	p.left = Null
	p.right = Null
	p.key = zeroKey
	p.value = zeroValue
	p.colour = Black
	p.size = 0
	a.freeNodes += 1

	a.pool = h
}

// maximum number of nodes an arena could ever hold
func maxNodes[K cmp.Ordered, V any]() int {
	var n node[K, V]
	bySpace := addressSpace / uint64(unsafe.Sizeof(n))
	byHandle := uint64(math.MaxInt32 - 1)
	if bySpace < byHandle {
		return int(bySpace)
	}
	return int(byHandle)
}
