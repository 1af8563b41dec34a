// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Search - find a specific item and its position in key order
//
// returns (Null, -1) if the key is not present
func (tree *Tree[K, V]) Search(key K) (Handle, int) {
	index := 0
	h := tree.root
	for Null != h {
		p := tree.at(h)
		switch {
		case key < p.key:
			h = p.left
		case key > p.key:
			index += tree.sizeOf(p.left) + 1
			h = p.right
		default:
			return h, index + tree.sizeOf(p.left)
		}
	}
	return Null, -1
}

// Get - index to specific item
//
// returns Null if the index is out of range
func (tree *Tree[K, V]) Get(index int) Handle {
	if index < 0 || index >= tree.count {
		return Null
	}
	h := tree.root
	for Null != h {
		p := tree.at(h)
		nl := tree.sizeOf(p.left)
		switch {
		case index < nl:
			h = p.left
		case index > nl:
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			h = p.right
		default:
			return h
		}
	}
	return Null
}
