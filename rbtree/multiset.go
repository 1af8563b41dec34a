// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// probing helpers for trees that hold repeated keys

// CountKey - number of nodes holding key
func (tree *Tree[K, V]) CountKey(key K) int {
	first := tree.SearchFirst(key)
	if Null == first {
		return 0
	}
	n := 0
	for h := first; Sentinel != h && tree.at(h).key == key; h = tree.Next(h) {
		n += 1
	}
	return n
}

// SearchFirst - the node holding key that comes first in key order
//
// returns Null if the key is not present
func (tree *Tree[K, V]) SearchFirst(key K) Handle {
	h := tree.LowerBound(key)
	if Sentinel == h || tree.at(h).key != key {
		return Null
	}
	return h
}

// LowerBound - the first node in key order whose key is not less
// than key
//
// returns Sentinel if every key is smaller
func (tree *Tree[K, V]) LowerBound(key K) Handle {
	found := Sentinel
	h := tree.root
	for Null != h {
		p := tree.at(h)
		if p.key < key {
			h = p.right
		} else {
			found = h
			h = p.left
		}
	}
	return found
}
