// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// First - return the node with the lowest key value, or Null
func (tree *Tree[K, V]) First() Handle {
	if !tree.open {
		return Null
	}
	return tree.at(Sentinel).right
}

// Last - return the node with the highest key value, or Null
func (tree *Tree[K, V]) Last() Handle {
	if !tree.open {
		return Null
	}
	return tree.at(Sentinel).left
}

// replace the first and last nodes cached in the sentinel
func (tree *Tree[K, V]) setBounds(first Handle, last Handle) {
	if !tree.open {
		return
	}
	s := tree.at(Sentinel)
	s.right = first
	s.left = last
}

// internal: lowest node in a sub-tree
func (tree *Tree[K, V]) first(h Handle) Handle {
	for Null != tree.at(h).left {
		h = tree.at(h).left
	}
	return h
}

// internal: highest node in a sub-tree
func (tree *Tree[K, V]) last(h Handle) Handle {
	for Null != tree.at(h).right {
		h = tree.at(h).right
	}
	return h
}

// Next - given a node, return the node with the next highest key
// value, Sentinel after the last node and Null after the Sentinel
func (tree *Tree[K, V]) Next(h Handle) Handle {
	if Sentinel == h || Null == h {
		return Null
	}
	p := tree.at(h)
	if Null != p.right {
		return tree.first(p.right)
	}
	for Null != p.up && tree.at(p.up).right == h {
		h = p.up
		p = tree.at(h)
	}
	if Null == p.up {
		return Sentinel
	}
	return p.up
}

// Prev - given a node, return the node with the next lowest key
// value, Null before the first node; the Sentinel steps back to the
// last node
func (tree *Tree[K, V]) Prev(h Handle) Handle {
	if Null == h {
		return Null
	}
	if Sentinel == h {
		return tree.Last()
	}
	p := tree.at(h)
	if Null != p.left {
		return tree.last(p.left)
	}
	for Null != p.up && tree.at(p.up).left == h {
		h = p.up
		p = tree.at(h)
	}
	return p.up
}
