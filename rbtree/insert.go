// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Insert - insert a new node into the tree
//
// the key is not checked for duplicates, an equal key is placed in the
// left sub-tree of the existing one
func (tree *Tree[K, V]) Insert(key K, value V) Handle {
	h := tree.newNode(key, value)

	if Null == tree.root {
		tree.root = h
		tree.openEnd(h)
	} else {
		tree.attach(h)
		tree.balance(h)

		s := tree.at(Sentinel)
		if key > tree.at(s.left).key {
			s.left = h
		}
		if key <= tree.at(s.right).key {
			s.right = h
		}
	}
	tree.at(tree.root).colour = Black
	tree.count += 1
	return h
}

// internal: hang a detached leaf below the existing root
//
// every node on the path gains one descendant
func (tree *Tree[K, V]) attach(h Handle) {
	n := tree.at(h)
	p := tree.root
	for {
		q := tree.at(p)
		q.size += 1
		if n.key <= q.key {
			if Null == q.left {
				q.left = h
				n.up = p
				return
			}
			p = q.left
		} else {
			if Null == q.right {
				q.right = h
				n.up = p
				return
			}
			p = q.right
		}
	}
}
