// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Remove - unlink a node from the tree and release it
//
// the children of the node are not spliced back by rotation, instead
// every node below the removed one is inserted again.  Afterwards the
// end sentinel is set from the leftmost and rightmost nodes, as with
// repeated keys a re-inserted node may now precede the old first node.
func (tree *Tree[K, V]) Remove(h Handle) {
	p := tree.at(h)
	left := p.left
	right := p.right

	if nil != tree.log {
		tree.log.Debugf("remove: %v  descendants: %d", p.key, p.size-1)
	}

	if h == tree.root {
		if Null != left {
			tree.root = left
			tree.at(left).up = Null
			if Null != right {
				tree.at(right).up = Null
				tree.reinsertSubtree(right)
			}
		} else {
			tree.root = right
			if Null != right {
				tree.at(right).up = Null
			}
		}
		if Null != tree.root {
			tree.at(tree.root).colour = Black
		}
	} else {
		tree.detach(h)
		if Null != left {
			tree.at(left).up = Null
			tree.reinsertSubtree(left)
		}
		if Null != right {
			tree.at(right).up = Null
			tree.reinsertSubtree(right)
		}
	}

	tree.freeNode(h)
	tree.count -= 1
	if 0 == tree.count {
		tree.closeEnd()
	} else {
		tree.setBounds(tree.first(tree.root), tree.last(tree.root))
	}
}

// internal: cut a non-root node away from its parent, the ancestors
// lose the whole sub-tree from their sizes
func (tree *Tree[K, V]) detach(h Handle) {
	p := tree.at(h)
	n := p.size
	parent := p.up

	q := tree.at(parent)
	if q.left == h {
		q.left = Null
	} else if q.right == h {
		q.right = Null
	}

	for a := parent; Null != a; a = tree.at(a).up {
		tree.at(a).size -= n
	}
	p.up = Null
}

// reinsertSubtree - insert every node of a detached sub-tree into the
// tree one at a time
//
// nodes are visited parent first so that the existing shape is
// roughly kept.  A rotation based removal would replace this.
func (tree *Tree[K, V]) reinsertSubtree(detached Handle) {
	stack := []Handle{detached}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p := tree.at(h)
		if Null != p.right {
			stack = append(stack, p.right)
		}
		if Null != p.left {
			stack = append(stack, p.left)
		}

		p.left = Null
		p.right = Null
		p.up = Null
		p.size = 1
		p.colour = Red

		tree.attach(h)
		tree.balance(h)
		tree.at(tree.root).colour = Black
	}
}
