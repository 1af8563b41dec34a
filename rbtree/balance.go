// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// walk from a freshly attached node towards the root correcting the
// colouring on the way
func (tree *Tree[K, V]) balance(h Handle) {
	for Null != h {
		n := tree.at(h)
		if Null == n.up {
			return
		}

		p := tree.at(n.up)
		if Red == n.colour && p.right == h && (Null == p.left || Black == tree.at(p.left).colour) {
			tree.rotateLeft(n.up)
		} else if Null != p.up {
			g := tree.at(p.up)
			if Red == n.colour && Red == p.colour && p.left == h && g.left == n.up {
				tree.rotateRight(p.up)
			}
		}

		// the parent may have changed above
		if Null != n.up {
			tree.flipColours(n.up)
		}
		h = n.up
	}
}

// a black node with two red children becomes red, children black
func (tree *Tree[K, V]) flipColours(h Handle) {
	p := tree.at(h)
	if Black != p.colour || Null == p.left || Null == p.right {
		return
	}
	l := tree.at(p.left)
	r := tree.at(p.right)
	if Red == l.colour && Red == r.colour {
		p.colour = Red
		l.colour = Black
		r.colour = Black
	}
}

// rotateLeft - turn (x a (y b c)) into (y (x a b) c)
func (tree *Tree[K, V]) rotateLeft(x Handle) {
	px := tree.at(x)
	y := px.right
	py := tree.at(y)

	if nil != tree.log {
		tree.log.Tracef("rotate left at: %v", px.key)
	}

	px.colour = Red
	py.colour = Black

	px.right = py.left
	if Null != py.left {
		tree.at(py.left).up = x
	}

	py.up = px.up
	tree.replaceChild(px.up, x, y)

	py.left = x
	px.up = y

	py.size = px.size
	px.size = 1 + tree.sizeOf(px.left) + tree.sizeOf(px.right)
}

// rotateRight - turn (y (x a b) c) into (x a (y b c))
func (tree *Tree[K, V]) rotateRight(y Handle) {
	py := tree.at(y)
	x := py.left
	px := tree.at(x)

	if nil != tree.log {
		tree.log.Tracef("rotate right at: %v", py.key)
	}

	py.colour = Red
	px.colour = Black

	py.left = px.right
	if Null != px.right {
		tree.at(px.right).up = y
	}

	px.up = py.up
	tree.replaceChild(py.up, y, x)

	px.right = y
	py.up = x

	px.size = py.size
	py.size = 1 + tree.sizeOf(py.left) + tree.sizeOf(py.right)
}

// point the parent link that referred to old at new instead,
// parent Null means old was the root
func (tree *Tree[K, V]) replaceChild(parent Handle, old Handle, new Handle) {
	if Null == parent {
		tree.root = new
		return
	}
	p := tree.at(parent)
	switch old {
	case p.left:
		p.left = new
	case p.right:
		p.right = new
	default:
		panic("corrupt tree")
	}
}
