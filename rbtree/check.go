// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/ordtree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return nil == tree.checkup()
}

// Check - full structural consistency check
//
// verifies parent links, key order, sub-tree sizes, node count, root
// colour and the bounds cached in the sentinel
func (tree *Tree[K, V]) Check() error {
	if err := tree.checkup(); nil != err {
		return err
	}

	if Null == tree.root {
		if 0 != tree.count {
			return fault.ErrNodeCount
		}
		if tree.open {
			return fault.ErrSentinelBounds
		}
		return nil
	}

	if Black != tree.at(tree.root).colour {
		return fault.ErrRootColour
	}
	if tree.count != tree.at(tree.root).size {
		return fault.ErrNodeCount
	}

	// sizes: children are always finished before their parent
	stack := []Handle{tree.root}
	order := make([]Handle, 0, tree.count)
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, h)
		p := tree.at(h)
		if Null != p.left {
			stack = append(stack, p.left)
		}
		if Null != p.right {
			stack = append(stack, p.right)
		}
	}
	if len(order) != tree.count {
		return fault.ErrNodeCount
	}
	for i := len(order) - 1; i >= 0; i -= 1 {
		p := tree.at(order[i])
		if p.size != 1+tree.sizeOf(p.left)+tree.sizeOf(p.right) {
			return fault.ErrSubtreeSize
		}
	}

	// in-order walk must never decrease
	first := tree.first(tree.root)
	last := tree.last(tree.root)
	if !tree.open || tree.First() != first || tree.Last() != last {
		return fault.ErrSentinelBounds
	}
	n := 1
	previous := first
	for h := tree.Next(first); Sentinel != h; h = tree.Next(h) {
		if tree.at(h).key < tree.at(previous).key {
			return fault.ErrKeyOrder
		}
		previous = h
		n += 1
	}
	if n != tree.count {
		return fault.ErrNodeCount
	}
	return nil
}

// internal: consistency checker for the up links
func (tree *Tree[K, V]) checkup() error {
	if Null == tree.root {
		return nil
	}
	if Null != tree.at(tree.root).up {
		if nil != tree.log {
			tree.log.Errorf("root: %v has parent", tree.at(tree.root).key)
		}
		return fault.ErrParentLink
	}
	stack := []Handle{tree.root}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		p := tree.at(h)
		for _, child := range []Handle{p.left, p.right} {
			if Null == child {
				continue
			}
			if tree.at(child).up != h {
				if nil != tree.log {
					tree.log.Errorf("fail at node: %v  expected parent: %v", tree.at(child).key, p.key)
				}
				return fault.ErrParentLink
			}
			stack = append(stack, child)
		}
	}
	return nil
}
