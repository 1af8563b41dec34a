// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - a red-black coloured binary search tree with
// parent links to allow iteration through the nodes in both
// directions
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes are kept in an arena of fixed size pages and are referred to
// by Handle rather than by pointer.  Handle zero is the end sentinel:
// its left link caches the last node and its right link caches the
// first node, so that both ends of the tree are reachable in constant
// time and decrementing the end position reaches the last node.
//
// Balancing is a simplified red-black scheme: after each insert the
// path to the root is walked applying a left rotation for a red right
// child with a black (or absent) sibling, a right rotation for two red
// left children in a row and a colour flip for a black node with two
// red children.  Equal black height is not guaranteed.
//
// Removal does not use rotations: the node is unlinked and every node
// of its subtrees is inserted again, then the sentinel is reset from
// the leftmost and rightmost nodes.  This keeps the search tree
// ordering but costs O(k·h) for k descendants.
//
// Insert does not reject duplicate keys, ties are placed in the left
// subtree.  Search stops at the first equal key met on the way down.
// Unique keys are the responsibility of the caller.
package rbtree
