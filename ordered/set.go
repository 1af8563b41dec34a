// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordered

import (
	"cmp"
	"io"
	"iter"

	"github.com/bitmark-inc/ordtree/rbtree"
)

// Set - unique keys kept in ascending order
type Set[K cmp.Ordered] struct {
	c container[K, struct{}]
}

// SetCursor - a position in a Set
type SetCursor[K cmp.Ordered] struct {
	rc rbtree.Cursor[K, struct{}]
}

// NewSet - create an empty set
func NewSet[K cmp.Ordered]() *Set[K] {
	s := &Set[K]{}
	s.c.ensure()
	return s
}

// SetOf - create a set from a list of keys
func SetOf[K cmp.Ordered](keys ...K) *Set[K] {
	s := NewSet[K]()
	for _, key := range keys {
		s.c.insert(key, struct{}{})
	}
	return s
}

// MoveSet - create a set holding the keys of src, src is left empty
func MoveSet[K cmp.Ordered](src *Set[K]) *Set[K] {
	s := &Set[K]{}
	s.c.moveFrom(&src.c)
	return s
}

// Clone - an independent copy of the set
func (s *Set[K]) Clone() *Set[K] {
	n := NewSet[K]()
	n.c.copyFrom(&s.c)
	return n
}

// Assign - replace the content with a copy of src
func (s *Set[K]) Assign(src *Set[K]) {
	s.c.copyFrom(&src.c)
}

// MoveFrom - replace the content with that of src, src is left empty
func (s *Set[K]) MoveFrom(src *Set[K]) {
	s.c.moveFrom(&src.c)
}

// Insert - add a key if not present
func (s *Set[K]) Insert(key K) (SetCursor[K], bool) {
	h, inserted := s.c.insert(key, struct{}{})
	return s.at(h), inserted
}

// Emplace - insert several keys, reporting each outcome
func (s *Set[K]) Emplace(keys ...K) []InsertResult[SetCursor[K]] {
	results := make([]InsertResult[SetCursor[K]], len(keys))
	for i, key := range keys {
		c, inserted := s.Insert(key)
		results[i] = InsertResult[SetCursor[K]]{
			Cursor:   c,
			Inserted: inserted,
		}
	}
	return results
}

// Erase - remove the key under a cursor
func (s *Set[K]) Erase(cursor SetCursor[K]) {
	s.c.erase(cursor.rc)
}

// Delete - remove a key, false if it was not present
func (s *Set[K]) Delete(key K) bool {
	h := s.c.search(key)
	if rbtree.Null == h {
		return false
	}
	s.c.erase(s.c.tree.At(h))
	return true
}

// Merge - move the keys of other that are not in this set
func (s *Set[K]) Merge(other *Set[K]) {
	s.c.merge(&other.c)
}

// Swap - exchange content with another set
func (s *Set[K]) Swap(other *Set[K]) {
	s.c.swap(&other.c)
}

// Contains - true if the key is present
func (s *Set[K]) Contains(key K) bool {
	return rbtree.Null != s.c.search(key)
}

// Find - cursor at a key, End if absent
func (s *Set[K]) Find(key K) SetCursor[K] {
	return s.at(s.c.search(key))
}

// LowerBound - cursor at the first key not less than key, End if none
func (s *Set[K]) LowerBound(key K) SetCursor[K] {
	return SetCursor[K]{rc: s.c.lowerBound(key)}
}

// Rank - index of a key in ascending order, -1 if absent
func (s *Set[K]) Rank(key K) int {
	return s.c.rank(key)
}

// Nth - cursor at an index in ascending order
func (s *Set[K]) Nth(index int) (SetCursor[K], error) {
	rc, err := s.c.nth(index)
	return SetCursor[K]{rc: rc}, err
}

// Clear - remove every key
func (s *Set[K]) Clear() {
	s.c.clear()
}

// Size - number of keys
func (s *Set[K]) Size() int {
	return s.c.size()
}

// Empty - true if there are no keys
func (s *Set[K]) Empty() bool {
	return 0 == s.c.size()
}

// MaxSize - theoretical limit on the number of keys
func (s *Set[K]) MaxSize() int {
	return s.c.maxSize()
}

// Begin - cursor at the lowest key, End when empty
func (s *Set[K]) Begin() SetCursor[K] {
	return SetCursor[K]{rc: s.c.begin()}
}

// End - cursor after the highest key
func (s *Set[K]) End() SetCursor[K] {
	return SetCursor[K]{rc: s.c.end()}
}

// All - keys in ascending order
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if 0 == s.c.size() {
			return
		}
		tree := s.c.tree
		for h := tree.First(); rbtree.Sentinel != h; h = tree.Next(h) {
			if !yield(tree.Key(h)) {
				return
			}
		}
	}
}

// Backward - keys in descending order
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		if 0 == s.c.size() {
			return
		}
		tree := s.c.tree
		for h := tree.Last(); rbtree.Null != h; h = tree.Prev(h) {
			if !yield(tree.Key(h)) {
				return
			}
		}
	}
}

// Fprint - draw the underlying tree, returns its depth
func (s *Set[K]) Fprint(w io.Writer, printData bool) int {
	if 0 == s.c.size() {
		return 0
	}
	return s.c.tree.Fprint(w, printData)
}

// Check - verify the internal consistency of the set
func (s *Set[K]) Check() error {
	return s.c.check()
}

func (s *Set[K]) at(h rbtree.Handle) SetCursor[K] {
	return SetCursor[K]{rc: s.c.cursor(h)}
}

// Next - cursor at the following key, the highest key steps to End
func (c SetCursor[K]) Next() SetCursor[K] {
	return SetCursor[K]{rc: c.rc.Next()}
}

// Prev - cursor at the preceding key, End steps to the highest key
func (c SetCursor[K]) Prev() SetCursor[K] {
	return SetCursor[K]{rc: c.rc.Prev()}
}

// Key - key under the cursor
func (c SetCursor[K]) Key() K {
	return c.rc.Key()
}

// IsEnd - true for the position after the highest key
func (c SetCursor[K]) IsEnd() bool {
	return c.rc.IsEnd()
}
