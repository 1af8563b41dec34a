// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordered

import (
	"cmp"
	"io"
	"iter"

	"github.com/bitmark-inc/ordtree/fault"
	"github.com/bitmark-inc/ordtree/rbtree"
)

// Map - key to value map with unique keys kept in key order
type Map[K cmp.Ordered, V any] struct {
	c container[K, V]
}

// MapCursor - a position in a Map
type MapCursor[K cmp.Ordered, V any] struct {
	rc rbtree.Cursor[K, V]
}

// NewMap - create an empty map
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	m := &Map[K, V]{}
	m.c.ensure()
	return m
}

// MapOf - create a map from a list of pairs, later duplicates are
// ignored
func MapOf[K cmp.Ordered, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	for _, p := range pairs {
		m.c.insert(p.Key, p.Value)
	}
	return m
}

// MoveMap - create a map holding the content of src, src is left empty
func MoveMap[K cmp.Ordered, V any](src *Map[K, V]) *Map[K, V] {
	m := &Map[K, V]{}
	m.c.moveFrom(&src.c)
	return m
}

// Clone - an independent copy of the map
func (m *Map[K, V]) Clone() *Map[K, V] {
	n := NewMap[K, V]()
	n.c.copyFrom(&m.c)
	return n
}

// Assign - replace the content with a copy of src
func (m *Map[K, V]) Assign(src *Map[K, V]) {
	m.c.copyFrom(&src.c)
}

// MoveFrom - replace the content with that of src, src is left empty
func (m *Map[K, V]) MoveFrom(src *Map[K, V]) {
	m.c.moveFrom(&src.c)
}

// At - pointer to the value of a key
//
// the pointer stays valid until the key is erased
func (m *Map[K, V]) At(key K) (*V, error) {
	h := m.c.search(key)
	if rbtree.Null == h {
		return nil, fault.ErrKeyNotFound
	}
	return m.c.tree.ValuePointer(h), nil
}

// Index - pointer to the value of a key, a missing key is first
// inserted with the zero value
func (m *Map[K, V]) Index(key K) *V {
	var zero V
	h, _ := m.c.insert(key, zero)
	return m.c.tree.ValuePointer(h)
}

// Insert - add a key and value if the key is not present
func (m *Map[K, V]) Insert(key K, value V) (MapCursor[K, V], bool) {
	h, inserted := m.c.insert(key, value)
	return m.at(h), inserted
}

// InsertOrAssign - add a key and value, overwriting the value if the
// key is present
func (m *Map[K, V]) InsertOrAssign(key K, value V) (MapCursor[K, V], bool) {
	h, inserted := m.c.insert(key, value)
	if !inserted {
		m.c.tree.SetValue(h, value)
	}
	return m.at(h), inserted
}

// Emplace - insert several pairs, reporting each outcome
func (m *Map[K, V]) Emplace(pairs ...Pair[K, V]) []InsertResult[MapCursor[K, V]] {
	results := make([]InsertResult[MapCursor[K, V]], len(pairs))
	for i, p := range pairs {
		c, inserted := m.Insert(p.Key, p.Value)
		results[i] = InsertResult[MapCursor[K, V]]{
			Cursor:   c,
			Inserted: inserted,
		}
	}
	return results
}

// Erase - remove the entry under a cursor
//
// the cursor and any copies of it must not be used afterwards
func (m *Map[K, V]) Erase(cursor MapCursor[K, V]) {
	m.c.erase(cursor.rc)
}

// Delete - remove a key, false if it was not present
func (m *Map[K, V]) Delete(key K) bool {
	h := m.c.search(key)
	if rbtree.Null == h {
		return false
	}
	m.c.erase(m.c.tree.At(h))
	return true
}

// Merge - move the entries of other whose keys are not in this map
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	m.c.merge(&other.c)
}

// Swap - exchange content with another map, cursors stay with their
// entries
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.c.swap(&other.c)
}

// Contains - true if the key is present
func (m *Map[K, V]) Contains(key K) bool {
	return rbtree.Null != m.c.search(key)
}

// Find - cursor at a key, End if absent
func (m *Map[K, V]) Find(key K) MapCursor[K, V] {
	return m.at(m.c.search(key))
}

// Rank - index of a key in key order, -1 if absent
func (m *Map[K, V]) Rank(key K) int {
	return m.c.rank(key)
}

// Nth - cursor at an index in key order
func (m *Map[K, V]) Nth(index int) (MapCursor[K, V], error) {
	rc, err := m.c.nth(index)
	return MapCursor[K, V]{rc: rc}, err
}

// Clear - remove every entry
func (m *Map[K, V]) Clear() {
	m.c.clear()
}

// Size - number of entries
func (m *Map[K, V]) Size() int {
	return m.c.size()
}

// Empty - true if there are no entries
func (m *Map[K, V]) Empty() bool {
	return 0 == m.c.size()
}

// MaxSize - theoretical limit on the number of entries
func (m *Map[K, V]) MaxSize() int {
	return m.c.maxSize()
}

// Begin - cursor at the lowest key, End when empty
func (m *Map[K, V]) Begin() MapCursor[K, V] {
	return MapCursor[K, V]{rc: m.c.begin()}
}

// End - cursor after the highest key
func (m *Map[K, V]) End() MapCursor[K, V] {
	return MapCursor[K, V]{rc: m.c.end()}
}

// All - entries in ascending key order
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if 0 == m.c.size() {
			return
		}
		tree := m.c.tree
		for h := tree.First(); rbtree.Sentinel != h; h = tree.Next(h) {
			if !yield(tree.Key(h), tree.Value(h)) {
				return
			}
		}
	}
}

// Backward - entries in descending key order
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if 0 == m.c.size() {
			return
		}
		tree := m.c.tree
		for h := tree.Last(); rbtree.Null != h; h = tree.Prev(h) {
			if !yield(tree.Key(h), tree.Value(h)) {
				return
			}
		}
	}
}

// Keys - keys in ascending order
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Fprint - draw the underlying tree, returns its depth
func (m *Map[K, V]) Fprint(w io.Writer, printData bool) int {
	if 0 == m.c.size() {
		return 0
	}
	return m.c.tree.Fprint(w, printData)
}

// Check - verify the internal consistency of the map
func (m *Map[K, V]) Check() error {
	return m.c.check()
}

func (m *Map[K, V]) at(h rbtree.Handle) MapCursor[K, V] {
	return MapCursor[K, V]{rc: m.c.cursor(h)}
}

// Next - cursor at the following key, the highest key steps to End
func (c MapCursor[K, V]) Next() MapCursor[K, V] {
	return MapCursor[K, V]{rc: c.rc.Next()}
}

// Prev - cursor at the preceding key, End steps to the highest key
func (c MapCursor[K, V]) Prev() MapCursor[K, V] {
	return MapCursor[K, V]{rc: c.rc.Prev()}
}

// Key - key under the cursor
func (c MapCursor[K, V]) Key() K {
	return c.rc.Key()
}

// Value - value under the cursor
func (c MapCursor[K, V]) Value() V {
	return c.rc.Value()
}

// Entry - key and value under the cursor
func (c MapCursor[K, V]) Entry() (K, V) {
	return c.rc.Entry()
}

// SetValue - overwrite the value under the cursor
func (c MapCursor[K, V]) SetValue(value V) {
	c.rc.SetValue(value)
}

// IsEnd - true for the position after the highest key
func (c MapCursor[K, V]) IsEnd() bool {
	return c.rc.IsEnd()
}
