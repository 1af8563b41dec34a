// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"github.com/bitmark-inc/ordtree/ordered"
)

//go:generate mockgen -source=operator.go -destination=mocks/operator.go -package=mocks

// Operator - the container operations a script can apply
type Operator interface {
	Insert(key string, value string) bool
	Assign(key string, value string) bool
	Store(key string, value string)
	Erase(key string) bool
	Find(key string) (string, bool)
	At(key string) (string, error)
	Clear()
	Size() int
}

// MapOperator - apply operations to an ordered map
type MapOperator struct {
	m *ordered.Map[string, string]
}

// NewMapOperator - operator for an existing map
func NewMapOperator(m *ordered.Map[string, string]) *MapOperator {
	return &MapOperator{m: m}
}

// Insert - add unless present
func (o *MapOperator) Insert(key string, value string) bool {
	_, inserted := o.m.Insert(key, value)
	return inserted
}

// Assign - add or overwrite
func (o *MapOperator) Assign(key string, value string) bool {
	_, inserted := o.m.InsertOrAssign(key, value)
	return inserted
}

// Store - write through the index operator
func (o *MapOperator) Store(key string, value string) {
	*o.m.Index(key) = value
}

// Erase - remove a key
func (o *MapOperator) Erase(key string) bool {
	return o.m.Delete(key)
}

// Find - value of a key if present
func (o *MapOperator) Find(key string) (string, bool) {
	c := o.m.Find(key)
	if c.IsEnd() {
		return "", false
	}
	return c.Value(), true
}

// At - value of a key, fault.ErrKeyNotFound if absent
func (o *MapOperator) At(key string) (string, error) {
	v, err := o.m.At(key)
	if nil != err {
		return "", err
	}
	return *v, nil
}

// Clear - remove everything
func (o *MapOperator) Clear() {
	o.m.Clear()
}

// Size - number of keys
func (o *MapOperator) Size() int {
	return o.m.Size()
}
