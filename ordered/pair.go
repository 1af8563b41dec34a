// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordered

import (
	"cmp"
)

// Pair - a key and its value
type Pair[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// InsertResult - outcome of one insert in a batch
type InsertResult[C any] struct {
	Cursor   C    // the new entry, or the one that blocked the insert
	Inserted bool // false if the key was already present
}
