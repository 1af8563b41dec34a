// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ordered - unique key ordered map and set built on rbtree
//
// Both containers keep their keys sorted, reject duplicate keys and
// hand out cursors that step forwards and backwards through the keys.
// End() is the position after the last key; stepping back from End()
// reaches the last key.
//
// The zero value of Map and Set is an empty container ready to use.
// A container is not safe for concurrent use.
//
// Cursor misuse (dereferencing or advancing End(), stepping back from
// Begin(), erasing End() or a cursor of another container) panics
// with fault.ErrInvalidIteration.
package ordered
