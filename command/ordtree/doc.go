// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Replay program for ordered maps
//
// This program reads a Lua scenario, applies its steps to an empty
// ordered map of strings and then shows the resulting entries, an
// optional drawing of the tree and the result of a consistency check.
package main
