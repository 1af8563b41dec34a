// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - replay a list of container operations
//
// a scenario is a list of steps, each naming an operation with a key
// and an optional value.  Steps are applied in order to an Operator;
// the first failing step stops the run.
//
// operations:
//
//   insert   add key and value, an existing key is left alone
//   assign   add key and value, an existing key gets the new value
//   set      store a value through the index operator
//   erase    remove the key
//   find     look the key up, absence is not an error
//   at       look the key up, absence is an error
//   clear    remove everything (no key needed)
package script
