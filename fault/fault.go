// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrIndexOutOfRange      = LengthError("index out of range")
	ErrInvalidIteration     = InvalidError("invalid iteration: cursor is at end or outside its container")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrMissingKey           = InvalidError("step is missing a key")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrUnknownOperation     = InvalidError("unknown operation")
)

// tree consistency errors - keep in alphabetic order
var (
	ErrKeyOrder       = RecordError("keys are out of order")
	ErrNodeCount      = RecordError("node count does not match the tree")
	ErrParentLink     = RecordError("parent link does not mirror child link")
	ErrRootColour     = RecordError("root node is not black")
	ErrSentinelBounds = RecordError("end sentinel does not cache the first and last nodes")
	ErrSubtreeSize    = RecordError("subtree size is inconsistent")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
