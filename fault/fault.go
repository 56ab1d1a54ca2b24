// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationFailure     = ProcessError("allocation failure")
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBalanceFactor         = InvalidError("balance factor out of range")
	ErrBalanceMismatch       = InvalidError("stored balance factor does not match heights")
	ErrBlackHeight           = InvalidError("black height differs between paths")
	ErrBucketIndex           = InvalidError("key stored in the wrong bucket")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrDuplicateKey          = ExistsError("duplicate key")
	ErrEmptyTree             = NotFoundError("tree is empty")
	ErrForeignNode           = InvalidError("node does not belong to this tree")
	ErrInvalidAllocator      = InvalidError("invalid allocator")
	ErrInvalidBalancer       = InvalidError("invalid balancer")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidDataDirectory  = InvalidError("invalid data directory")
	ErrInvalidDuplicates     = InvalidError("invalid duplicate policy")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidPoolSize       = LengthError("invalid pool size")
	ErrInvalidRange          = InvalidError("invalid cursor range")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyOrder              = InvalidError("keys out of order")
	ErrLoadFactor            = InvalidError("load factor exceeded")
	ErrMissingCompare        = InvalidError("compare function is required")
	ErrMissingHash           = InvalidError("hash function is required")
	ErrModelMismatch         = ProcessError("tree and model disagree")
	ErrNotFound              = NotFoundError("key not found")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrNotFoundWorkload      = NotFoundError("workload is not found")
	ErrOccupancy             = InvalidError("occupied buckets do not match contents")
	ErrParentLink            = InvalidError("inconsistent parent link")
	ErrRedRoot               = InvalidError("root is red")
	ErrRedViolation          = InvalidError("red node has a red child")
	ErrSubtreeCount          = InvalidError("inconsistent subtree count")
	ErrTreeCount             = InvalidError("tree count does not match nodes")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool   { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
