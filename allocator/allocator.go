// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package allocator

// Allocator - the capability a tree needs for its node storage
type Allocator[T any] interface {
	// Allocate - obtain zeroed storage for one item
	Allocate() (*T, error)

	// Release - return storage previously obtained by Allocate, each
	// item must be released exactly once
	Release(item *T)
}

// Stats - allocation totals
type Stats struct {
	Allocated uint64 // calls to Allocate that succeeded
	Released  uint64 // calls to Release
	Live      uint64 // items currently held by callers
	Capacity  uint64 // items backed by storage, zero if unbounded
	Rejected  uint64 // releases refused by a checking pool
}

// Reporter - optional interface for allocators that keep statistics
type Reporter interface {
	Stats() Stats
}
