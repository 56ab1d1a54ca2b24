// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package allocator - node storage for the trees
//
// A tree never creates or discards its nodes directly, it asks an
// Allocator for storage when a key is inserted and hands the storage
// back when the key is erased or the tree is cleared.  The storage
// must not move while allocated since the tree links nodes by
// address.
//
// Two strategies are provided:
//
//   Heap - every item comes from the Go heap (the default)
//   Pool - items are carved out of fixed size blocks and reclaimed
//          items are kept on a free list for reuse
package allocator
