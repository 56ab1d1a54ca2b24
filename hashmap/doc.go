// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashmap - a hash map whose buckets are red-black trees
//
// Keys are hashed with xxhash and the 64 bit hash is scaled linearly
// onto the bucket array, so any bucket count works.  Each bucket is a
// bintree.Tree using the redblack policy; keys that collide in a
// bucket are kept in key order, so a bucket degrades to O(log n)
// rather than O(n).  A bitset records which buckets hold nodes and is
// used to skip empty buckets while iterating.
//
// The map doubles its bucket array before an insert would raise the
// load above MaxLoadFactor.  Growing moves each node into its new
// bucket without allocating, so node pointers stay valid; cursors do
// not survive a change in the number of buckets.
//
// Note: a map is not thread safe, in the same way as a single tree.
package hashmap
