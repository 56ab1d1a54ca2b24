// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bintree - a binary search tree with parent pointers whose
// balancing is delegated to a pluggable policy
//
// The package has two layers:
//
//   structure - InsertLeaf, RotateLeft, RotateRight and Detach keep the
//               links, subtree counts and the root reference correct
//               without any notion of balance
//
//   search    - Find, Insert, Erase and Clear give ordered dictionary
//               semantics using the compare function of the tree and
//               call the Balancer after each structural change
//
// The balancing policies live in the avl and redblack packages, the
// Plain policy here performs no balancing at all.  Node storage is
// obtained from an allocator.Allocator and every node is released
// exactly once.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Erasing a node never moves any other node, so a *Node or a Cursor
// remains valid until its own node is erased.
package bintree
