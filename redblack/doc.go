// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package redblack - the red-black balancing policy for a
// bintree.Tree
//
// An absent child counts as black.  The root is black, a red node
// has no red child and every path from a node down to an absent
// child passes the same number of black nodes.
//
// An insert needs at most two rotations and an erase at most three.
package redblack
