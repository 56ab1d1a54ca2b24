// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - the AVL balancing policy for a bintree.Tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.  Here it runs
// iteratively from the changed position towards the root using the
// parent pointers, so the structural work (links, sub-tree counts)
// stays in the bintree package and this package only decides where
// to rotate.
//
// The balance factor of a node is the height of its left sub-tree
// minus the height of its right sub-tree.
package avl
