// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

// Balancer - a rebalancing policy
//
// Insert calls InsertFixup after the new node has been attached as a
// leaf; Erase calls EraseFixup after the node has been detached and
// before it is released.  Both may only restructure the tree through
// RotateLeft and RotateRight.
type Balancer[K, V any] interface {
	// Name - short policy name
	Name() string

	// InsertFixup - restore the invariant after node was attached
	InsertFixup(tree *Tree[K, V], node *Node[K, V])

	// EraseFixup - restore the invariant after a Detach
	EraseFixup(tree *Tree[K, V], removal Removal[K, V])

	// Verify - check the policy's invariant over the whole tree
	Verify(tree *Tree[K, V]) error

	// Label - the per node state for printing
	Label(node *Node[K, V]) string
}

// Removal - result of Detach
type Removal[K, V any] struct {
	// the unlinked node, it carries the balance and colour of the
	// position it was removed from
	Node *Node[K, V]

	// where rebalancing starts, nil if the last node of the tree
	// or a root with a single child was removed
	Parent *Node[K, V]

	// the sub-tree (possibly nil) that took the removed position
	Child *Node[K, V]

	// the removed position was the left child of Parent
	Left bool
}

// Plain - no balancing, the shape depends on insertion order
type Plain[K, V any] struct{}

// Name - policy name
func (Plain[K, V]) Name() string {
	return "plain"
}

// InsertFixup - nothing to do
func (Plain[K, V]) InsertFixup(tree *Tree[K, V], node *Node[K, V]) {}

// EraseFixup - nothing to do
func (Plain[K, V]) EraseFixup(tree *Tree[K, V], removal Removal[K, V]) {}

// Verify - no invariant beyond the search order
func (Plain[K, V]) Verify(tree *Tree[K, V]) error {
	return nil
}

// Label - no per node state
func (Plain[K, V]) Label(node *Node[K, V]) string {
	return ""
}
