// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

import (
	"github.com/bitmark-inc/bintree/fault"
)

// InsertLeaf - attach node at an empty position: as the left or right
// child of parent, or as the root if parent is nil
//
// subtree counts are updated up to the root; no rebalancing is done
func (tree *Tree[K, V]) InsertLeaf(node *Node[K, V], parent *Node[K, V], left bool) {
	node.left = nil
	node.right = nil
	node.up = parent
	node.nodes = 1

	switch {
	case nil == parent:
		if nil != tree.root {
			fault.Panicf("insert leaf: tree already has a root: %v", tree.root.key)
		}
		tree.root = node
	case left:
		if nil != parent.left {
			fault.Panicf("insert leaf: left of: %v is occupied", parent.key)
		}
		parent.left = node
	default:
		if nil != parent.right {
			fault.Panicf("insert leaf: right of: %v is occupied", parent.key)
		}
		parent.right = node
	}

	for p := parent; nil != p; p = p.up {
		p.nodes += 1
	}
	tree.count += 1
}

// RotateLeft - the right child of node takes its place and node
// becomes that child's left child
//
//	    n                r
//	   / \              / \
//	  a   r     =>     n   c
//	     / \          / \
//	    b   c        a   b
func (tree *Tree[K, V]) RotateLeft(node *Node[K, V]) {
	r := node.right
	if nil == r {
		fault.Panicf("rotate left: node: %v has no right child", node.key)
	}

	tree.replaceChild(node.up, node, r)

	node.right = r.left
	if nil != node.right {
		node.right.up = node
	}
	r.left = node
	node.up = r

	node.nodes = 1 + node.left.Size() + node.right.Size()
	r.nodes = 1 + r.left.Size() + r.right.Size()
	tree.rotations += 1
}

// RotateRight - the left child of node takes its place and node
// becomes that child's right child
//
//	      n            l
//	     / \          / \
//	    l   c   =>   a   n
//	   / \              / \
//	  a   b            b   c
func (tree *Tree[K, V]) RotateRight(node *Node[K, V]) {
	l := node.left
	if nil == l {
		fault.Panicf("rotate right: node: %v has no left child", node.key)
	}

	tree.replaceChild(node.up, node, l)

	node.left = l.right
	if nil != node.left {
		node.left.up = node
	}
	l.right = node
	node.up = l

	node.nodes = 1 + node.left.Size() + node.right.Size()
	l.nodes = 1 + l.left.Size() + l.right.Size()
	tree.rotations += 1
}

// Detach - unlink node from the tree
//
// a node with two children first exchanges its position with its
// in-order successor, which has no left child, so the node is always
// unlinked from a position with at most one child.  No other node
// changes its key or value.
func (tree *Tree[K, V]) Detach(node *Node[K, V]) Removal[K, V] {
	if nil != node.left && nil != node.right {
		tree.exchange(node, node.right.first())
	}

	child := node.left
	if nil == child {
		child = node.right
	}
	parent := node.up
	left := nil != parent && parent.left == node

	tree.replaceChild(parent, node, child)

	for p := parent; nil != p; p = p.up {
		p.nodes -= 1
	}
	tree.count -= 1

	node.up = nil
	node.left = nil
	node.right = nil
	node.nodes = 0

	return Removal[K, V]{
		Node:   node,
		Parent: parent,
		Child:  child,
		Left:   left,
	}
}

// internal: make replacement (possibly nil) the child of parent that
// old used to be, or the root if parent is nil
func (tree *Tree[K, V]) replaceChild(parent *Node[K, V], old *Node[K, V], replacement *Node[K, V]) {
	switch {
	case nil == parent:
		tree.root = replacement
	case parent.left == old:
		parent.left = replacement
	default:
		parent.right = replacement
	}
	if nil != replacement {
		replacement.up = parent
	}
}

// internal: swap the positions of node and its successor s
//
// s is the lowest node of node's right sub-tree so s has no left
// child; the per position state (balance, colour, count) is swapped
// along with the links
func (tree *Tree[K, V]) exchange(node *Node[K, V], s *Node[K, V]) {
	nl := node.left
	nr := node.right
	sp := s.up
	sr := s.right

	tree.replaceChild(node.up, node, s)

	s.left = nl
	nl.up = s

	if nr == s {
		s.right = node
		node.up = s
	} else {
		s.right = nr
		nr.up = s
		sp.left = node
		node.up = sp
	}

	node.left = nil
	node.right = sr
	if nil != sr {
		sr.up = node
	}

	node.balance, s.balance = s.balance, node.balance
	node.colour, s.colour = s.colour, node.colour
	node.nodes, s.nodes = s.nodes, node.nodes
}
