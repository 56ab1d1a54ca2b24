// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

import (
	"errors"
	"fmt"

	"github.com/bitmark-inc/bintree/fault"
)

// Search - find a specific key, returning the node and its zero based
// index in key order, or nil and -1 if not present
//
// with the Allow policy the first of several equal keys is returned
func (tree *Tree[K, V]) Search(key K) (*Node[K, V], int) {
	var found *Node[K, V]
	foundIndex := -1

	index := 0
	p := tree.root
	for nil != p {
		c := tree.compare(key, p.key)
		switch {
		case c < 0:
			p = p.left
		case c > 0:
			index += p.left.Size() + 1
			p = p.right
		default:
			found = p
			foundIndex = index + p.left.Size()
			if Allow != tree.duplicates {
				return found, foundIndex
			}
			p = p.left
		}
	}
	return found, foundIndex
}

// Find - the node holding key
func (tree *Tree[K, V]) Find(key K) (*Node[K, V], error) {
	node, _ := tree.Search(key)
	if nil == node {
		return nil, fault.ErrNotFound
	}
	return node, nil
}

// Get - index to specific item in key order, nil if out of range
func (tree *Tree[K, V]) Get(index int) *Node[K, V] {
	if index < 0 || index >= tree.count {
		return nil
	}
	p := tree.root
	for nil != p {
		nl := p.left.Size()
		switch {
		case index < nl:
			p = p.left
		case index > nl:
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// Min - lowest node, fails on an empty tree
func (tree *Tree[K, V]) Min() (*Node[K, V], error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	return tree.root.first(), nil
}

// Max - highest node, fails on an empty tree
func (tree *Tree[K, V]) Max() (*Node[K, V], error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	return tree.root.last(), nil
}

// Insert - add a key and value
//
// an existing equal key is handled by the duplicate policy: Reject
// returns the existing node with fault.ErrDuplicateKey, Replace
// overwrites the existing value and Allow adds a new node after the
// equal keys.  If the allocator fails the tree is unchanged and the
// error is always a fault.ErrAllocationFailure, wrapping the
// allocator's own error if it returned one.
func (tree *Tree[K, V]) Insert(key K, value V) (*Node[K, V], error) {
	parent, left, existing := tree.locate(key)
	if nil != existing {
		if Replace == tree.duplicates {
			existing.value = value
			return existing, nil
		}
		return existing, fault.ErrDuplicateKey
	}

	node, err := tree.allocator.Allocate()
	if nil != err {
		if nil != tree.log {
			tree.log.Warnf("insert: %v  allocation error: %s", key, err)
		}
		if errors.Is(err, fault.ErrAllocationFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", fault.ErrAllocationFailure, err)
	}
	if nil == node {
		return nil, fault.ErrAllocationFailure
	}

	node.key = key
	node.value = value
	node.balance = 0
	node.colour = Red

	tree.InsertLeaf(node, parent, left)
	tree.balancer.InsertFixup(tree, node)
	tree.check("insert")

	return node, nil
}

// internal: find the empty position for key, or an existing node
// with an equal key if the policy does not allow duplicates
func (tree *Tree[K, V]) locate(key K) (*Node[K, V], bool, *Node[K, V]) {
	var parent *Node[K, V]
	left := false
	p := tree.root
	for nil != p {
		c := tree.compare(key, p.key)
		if 0 == c && Allow != tree.duplicates {
			return parent, left, p
		}
		parent = p
		if c < 0 {
			p = p.left
			left = true
		} else {
			p = p.right
			left = false
		}
	}
	return parent, left, nil
}

// Erase - remove a key from the tree returning its value
func (tree *Tree[K, V]) Erase(key K) (V, error) {
	var zero V
	if nil == tree.root {
		return zero, fault.ErrEmptyTree
	}
	node, _ := tree.Search(key)
	if nil == node {
		return zero, fault.ErrNotFound
	}
	return tree.erase(node), nil
}

// EraseNode - remove a node previously returned by this tree
func (tree *Tree[K, V]) EraseNode(node *Node[K, V]) error {
	if !tree.owns(node) {
		return fault.ErrForeignNode
	}
	tree.erase(node)
	return nil
}

// Move - unlink node from this tree and link it into other without
// releasing or allocating it
//
// both trees must use the same allocator so that the node is released
// to the right place later.  An equal key already in other fails
// with fault.ErrDuplicateKey unless other allows duplicates; in that
// case neither tree is changed.
func (tree *Tree[K, V]) Move(node *Node[K, V], other *Tree[K, V]) error {
	if !tree.owns(node) {
		return fault.ErrForeignNode
	}
	if tree == other {
		return nil
	}
	if tree.allocator != other.allocator {
		return fault.ErrInvalidAllocator
	}

	parent, left, existing := other.locate(node.key)
	if nil != existing {
		return fault.ErrDuplicateKey
	}

	removal := tree.Detach(node)
	tree.balancer.EraseFixup(tree, removal)
	tree.check("move")

	node.balance = 0
	node.colour = Red
	other.InsertLeaf(node, parent, left)
	other.balancer.InsertFixup(other, node)
	other.check("move")

	return nil
}

// internal: detach, rebalance and release
func (tree *Tree[K, V]) erase(node *Node[K, V]) V {
	value := node.value

	removal := tree.Detach(node)
	tree.balancer.EraseFixup(tree, removal)
	tree.allocator.Release(node)
	tree.check("erase")

	return value
}

// internal: node is linked into this tree
func (tree *Tree[K, V]) owns(node *Node[K, V]) bool {
	if nil == node || nil == tree.root {
		return false
	}
	for nil != node.up {
		node = node.up
	}
	return node == tree.root
}

// Clear - release every node, children before their parent
func (tree *Tree[K, V]) Clear() {
	n := tree.count
	tree.release(tree.root)
	tree.root = nil
	tree.count = 0
	if nil != tree.log {
		tree.log.Debugf("clear: released: %d nodes", n)
	}
}

// internal: post-order release
func (tree *Tree[K, V]) release(p *Node[K, V]) {
	if nil == p {
		return
	}
	left := p.left
	right := p.right
	tree.release(left)
	tree.release(right)
	tree.allocator.Release(p)
}

// Ascend - call f for each node in ascending key order until f
// returns false
func (tree *Tree[K, V]) Ascend(f func(*Node[K, V]) bool) {
	for p := tree.root.first(); nil != p; p = p.Next() {
		if !f(p) {
			return
		}
	}
}

// Descend - call f for each node in descending key order until f
// returns false
func (tree *Tree[K, V]) Descend(f func(*Node[K, V]) bool) {
	for p := tree.root.last(); nil != p; p = p.Prev() {
		if !f(p) {
			return
		}
	}
}

// Height - number of nodes on the longest root to leaf path
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

func height[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	l := height(p.left)
	r := height(p.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// internal: debug verification after a mutation
func (tree *Tree[K, V]) check(operation string) {
	if !tree.verify {
		return
	}
	if err := tree.Check(); nil != err {
		fault.Panicf("%s: %s tree invariant broken: %s", operation, tree.balancer.Name(), err)
	}
}
