// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

import (
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/iterator"
)

// Cursor - in-order position in a tree
//
// when node is nil the cursor is at end (end is true) or
// before-begin (end is false)
type Cursor[K, V any] struct {
	tree *Tree[K, V]
	node *Node[K, V]
	end  bool
}

// ensure the cursor satisfies the shared iterator contract
var _ iterator.Iterator[*Node[int, int]] = (*Cursor[int, int])(nil)

// Begin - cursor at the lowest key, or end if the tree is empty
func (tree *Tree[K, V]) Begin() *Cursor[K, V] {
	return tree.CursorAt(tree.root.first())
}

// End - cursor just past the highest key
func (tree *Tree[K, V]) End() *Cursor[K, V] {
	return &Cursor[K, V]{
		tree: tree,
		node: nil,
		end:  true,
	}
}

// CursorAt - cursor positioned on node, end if node is nil
func (tree *Tree[K, V]) CursorAt(node *Node[K, V]) *Cursor[K, V] {
	return &Cursor[K, V]{
		tree: tree,
		node: node,
		end:  nil == node,
	}
}

// LowerBound - cursor at the first node whose key is not less than
// key, or end
func (tree *Tree[K, V]) LowerBound(key K) *Cursor[K, V] {
	var candidate *Node[K, V]
	for p := tree.root; nil != p; {
		if tree.compare(p.key, key) >= 0 {
			candidate = p
			p = p.left
		} else {
			p = p.right
		}
	}
	return tree.CursorAt(candidate)
}

// UpperBound - cursor at the first node whose key is greater than
// key, or end
func (tree *Tree[K, V]) UpperBound(key K) *Cursor[K, V] {
	var candidate *Node[K, V]
	for p := tree.root; nil != p; {
		if tree.compare(p.key, key) > 0 {
			candidate = p
			p = p.left
		} else {
			p = p.right
		}
	}
	return tree.CursorAt(candidate)
}

// Advance - move to the in-order successor
func (c *Cursor[K, V]) Advance() bool {
	switch {
	case nil != c.node:
		c.node = c.node.Next()
		if nil == c.node {
			c.end = true
		}
	case !c.end:
		c.node = c.tree.root.first()
		c.end = nil == c.node
	}
	return nil != c.node
}

// Retreat - move to the in-order predecessor
func (c *Cursor[K, V]) Retreat() bool {
	switch {
	case nil != c.node:
		c.node = c.node.Prev()
		if nil == c.node {
			c.end = false
		}
	case c.end:
		c.node = c.tree.root.last()
		c.end = false
	}
	return nil != c.node
}

// Get - the current node
func (c *Cursor[K, V]) Get() *Node[K, V] {
	return c.node
}

// Key - key of the current node
func (c *Cursor[K, V]) Key() K {
	return c.node.key
}

// Value - value of the current node
func (c *Cursor[K, V]) Value() V {
	return c.node.value
}

// Valid - positioned on a node
func (c *Cursor[K, V]) Valid() bool {
	return nil != c.node
}

// AtEnd - positioned just past the highest key
func (c *Cursor[K, V]) AtEnd() bool {
	return nil == c.node && c.end
}

// Equal - same tree and same position
func (c *Cursor[K, V]) Equal(other iterator.Iterator[*Node[K, V]]) bool {
	o, ok := other.(*Cursor[K, V])
	if !ok || nil == o {
		return false
	}
	if c.tree != o.tree || c.node != o.node {
		return false
	}
	return nil != c.node || c.end == o.end
}

// Clone - independent cursor at the same position
func (c *Cursor[K, V]) Clone() iterator.Iterator[*Node[K, V]] {
	return &Cursor[K, V]{
		tree: c.tree,
		node: c.node,
		end:  c.end,
	}
}

// Erase - remove the current node and move to its successor
func (c *Cursor[K, V]) Erase() error {
	if nil == c.node {
		return fault.ErrNotFound
	}
	next := c.node.Next()
	if err := c.tree.EraseNode(c.node); nil != err {
		return err
	}
	c.node = next
	c.end = nil == next
	return nil
}
