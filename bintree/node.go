// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

// Colour - red-black tag of a node
type Colour int8

// the colours, an absent child counts as Black
const (
	Red Colour = iota
	Black
)

// String - printable colour
func (c Colour) String() string {
	switch c {
	case Red:
		return "R"
	case Black:
		return "B"
	default:
		return "?"
	}
}

// Node - a node in the tree
type Node[K, V any] struct {
	left    *Node[K, V] // left sub-tree
	right   *Node[K, V] // right sub-tree
	up      *Node[K, V] // points to parent node
	key     K           // key part for ordering
	value   V           // value part for data storage
	nodes   int         // count of nodes in this sub-tree
	balance int8        // AVL: height(left) - height(right)
	colour  Colour      // red-black colour
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// SetValue - replace the value, the key cannot be changed
func (p *Node[K, V]) SetValue(value V) {
	p.value = value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - the left child
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - the right child
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Size - number of nodes in the sub-tree, zero for nil
func (p *Node[K, V]) Size() int {
	if nil == p {
		return 0
	}
	return p.nodes
}

// Balance - balance factor maintained by the AVL policy
func (p *Node[K, V]) Balance() int8 {
	if nil == p {
		return 0
	}
	return p.balance
}

// SetBalance - for use by a balancing policy
func (p *Node[K, V]) SetBalance(b int8) {
	p.balance = b
}

// Colour - colour maintained by the red-black policy, Black for nil
func (p *Node[K, V]) Colour() Colour {
	if nil == p {
		return Black
	}
	return p.colour
}

// SetColour - for use by a balancing policy
func (p *Node[K, V]) SetColour(c Colour) {
	p.colour = c
}

// IsRed - nil safe colour test
func (p *Node[K, V]) IsRed() bool {
	return nil != p && Red == p.colour
}

// Depth - get the depth of a node, the root is at depth zero
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	for parent := p.up; nil != parent; parent = parent.up {
		count += 1
	}
	return count
}

// GetChildrenByDepth - returns all descendants at a specific depth
// below this node, left to right
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	if 0 == depth {
		return []*Node[K, V]{p}
	}
	nodes := []*Node[K, V]{}
	if nil != p.left {
		nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - given a node, return the in-order successor or nil if no
// more nodes
func (p *Node[K, V]) Next() *Node[K, V] {
	if nil != p.right {
		return p.right.first()
	}
	for q := p.up; nil != q; p, q = q, q.up {
		if p == q.left {
			return q
		}
	}
	return nil
}

// Prev - given a node, return the in-order predecessor or nil if no
// more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	if nil != p.left {
		return p.left.last()
	}
	for q := p.up; nil != q; p, q = q, q.up {
		if p == q.right {
			return q
		}
	}
	return nil
}
