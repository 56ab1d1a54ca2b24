// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

import (
	"fmt"

	"github.com/bitmark-inc/bintree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return nil == checkUp(tree.root, nil)
}

// CheckCounts - check the sub-tree sizes for consistency
func (tree *Tree[K, V]) CheckCounts() bool {
	_, err := checkCounts(tree.root)
	return nil == err && tree.count == tree.root.Size()
}

// CheckOrder - check in-order keys are ascending
func (tree *Tree[K, V]) CheckOrder() bool {
	return nil == tree.checkOrder()
}

// Check - run all structural checks followed by the balancer's own
func (tree *Tree[K, V]) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return fmt.Errorf("root: %v: %w", tree.root.key, fault.ErrParentLink)
	}
	if err := checkUp(tree.root, nil); nil != err {
		return err
	}
	n, err := checkCounts(tree.root)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("count: %d  nodes: %d: %w", tree.count, n, fault.ErrTreeCount)
	}
	if err := tree.checkOrder(); nil != err {
		return err
	}
	return tree.balancer.Verify(tree)
}

// internal: consistency checker
func checkUp[K, V any](p *Node[K, V], up *Node[K, V]) error {
	if nil == p {
		return nil
	}
	if p.up != up {
		return fmt.Errorf("node: %v: %w", p.key, fault.ErrParentLink)
	}
	if err := checkUp(p.left, p); nil != err {
		return err
	}
	return checkUp(p.right, p)
}

// internal: returns the actual size of the sub-tree
func checkCounts[K, V any](p *Node[K, V]) (int, error) {
	if nil == p {
		return 0, nil
	}
	l, err := checkCounts(p.left)
	if nil != err {
		return 0, err
	}
	r, err := checkCounts(p.right)
	if nil != err {
		return 0, err
	}
	if l+r+1 != p.nodes {
		return 0, fmt.Errorf("node: %v  stored: %d  actual: %d: %w", p.key, p.nodes, l+r+1, fault.ErrSubtreeCount)
	}
	return p.nodes, nil
}

// internal: equal neighbours only with the Allow policy
func (tree *Tree[K, V]) checkOrder() error {
	p := tree.root.first()
	if nil == p {
		return nil
	}
	for q := p.Next(); nil != q; p, q = q, q.Next() {
		c := tree.compare(p.key, q.key)
		if c > 0 || (0 == c && Allow != tree.duplicates) {
			return fmt.Errorf("nodes: %v, %v: %w", p.key, q.key, fault.ErrKeyOrder)
		}
	}
	return nil
}
