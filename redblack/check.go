// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"fmt"

	"github.com/bitmark-inc/bintree/bintree"
	"github.com/bitmark-inc/bintree/fault"
)

// Verify - root black, no red node with a red child and the same
// black height on every path
func (Balancer[K, V]) Verify(tree *bintree.Tree[K, V]) error {
	root := tree.Root()
	if root.IsRed() {
		return fmt.Errorf("root: %v: %w", root.Key(), fault.ErrRedRoot)
	}
	_, err := blackHeight(root)
	return err
}

// internal: black nodes on each path below p, counting p
func blackHeight[K, V any](p *bintree.Node[K, V]) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.IsRed() && (p.Left().IsRed() || p.Right().IsRed()) {
		return 0, fmt.Errorf("node: %v: %w", p.Key(), fault.ErrRedViolation)
	}
	l, err := blackHeight(p.Left())
	if nil != err {
		return 0, err
	}
	r, err := blackHeight(p.Right())
	if nil != err {
		return 0, err
	}
	if l != r {
		return 0, fmt.Errorf("node: %v  black heights: [%d,%d]: %w", p.Key(), l, r, fault.ErrBlackHeight)
	}
	if p.IsRed() {
		return l, nil
	}
	return 1 + l, nil
}
