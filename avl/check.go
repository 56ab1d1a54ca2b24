// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/bintree/bintree"
	"github.com/bitmark-inc/bintree/fault"
)

// Verify - recompute every height and compare with the stored
// balance factors
func (Balancer[K, V]) Verify(tree *bintree.Tree[K, V]) error {
	_, err := checkHeight(tree.Root())
	return err
}

// internal: height of a consistent sub-tree
func checkHeight[K, V any](p *bintree.Node[K, V]) (int, error) {
	if nil == p {
		return 0, nil
	}
	l, err := checkHeight(p.Left())
	if nil != err {
		return 0, err
	}
	r, err := checkHeight(p.Right())
	if nil != err {
		return 0, err
	}

	bf := l - r
	if bf < -1 || bf > 1 {
		return 0, fmt.Errorf("node: %v  heights: [%d,%d]: %w", p.Key(), l, r, fault.ErrBalanceFactor)
	}
	if bf != int(p.Balance()) {
		return 0, fmt.Errorf("node: %v  stored: %+d  actual: %+d: %w", p.Key(), p.Balance(), bf, fault.ErrBalanceMismatch)
	}

	if l > r {
		return 1 + l, nil
	}
	return 1 + r, nil
}
