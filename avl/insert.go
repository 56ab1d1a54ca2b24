// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/bintree/bintree"
)

// InsertFixup - node was just attached as a leaf
//
// walk up while the sub-tree containing node has grown; at most one
// single or double rotation is needed
func (Balancer[K, V]) InsertFixup(tree *bintree.Tree[K, V], node *bintree.Node[K, V]) {
	child := node
	for p := node.Parent(); nil != p; child, p = p, p.Parent() {
		if child == p.Left() {
			// left branch has grown
			switch p.Balance() {
			case -1:
				p.SetBalance(0)
				return
			case 0:
				p.SetBalance(+1)
			default: // balance == +1, rebalance
				rotateLeftHeavy(tree, p)
				return
			}
		} else {
			// right branch has grown
			switch p.Balance() {
			case +1:
				p.SetBalance(0)
				return
			case 0:
				p.SetBalance(-1)
			default: // balance == -1, rebalance
				rotateRightHeavy(tree, p)
				return
			}
		}
	}
}
