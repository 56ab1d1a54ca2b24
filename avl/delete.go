// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/bintree/bintree"
)

// EraseFixup - a node was detached from below removal.Parent
//
// walk up while the sub-tree height has shrunk, this may rotate at
// every level
func (Balancer[K, V]) EraseFixup(tree *bintree.Tree[K, V], removal bintree.Removal[K, V]) {
	p := removal.Parent
	left := removal.Left

	for nil != p {
		top := p
		shrunk := true

		if left {
			// left branch has shrunk
			switch p.Balance() {
			case +1:
				p.SetBalance(0)
			case 0:
				p.SetBalance(-1)
				return
			default: // balance == -1, rebalance
				top, shrunk = rotateRightHeavy(tree, p)
			}
		} else {
			// right branch has shrunk
			switch p.Balance() {
			case -1:
				p.SetBalance(0)
			case 0:
				p.SetBalance(+1)
				return
			default: // balance == +1, rebalance
				top, shrunk = rotateLeftHeavy(tree, p)
			}
		}

		if !shrunk {
			return
		}
		p = top.Parent()
		if nil != p {
			left = top == p.Left()
		}
	}
}
