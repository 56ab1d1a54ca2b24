// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/bintree/bintree"
)

// internal: p is already left heavy and its left sub-tree has grown
// (or its right has shrunk)
//
// returns the new root of the sub-tree and whether the height of
// the sub-tree is now one less than before the change
func rotateLeftHeavy[K, V any](tree *bintree.Tree[K, V], p *bintree.Node[K, V]) (*bintree.Node[K, V], bool) {
	p1 := p.Left()
	switch p1.Balance() {
	case +1:
		// single LL rotation
		tree.RotateRight(p)
		p.SetBalance(0)
		p1.SetBalance(0)
		return p1, true

	case 0:
		// single LL rotation, only arises on delete
		tree.RotateRight(p)
		p.SetBalance(+1)
		p1.SetBalance(-1)
		return p1, false
	}

	// double LR rotation
	p2 := p1.Right()
	tree.RotateLeft(p1)
	tree.RotateRight(p)
	switch p2.Balance() {
	case +1:
		p1.SetBalance(0)
		p.SetBalance(-1)
	case 0:
		p1.SetBalance(0)
		p.SetBalance(0)
	default:
		p1.SetBalance(+1)
		p.SetBalance(0)
	}
	p2.SetBalance(0)
	return p2, true
}

// internal: mirror of rotateLeftHeavy
func rotateRightHeavy[K, V any](tree *bintree.Tree[K, V], p *bintree.Node[K, V]) (*bintree.Node[K, V], bool) {
	p1 := p.Right()
	switch p1.Balance() {
	case -1:
		// single RR rotation
		tree.RotateLeft(p)
		p.SetBalance(0)
		p1.SetBalance(0)
		return p1, true

	case 0:
		// single RR rotation, only arises on delete
		tree.RotateLeft(p)
		p.SetBalance(-1)
		p1.SetBalance(+1)
		return p1, false
	}

	// double RL rotation
	p2 := p1.Left()
	tree.RotateRight(p1)
	tree.RotateLeft(p)
	switch p2.Balance() {
	case +1:
		p.SetBalance(0)
		p1.SetBalance(-1)
	case 0:
		p.SetBalance(0)
		p1.SetBalance(0)
	default:
		p.SetBalance(+1)
		p1.SetBalance(0)
	}
	p2.SetBalance(0)
	return p2, true
}
