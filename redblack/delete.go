// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/bintree/bintree"
)

// EraseFixup - a node was detached from below removal.Parent
//
// removal.Node still carries the colour of the position it left.
// Removing a red position changes no black height; otherwise the
// replacement child x carries an extra black which is either
// absorbed by a red x or moved up until a rotation resolves it.
// x may be nil so the side is tracked separately.
func (Balancer[K, V]) EraseFixup(tree *bintree.Tree[K, V], removal bintree.Removal[K, V]) {
	if removal.Node.IsRed() {
		return
	}

	x := removal.Child
	parent := removal.Parent
	left := removal.Left

	for nil != parent && !x.IsRed() {
		if left {
			w := parent.Right()
			if w.IsRed() {
				w.SetColour(bintree.Black)
				parent.SetColour(bintree.Red)
				tree.RotateLeft(parent)
				w = parent.Right()
			}
			if !w.Left().IsRed() && !w.Right().IsRed() {
				w.SetColour(bintree.Red)
				x = parent
				parent = x.Parent()
				left = nil != parent && x == parent.Left()
				continue
			}
			if !w.Right().IsRed() {
				w.Left().SetColour(bintree.Black)
				w.SetColour(bintree.Red)
				tree.RotateRight(w)
				w = parent.Right()
			}
			w.SetColour(parent.Colour())
			parent.SetColour(bintree.Black)
			w.Right().SetColour(bintree.Black)
			tree.RotateLeft(parent)
			x = tree.Root()
			break
		}

		w := parent.Left()
		if w.IsRed() {
			w.SetColour(bintree.Black)
			parent.SetColour(bintree.Red)
			tree.RotateRight(parent)
			w = parent.Left()
		}
		if !w.Left().IsRed() && !w.Right().IsRed() {
			w.SetColour(bintree.Red)
			x = parent
			parent = x.Parent()
			left = nil != parent && x == parent.Left()
			continue
		}
		if !w.Left().IsRed() {
			w.Right().SetColour(bintree.Black)
			w.SetColour(bintree.Red)
			tree.RotateLeft(w)
			w = parent.Left()
		}
		w.SetColour(parent.Colour())
		parent.SetColour(bintree.Black)
		w.Left().SetColour(bintree.Black)
		tree.RotateRight(parent)
		x = tree.Root()
		break
	}

	if nil != x {
		x.SetColour(bintree.Black)
	}
}
