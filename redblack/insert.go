// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/bintree/bintree"
)

// InsertFixup - node was just attached as a red leaf
func (Balancer[K, V]) InsertFixup(tree *bintree.Tree[K, V], node *bintree.Node[K, V]) {
	x := node
	x.SetColour(bintree.Red)

	for {
		p := x.Parent()
		if nil == p {
			x.SetColour(bintree.Black)
			return
		}
		if !p.IsRed() {
			return
		}

		// a red parent is never the root
		g := p.Parent()

		if p == g.Left() {
			u := g.Right()
			if u.IsRed() {
				p.SetColour(bintree.Black)
				u.SetColour(bintree.Black)
				g.SetColour(bintree.Red)
				x = g
				continue
			}
			if x == p.Right() {
				tree.RotateLeft(p)
				p = x
			}
			p.SetColour(bintree.Black)
			g.SetColour(bintree.Red)
			tree.RotateRight(g)
			return
		}

		u := g.Left()
		if u.IsRed() {
			p.SetColour(bintree.Black)
			u.SetColour(bintree.Black)
			g.SetColour(bintree.Red)
			x = g
			continue
		}
		if x == p.Left() {
			tree.RotateRight(p)
			p = x
		}
		p.SetColour(bintree.Black)
		g.SetColour(bintree.Red)
		tree.RotateLeft(g)
		return
	}
}
