// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print - display an ASCII graphic representation of the tree on
// stdout, returns the maximum depth
func (tree *Tree[K, V]) Print(printData bool) int {
	return tree.Fprint(os.Stdout, printData)
}

// Fprint - display an ASCII graphic representation of the tree
func (tree *Tree[K, V]) Fprint(w io.Writer, printData bool) int {
	return tree.printTree(w, tree.root, "", rootBranch, printData)
}

// internal print - returns the maximum depth of the sub-tree
func (tree *Tree[K, V]) printTree(w io.Writer, p *Node[K, V], prefix string, br branch, printData bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, rightBranch, printData)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != p.up {
		up = p.up.key
	}
	label := tree.balancer.Label(p)
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %s/[%d,%d]\n", p.key, p.value, up, label, p.left.Size(), p.right.Size())
	} else {
		fmt.Fprintf(w, "%v ^%v %s\n", p.key, up, label)
	}
	if nil != p.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, leftBranch, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
