// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bintree/bintree"
)

func TestRotations(t *testing.T) {
	tree := newPlain(t, bintree.WithVerify(true))

	//      4
	//     / \
	//    2   6
	//   / \ / \
	//  1  3 5  7
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		_, err := tree.Insert(k, "v")
		assert.Nil(t, err, "insert: %d", k)
	}
	expected := []int{1, 2, 3, 4, 5, 6, 7}

	root := tree.Root()
	assert.Equal(t, 4, root.Key(), "root")

	tree.RotateLeft(root)
	assert.Equal(t, 6, tree.Root().Key(), "root after rotate left")
	assert.Equal(t, 4, tree.Root().Left().Key(), "left of root")
	assert.Equal(t, 5, tree.Root().Left().Right().Key(), "inner grandchild moved")
	assert.Equal(t, 5, tree.Root().Left().Size(), "moved sub-tree size")
	assert.Equal(t, 7, tree.Root().Size(), "root size")
	assert.Equal(t, expected, keys(tree), "order after rotate left")
	assert.True(t, tree.CheckUp(), "up links after rotate left")
	assert.True(t, tree.CheckCounts(), "counts after rotate left")

	tree.RotateRight(tree.Root())
	assert.Equal(t, 4, tree.Root().Key(), "root after rotate right")
	assert.Equal(t, expected, keys(tree), "order after rotate right")
	assert.Equal(t, uint64(2), tree.Rotations(), "rotations")

	// rotation below the root
	n := tree.Root().Left()
	tree.RotateRight(n)
	assert.Equal(t, 1, tree.Root().Left().Key(), "new left of root")
	assert.Nil(t, tree.Root().Left().Left(), "1 has no left")
	assert.Equal(t, 2, tree.Root().Left().Right().Key(), "2 below 1")
	assert.Equal(t, expected, keys(tree), "order after inner rotation")
	assert.Nil(t, tree.Check(), "check")
}

func TestRotateMissingChild(t *testing.T) {
	tree := newPlain(t)
	_, _ = tree.Insert(1, "one")

	assert.PanicsWithValue(t, "abort: rotate left: node: 1 has no right child", func() {
		tree.RotateLeft(tree.Root())
	}, "rotate left")
	assert.PanicsWithValue(t, "abort: rotate right: node: 1 has no left child", func() {
		tree.RotateRight(tree.Root())
	}, "rotate right")
}

func TestInsertLeafOccupied(t *testing.T) {
	tree := newPlain(t)
	_, _ = tree.Insert(5, "five")
	_, _ = tree.Insert(3, "three")

	assert.PanicsWithValue(t, "abort: insert leaf: tree already has a root: 5", func() {
		tree.InsertLeaf(&bintree.Node[int, string]{}, nil, false)
	}, "second root")
	assert.PanicsWithValue(t, "abort: insert leaf: left of: 5 is occupied", func() {
		tree.InsertLeaf(&bintree.Node[int, string]{}, tree.Root(), true)
	}, "occupied left")
}

func TestDetachTwoChildren(t *testing.T) {
	tree := newPlain(t, bintree.WithVerify(true))

	//        50
	//       /  \
	//     30    70
	//          /  \
	//        60    80
	//          \
	//           65
	for _, k := range []int{50, 30, 70, 60, 80, 65} {
		_, _ = tree.Insert(k, "v")
	}

	root := tree.Root()
	removal := tree.Detach(root)

	assert.Equal(t, root, removal.Node, "removed node")
	assert.Equal(t, 70, removal.Parent.Key(), "rebalancing point")
	assert.True(t, removal.Left, "removed from left of 70")
	assert.Equal(t, 65, removal.Child.Key(), "replacement child")
	assert.Nil(t, root.Parent(), "detached up")
	assert.Nil(t, root.Left(), "detached left")
	assert.Nil(t, root.Right(), "detached right")

	assert.Equal(t, 60, tree.Root().Key(), "successor is root")
	assert.Equal(t, []int{30, 60, 65, 70, 80}, keys(tree), "order")
	assert.Equal(t, 5, tree.Count(), "count")
	assert.Nil(t, tree.Check(), "check")
}

func TestDetachSuccessorIsChild(t *testing.T) {
	tree := newPlain(t)
	for _, k := range []int{2, 1, 3, 4} {
		_, _ = tree.Insert(k, "v")
	}

	removal := tree.Detach(tree.Root())
	assert.Equal(t, 3, removal.Parent.Key(), "parent")
	assert.False(t, removal.Left, "side")
	assert.Equal(t, 4, removal.Child.Key(), "child")
	assert.Equal(t, 3, tree.Root().Key(), "root")
	assert.Equal(t, 1, tree.Root().Left().Key(), "left")
	assert.Equal(t, []int{1, 3, 4}, keys(tree), "order")
	assert.Nil(t, tree.Check(), "check")
}

func TestDetachLast(t *testing.T) {
	tree := newPlain(t)
	_, _ = tree.Insert(1, "one")

	removal := tree.Detach(tree.Root())
	assert.Nil(t, removal.Parent, "parent")
	assert.Nil(t, removal.Child, "child")
	assert.True(t, tree.IsEmpty(), "empty")
	assert.Equal(t, 0, tree.Count(), "count")
}

// erasing must not move keys between nodes
func TestNodeStability(t *testing.T) {
	tree := newPlain(t, bintree.WithVerify(true))

	nodes := make(map[int]*bintree.Node[int, string])
	for _, k := range []int{50, 20, 80, 10, 30, 70, 90, 25, 35, 75} {
		n, err := tree.Insert(k, "v")
		assert.Nil(t, err, "insert: %d", k)
		nodes[k] = n
	}

	for _, k := range []int{20, 50, 80} {
		_, err := tree.Erase(k)
		assert.Nil(t, err, "erase: %d", k)
		delete(nodes, k)

		for key, n := range nodes {
			assert.Equal(t, key, n.Key(), "node for: %d changed after erasing: %d", key, k)
			found, err := tree.Find(key)
			assert.Nil(t, err, "find: %d", key)
			assert.Equal(t, n, found, "node address for: %d", key)
		}
	}
}

func TestPrint(t *testing.T) {
	tree := newPlain(t)
	for _, k := range []int{2, 1, 3} {
		_, _ = tree.Insert(k, "v")
	}

	buffer := &bytes.Buffer{}
	depth := tree.Fprint(buffer, false)
	assert.Equal(t, 2, depth, "depth")

	lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	assert.Equal(t, 3, len(lines), "lines")
	assert.True(t, strings.HasPrefix(lines[0], "       /------+ 3 ^2"), "right: %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "|------+ 2 ^<nil>"), "root: %q", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "       \\------+ 1 ^2"), "left: %q", lines[2])

	buffer.Reset()
	tree.Fprint(buffer, true)
	assert.Contains(t, buffer.String(), "2 → v ^<nil> /[1,1]", "data")
}
