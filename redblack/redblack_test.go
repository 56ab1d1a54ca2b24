// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack_test

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bintree/bintree"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/redblack"
)

func newTree(t *testing.T, options ...bintree.Option) *bintree.Tree[int, int] {
	tree, err := redblack.New[int, int](options...)
	require.Nil(t, err, "new")
	return tree
}

func keys(tree *bintree.Tree[int, int]) []int {
	k := []int{}
	tree.Ascend(func(n *bintree.Node[int, int]) bool {
		k = append(k, n.Key())
		return true
	})
	return k
}

// render as key and colour in pre-order
func shape(p *bintree.Node[int, int]) string {
	if nil == p {
		return "."
	}
	b := strings.Builder{}
	b.WriteString("(")
	b.WriteString(p.Colour().String())
	b.WriteString(" ")
	b.WriteString(string(rune('0' + p.Key())))
	b.WriteString(" ")
	b.WriteString(shape(p.Left()))
	b.WriteString(" ")
	b.WriteString(shape(p.Right()))
	b.WriteString(")")
	return b.String()
}

func TestName(t *testing.T) {
	tree := newTree(t)
	assert.Equal(t, "redblack", tree.Balancer().Name(), "name")
}

func TestAscendingInsert(t *testing.T) {
	tree := newTree(t, bintree.WithVerify(true))
	for k := 1; k <= 9; k += 1 {
		_, err := tree.Insert(k, k)
		require.Nil(t, err, "insert: %d", k)
	}

	expected := "(B 4 (R 2 (B 1 . .) (B 3 . .)) (R 6 (B 5 . .) (B 8 (R 7 . .) (R 9 . .))))"
	assert.Equal(t, expected, shape(tree.Root()), "shape")
	assert.Equal(t, 4, tree.Height(), "height")
	assert.Equal(t, uint64(5), tree.Rotations(), "rotations")

	// recolouring only
	_, err := tree.Insert(10, 10)
	require.Nil(t, err, "insert: 10")
	assert.Equal(t, uint64(5), tree.Rotations(), "rotations")
	assert.Equal(t, 5, tree.Height(), "height")
	n, _ := tree.Find(10)
	assert.True(t, n.IsRed(), "new leaf is red")
}

func TestRoundTrip(t *testing.T) {
	tree := newTree(t, bintree.WithVerify(true))

	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		_, err := tree.Insert(k, 10*k)
		require.Nil(t, err, "insert: %d", k)
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, keys(tree), "ascending")
	assert.Equal(t, uint64(0), tree.Rotations(), "rotations")
	assert.Equal(t, "(B 5 (B 3 (R 1 . .) (R 4 . .)) (B 8 (R 7 . .) (R 9 . .)))", shape(tree.Root()), "shape")

	for _, k := range []int{3, 8} {
		v, err := tree.Erase(k)
		assert.Nil(t, err, "erase: %d", k)
		assert.Equal(t, 10*k, v, "value: %d", k)
	}
	assert.Equal(t, []int{1, 4, 5, 7, 9}, keys(tree), "after erase")
}

func TestRotationBounds(t *testing.T) {
	tree := newTree(t)
	r := rand.New(rand.NewSource(3))

	maxInsert := uint64(0)
	maxErase := uint64(0)
	for i := 0; i < 20000; i += 1 {
		k := r.Intn(800)
		before := tree.Rotations()
		if 0 == r.Intn(3) {
			_, _ = tree.Erase(k)
			if d := tree.Rotations() - before; d > maxErase {
				maxErase = d
			}
		} else {
			_, _ = tree.Insert(k, k)
			if d := tree.Rotations() - before; d > maxInsert {
				maxInsert = d
			}
		}
		if 0 == i%500 {
			require.Nil(t, tree.Check(), "check at: %d", i)
		}
	}
	assert.LessOrEqual(t, maxInsert, uint64(2), "insert rotations")
	assert.LessOrEqual(t, maxErase, uint64(3), "erase rotations")
	assert.Nil(t, tree.Check(), "final check")
}

func TestHeightBound(t *testing.T) {
	tree := newTree(t)
	for k := 0; k < 4096; k += 1 {
		_, _ = tree.Insert(k, k)
		n := tree.Count()
		if float64(tree.Height()) > 2*math.Log2(float64(n+1)) {
			t.Fatalf("count: %d  height: %d", n, tree.Height())
		}
	}

	// erase from the front to unbalance as much as possible
	for k := 0; k < 4000; k += 1 {
		_, err := tree.Erase(k)
		require.Nil(t, err, "erase: %d", k)
		n := tree.Count()
		if float64(tree.Height()) > 2*math.Log2(float64(n+1)) {
			t.Fatalf("count: %d  height: %d", n, tree.Height())
		}
	}
	assert.Nil(t, tree.Check(), "check")
}

func TestEraseAll(t *testing.T) {
	tree := newTree(t, bintree.WithVerify(true))
	r := rand.New(rand.NewSource(11))

	k := r.Perm(300)
	for _, key := range k {
		_, _ = tree.Insert(key, key)
	}
	r.Shuffle(len(k), func(i, j int) { k[i], k[j] = k[j], k[i] })
	for _, key := range k {
		v, err := tree.Erase(key)
		require.Nil(t, err, "erase: %d", key)
		require.Equal(t, key, v, "value")
	}
	assert.True(t, tree.IsEmpty(), "empty")
}

func TestVerifyDetectsCorruption(t *testing.T) {
	tree := newTree(t)
	for k := 1; k <= 10; k += 1 {
		_, _ = tree.Insert(k, k)
	}
	require.Nil(t, tree.Check(), "valid")

	tree.Root().SetColour(bintree.Red)
	assert.True(t, errors.Is(tree.Check(), fault.ErrRedRoot), "red root")
	tree.Root().SetColour(bintree.Black)

	n, _ := tree.Find(10)
	n.SetColour(bintree.Black)
	assert.True(t, errors.Is(tree.Check(), fault.ErrBlackHeight), "black height")
	n.SetColour(bintree.Red)

	n, _ = tree.Find(7)
	n.SetColour(bintree.Red)
	assert.True(t, errors.Is(tree.Check(), fault.ErrRedViolation), "red red")
	n.SetColour(bintree.Black)

	assert.Nil(t, tree.Check(), "restored")
}

func TestCompareFunction(t *testing.T) {
	tree, err := redblack.NewWithCompare[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}, bintree.WithVerify(true))
	require.Nil(t, err, "new")

	for i, s := range []string{"beta", "Alpha", "gamma", "DELTA"} {
		_, err := tree.Insert(s, i)
		require.Nil(t, err, "insert: %s", s)
	}
	_, err = tree.Insert("ALPHA", 9)
	assert.Equal(t, fault.ErrDuplicateKey, err, "case insensitive duplicate")

	n, err := tree.Find("delta")
	require.Nil(t, err, "find")
	assert.Equal(t, "DELTA", n.Key(), "stored key")
	assert.Equal(t, "Alpha", tree.First().Key(), "first")
	assert.Equal(t, "gamma", tree.Last().Key(), "last")
}

func TestDuplicatesAllowed(t *testing.T) {
	tree := newTree(t, bintree.WithDuplicates(bintree.Allow), bintree.WithVerify(true))
	for i := 0; i < 50; i += 1 {
		_, err := tree.Insert(i%5, i)
		require.Nil(t, err, "insert: %d", i)
	}
	assert.Equal(t, 50, tree.Count(), "count")

	// values of equal keys come back in insertion order
	c := tree.LowerBound(3)
	for i := 3; i < 50; i += 5 {
		require.True(t, c.Valid(), "valid at: %d", i)
		assert.Equal(t, 3, c.Key(), "key")
		assert.Equal(t, i, c.Value(), "value")
		c.Advance()
	}
	assert.Equal(t, 4, c.Key(), "next key")
}

func TestLabel(t *testing.T) {
	tree := newTree(t)
	for _, k := range []int{2, 1} {
		_, _ = tree.Insert(k, k)
	}
	buffer := &bytes.Buffer{}
	tree.Fprint(buffer, false)
	assert.Contains(t, buffer.String(), "2 ^<nil> B", "root label")
	assert.Contains(t, buffer.String(), "1 ^2 R", "leaf label")
}
