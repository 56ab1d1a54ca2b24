// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"cmp"

	"github.com/bitmark-inc/bintree/bintree"
)

// Name - the policy name used in configuration
const Name = "redblack"

// Balancer - red-black policy, it has no state
type Balancer[K, V any] struct{}

var _ bintree.Balancer[int, int] = Balancer[int, int]{}

// New - create an initially empty red-black tree for ordered keys
func New[K cmp.Ordered, V any](options ...bintree.Option) (*bintree.Tree[K, V], error) {
	return bintree.New[K, V](cmp.Compare[K], Balancer[K, V]{}, options...)
}

// NewWithCompare - create an initially empty red-black tree ordered
// by compare
func NewWithCompare[K, V any](compare bintree.CompareFunc[K], options ...bintree.Option) (*bintree.Tree[K, V], error) {
	return bintree.New[K, V](compare, Balancer[K, V]{}, options...)
}

// Name - policy name
func (Balancer[K, V]) Name() string {
	return Name
}

// Label - the node colour for Print
func (Balancer[K, V]) Label(node *bintree.Node[K, V]) string {
	return node.Colour().String()
}
