// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

import (
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/allocator"
	"github.com/bitmark-inc/bintree/fault"
)

// Duplicates - what Insert does with a key that is already present
type Duplicates int

// the duplicate policies
const (
	Reject  Duplicates = iota // fail with fault.ErrDuplicateKey
	Replace                   // overwrite the value of the existing node
	Allow                     // add another node after all equal keys
)

// String - printable policy name
func (d Duplicates) String() string {
	switch d {
	case Reject:
		return "reject"
	case Replace:
		return "replace"
	case Allow:
		return "allow"
	default:
		return "unknown"
	}
}

// ParseDuplicates - convert a policy name
func ParseDuplicates(s string) (Duplicates, error) {
	switch strings.ToLower(s) {
	case "", "reject":
		return Reject, nil
	case "replace":
		return Replace, nil
	case "allow":
		return Allow, nil
	default:
		return Reject, fault.ErrInvalidDuplicates
	}
}

// CompareFunc - total order over keys: negative if a < b, zero if
// equal, positive if a > b
type CompareFunc[K any] func(a K, b K) int

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root       *Node[K, V]
	count      int
	compare    CompareFunc[K]
	balancer   Balancer[K, V]
	allocator  allocator.Allocator[Node[K, V]]
	duplicates Duplicates
	verify     bool
	rotations  uint64
	log        *logger.L
}

// settings collected from the options
type settings struct {
	allocator  interface{}
	duplicates Duplicates
	verify     bool
	log        *logger.L
}

// Option - configure a tree at construction
type Option func(*settings)

// WithAllocator - node storage, must be an
// allocator.Allocator[bintree.Node[K, V]] for the tree's K and V
func WithAllocator(a interface{}) Option {
	return func(s *settings) {
		s.allocator = a
	}
}

// WithDuplicates - select the duplicate key policy
func WithDuplicates(d Duplicates) Option {
	return func(s *settings) {
		s.duplicates = d
	}
}

// WithVerify - check every invariant after each mutation and panic
// if any is broken
func WithVerify(verify bool) Option {
	return func(s *settings) {
		s.verify = verify
	}
}

// WithLogger - log channel for the tree
func WithLogger(log *logger.L) Option {
	return func(s *settings) {
		s.log = log
	}
}

// New - create an initially empty tree
//
// without WithAllocator every node is allocated from the heap
func New[K, V any](compare CompareFunc[K], balancer Balancer[K, V], options ...Option) (*Tree[K, V], error) {
	if nil == compare {
		return nil, fault.ErrMissingCompare
	}
	if nil == balancer {
		return nil, fault.ErrInvalidBalancer
	}

	s := settings{
		duplicates: Reject,
	}
	for _, option := range options {
		option(&s)
	}

	switch s.duplicates {
	case Reject, Replace, Allow:
	default:
		return nil, fault.ErrInvalidDuplicates
	}

	var a allocator.Allocator[Node[K, V]]
	if nil == s.allocator {
		a = allocator.NewHeap[Node[K, V]]()
	} else {
		ok := false
		a, ok = s.allocator.(allocator.Allocator[Node[K, V]])
		if !ok || nil == a {
			return nil, fault.ErrInvalidAllocator
		}
	}

	return &Tree[K, V]{
		root:       nil,
		count:      0,
		compare:    compare,
		balancer:   balancer,
		allocator:  a,
		duplicates: s.duplicates,
		verify:     s.verify,
		log:        s.log,
	}, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Rotations - number of single rotations performed since creation
func (tree *Tree[K, V]) Rotations() uint64 {
	return tree.rotations
}

// Balancer - the balancing policy
func (tree *Tree[K, V]) Balancer() Balancer[K, V] {
	return tree.balancer
}

// Allocator - the node storage
func (tree *Tree[K, V]) Allocator() allocator.Allocator[Node[K, V]] {
	return tree.allocator
}

// Duplicates - the duplicate key policy
func (tree *Tree[K, V]) Duplicates() Duplicates {
	return tree.duplicates
}

// Compare - apply the tree's order to two keys
func (tree *Tree[K, V]) Compare(a K, b K) int {
	return tree.compare(a, b)
}
