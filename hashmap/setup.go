// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashmap

import (
	"cmp"

	"github.com/bitmark-inc/logger"
	"github.com/willf/bitset"

	"github.com/bitmark-inc/bintree/allocator"
	"github.com/bitmark-inc/bintree/bintree"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/redblack"
)

// sizing
const (
	MaxLoadFactor  = 0.75 // nodes per bucket before the map grows
	MinimumBuckets = 16   // smallest bucket array
)

// Map - hash map of red-black tree buckets
type Map[K, V any] struct {
	buckets  []*bintree.Tree[K, V] // nil until first used
	occupied *bitset.BitSet        // buckets holding at least one node
	count    int

	hash      HashFunc[K]
	compare   bintree.CompareFunc[K]
	allocator allocator.Allocator[bintree.Node[K, V]]
	options   []bintree.Option // for every bucket tree

	verify bool
	log    *logger.L
}

// settings collected from the options
type settings struct {
	allocator interface{}
	verify    bool
	log       *logger.L
}

// Option - configure a map at construction
type Option func(*settings)

// WithAllocator - node storage shared by every bucket, must be an
// allocator.Allocator[bintree.Node[K, V]] for the map's K and V
func WithAllocator(a interface{}) Option {
	return func(s *settings) {
		s.allocator = a
	}
}

// WithVerify - check the map and every bucket after each mutation
// and panic if anything is inconsistent
func WithVerify(verify bool) Option {
	return func(s *settings) {
		s.verify = verify
	}
}

// WithLogger - log channel for the map and its buckets
func WithLogger(log *logger.L) Option {
	return func(s *settings) {
		s.log = log
	}
}

// New - create an empty map for ordered keys sized for about
// estimated entries
func New[K cmp.Ordered, V any](estimated int, options ...Option) (*Map[K, V], error) {
	return NewWithHash[K, V](estimated, Hash[K], cmp.Compare[K], options...)
}

// NewWithHash - create an empty map with its own hash and order
func NewWithHash[K, V any](estimated int, hash HashFunc[K], compare bintree.CompareFunc[K], options ...Option) (*Map[K, V], error) {
	if nil == hash {
		return nil, fault.ErrMissingHash
	}
	if nil == compare {
		return nil, fault.ErrMissingCompare
	}
	if estimated < 0 {
		return nil, fault.ErrInvalidCount
	}

	s := settings{}
	for _, option := range options {
		option(&s)
	}

	// one allocator for all buckets so nodes can move between them
	var a allocator.Allocator[bintree.Node[K, V]]
	if nil == s.allocator {
		a = allocator.NewHeap[bintree.Node[K, V]]()
	} else {
		ok := false
		a, ok = s.allocator.(allocator.Allocator[bintree.Node[K, V]])
		if !ok || nil == a {
			return nil, fault.ErrInvalidAllocator
		}
	}

	m := &Map[K, V]{
		hash:      hash,
		compare:   compare,
		allocator: a,
		options: []bintree.Option{
			bintree.WithAllocator(a),
			bintree.WithDuplicates(bintree.Reject),
			bintree.WithVerify(s.verify),
		},
		verify: s.verify,
		log:    s.log,
	}
	if nil != s.log {
		m.options = append(m.options, bintree.WithLogger(s.log))
	}

	// fail here rather than on the first insert
	if _, err := m.newBucket(); nil != err {
		return nil, err
	}

	m.reset(initialBuckets(estimated))
	return m, nil
}

// internal: bucket count for an expected number of entries
func initialBuckets(estimated int) int {
	return powerOfTwo(int(float64(estimated)/MaxLoadFactor) + 1)
}

// internal: smallest power of two not below n and MinimumBuckets
func powerOfTwo(n int) int {
	size := MinimumBuckets
	for size < n {
		size <<= 1
	}
	return size
}

// internal: empty bucket array of n buckets
func (m *Map[K, V]) reset(n int) {
	m.buckets = make([]*bintree.Tree[K, V], n)
	m.occupied = bitset.New(uint(n))
}

func (m *Map[K, V]) newBucket() (*bintree.Tree[K, V], error) {
	return redblack.NewWithCompare[K, V](m.compare, m.options...)
}

// internal: the bucket tree at i, created if necessary
func (m *Map[K, V]) bucket(i int) *bintree.Tree[K, V] {
	b := m.buckets[i]
	if nil == b {
		var err error
		b, err = m.newBucket()
		fault.PanicIfError("hash map bucket", err)
		m.buckets[i] = b
	}
	return b
}

// internal: bucket index of a key
func (m *Map[K, V]) index(key K) int {
	return scale(m.hash(key), len(m.buckets))
}

// Len - number of entries
func (m *Map[K, V]) Len() int {
	return m.count
}

// IsEmpty - true if the map holds no entries
func (m *Map[K, V]) IsEmpty() bool {
	return 0 == m.count
}

// BucketCount - size of the bucket array
func (m *Map[K, V]) BucketCount() int {
	return len(m.buckets)
}

// Occupied - number of buckets holding at least one entry
func (m *Map[K, V]) Occupied() int {
	return int(m.occupied.Count())
}

// LoadFactor - entries per bucket
func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.count) / float64(len(m.buckets))
}

// Allocator - the node storage shared by all buckets
func (m *Map[K, V]) Allocator() allocator.Allocator[bintree.Node[K, V]] {
	return m.allocator
}

// Height - height of the tallest bucket tree
func (m *Map[K, V]) Height() int {
	h := 0
	for _, b := range m.buckets {
		if nil != b && b.Height() > h {
			h = b.Height()
		}
	}
	return h
}

// Rotations - rotations performed by the bucket trees currently in use
func (m *Map[K, V]) Rotations() uint64 {
	r := uint64(0)
	for _, b := range m.buckets {
		if nil != b {
			r += b.Rotations()
		}
	}
	return r
}
