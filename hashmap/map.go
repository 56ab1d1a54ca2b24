// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashmap

import (
	"github.com/bitmark-inc/bintree/bintree"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/iterator"
)

// Insert - add a key or update the value of an existing key
//
// returns a cursor at the entry and true if the key was added.  The
// map may grow first, which invalidates all other cursors.  If the
// allocator fails nothing is added and the error is a
// fault.ErrAllocationFailure.
func (m *Map[K, V]) Insert(key K, value V) (*Cursor[K, V], bool, error) {
	i := m.index(key)
	if b := m.buckets[i]; nil != b {
		if n, err := b.Find(key); nil == err {
			n.SetValue(value)
			return m.cursorAt(i, n), false, nil
		}
	}

	if float64(m.count+1) > MaxLoadFactor*float64(len(m.buckets)) {
		m.resize(2 * len(m.buckets))
		i = m.index(key)
	}

	n, err := m.bucket(i).Insert(key, value)
	if nil != err {
		return nil, false, err
	}
	m.occupied.Set(uint(i))
	m.count += 1
	m.check("insert")

	return m.cursorAt(i, n), true, nil
}

// Find - cursor at the entry for key
func (m *Map[K, V]) Find(key K) (*Cursor[K, V], error) {
	i := m.index(key)
	b := m.buckets[i]
	if nil == b {
		return nil, fault.ErrNotFound
	}
	n, err := b.Find(key)
	if nil != err {
		return nil, err
	}
	return m.cursorAt(i, n), nil
}

// Get - the value stored for key
func (m *Map[K, V]) Get(key K) (V, error) {
	c, err := m.Find(key)
	if nil != err {
		var zero V
		return zero, err
	}
	return c.Value(), nil
}

// Contains - true if key is present
func (m *Map[K, V]) Contains(key K) bool {
	_, err := m.Find(key)
	return nil == err
}

// Entry - the node for key, adding one with the zero value if absent
//
// the value can be changed in place with SetValue
func (m *Map[K, V]) Entry(key K) (*bintree.Node[K, V], error) {
	if c, err := m.Find(key); nil == err {
		return c.Get(), nil
	}
	var zero V
	c, _, err := m.Insert(key, zero)
	if nil != err {
		return nil, err
	}
	return c.Get(), nil
}

// Erase - remove key returning its value
func (m *Map[K, V]) Erase(key K) (V, error) {
	var zero V
	i := m.index(key)
	b := m.buckets[i]
	if nil == b || b.IsEmpty() {
		return zero, fault.ErrNotFound
	}
	v, err := b.Erase(key)
	if nil != err {
		return zero, err
	}
	m.removed(i)
	return v, nil
}

// EraseAt - remove the entry at c and move c to the next entry
func (m *Map[K, V]) EraseAt(c *Cursor[K, V]) error {
	if nil == c || c.m != m {
		return fault.ErrForeignNode
	}
	return c.Erase()
}

// EraseRange - remove the entries from first up to but not including
// last, returning the number removed
//
// first is left at last's position
func (m *Map[K, V]) EraseRange(first *Cursor[K, V], last *Cursor[K, V]) (int, error) {
	if nil == first || nil == last || first.m != m || last.m != m {
		return 0, fault.ErrForeignNode
	}
	n := iterator.Distance[*bintree.Node[K, V]](first, last)
	if n < 0 {
		return 0, fault.ErrInvalidRange
	}
	for i := 0; i < n; i += 1 {
		if err := first.Erase(); nil != err {
			return i, err
		}
	}
	return n, nil
}

// internal: bookkeeping after a node left bucket i
func (m *Map[K, V]) removed(i int) {
	m.count -= 1
	if m.buckets[i].IsEmpty() {
		m.occupied.Clear(uint(i))
	}
	m.check("erase")
}

// Clear - release every entry, the bucket count is kept
func (m *Map[K, V]) Clear() {
	n := m.count
	for _, b := range m.buckets {
		if nil != b {
			b.Clear()
		}
	}
	m.reset(len(m.buckets))
	m.count = 0
	if nil != m.log {
		m.log.Debugf("clear: released: %d entries", n)
	}
}

// Rehash - grow to at least buckets buckets, rounded up to a power
// of two; a smaller count is ignored
func (m *Map[K, V]) Rehash(buckets int) error {
	if buckets < 0 {
		return fault.ErrInvalidCount
	}
	if n := powerOfTwo(buckets); n > len(m.buckets) {
		m.resize(n)
		m.check("rehash")
	}
	return nil
}

// Reserve - grow so that count entries fit without exceeding the
// load factor
func (m *Map[K, V]) Reserve(count int) error {
	if count < 0 {
		return fault.ErrInvalidCount
	}
	return m.Rehash(int(float64(count)/MaxLoadFactor) + 1)
}

// internal: move every node into a new bucket array of n buckets
//
// nodes are moved between trees sharing one allocator so this
// cannot fail for lack of memory
func (m *Map[K, V]) resize(n int) {
	old := m.buckets
	m.reset(n)

	for _, b := range old {
		if nil == b {
			continue
		}
		for p := b.Root(); nil != p; p = b.Root() {
			i := m.index(p.Key())
			fault.PanicIfError("hash map rehash", b.Move(p, m.bucket(i)))
			m.occupied.Set(uint(i))
		}
	}

	if nil != m.log {
		m.log.Debugf("rehash: buckets: %d → %d  entries: %d", len(old), n, m.count)
	}
}

// internal: debug verification after a mutation
func (m *Map[K, V]) check(operation string) {
	if !m.verify {
		return
	}
	if err := m.Check(); nil != err {
		fault.Panicf("%s: hash map invariant broken: %s", operation, err)
	}
}
