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

// Cursor - position in a map, visiting buckets in index order and
// each bucket in key order
//
// when node is nil the cursor is at end (end is true) or
// before-begin (end is false)
type Cursor[K, V any] struct {
	m      *Map[K, V]
	bucket int
	node   *bintree.Node[K, V]
	end    bool
}

var _ iterator.Iterator[*bintree.Node[int, int]] = (*Cursor[int, int])(nil)

// Begin - cursor at the first entry, or end if the map is empty
func (m *Map[K, V]) Begin() *Cursor[K, V] {
	c := &Cursor[K, V]{
		m:      m,
		bucket: -1,
	}
	c.Advance()
	return c
}

// End - cursor just past the last entry
func (m *Map[K, V]) End() *Cursor[K, V] {
	return &Cursor[K, V]{
		m:      m,
		bucket: len(m.buckets),
		end:    true,
	}
}

func (m *Map[K, V]) cursorAt(bucket int, node *bintree.Node[K, V]) *Cursor[K, V] {
	return &Cursor[K, V]{
		m:      m,
		bucket: bucket,
		node:   node,
	}
}

// Advance - move to the next entry
func (c *Cursor[K, V]) Advance() bool {
	switch {
	case nil != c.node:
		if next := c.node.Next(); nil != next {
			c.node = next
			return true
		}
		c.seekForward(c.bucket + 1)
	case !c.end:
		c.seekForward(0)
	}
	return nil != c.node
}

// Retreat - move to the previous entry
func (c *Cursor[K, V]) Retreat() bool {
	switch {
	case nil != c.node:
		if prev := c.node.Prev(); nil != prev {
			c.node = prev
			return true
		}
		c.seekBackward(c.bucket - 1)
	case c.end:
		c.seekBackward(len(c.m.buckets) - 1)
	}
	return nil != c.node
}

// internal: first entry of the first occupied bucket from i, or end
func (c *Cursor[K, V]) seekForward(i int) {
	if i < len(c.m.buckets) {
		if next, ok := c.m.occupied.NextSet(uint(i)); ok {
			c.bucket = int(next)
			c.node = c.m.buckets[next].First()
			c.end = false
			return
		}
	}
	c.bucket = len(c.m.buckets)
	c.node = nil
	c.end = true
}

// internal: last entry of the last occupied bucket up to i, or
// before-begin
func (c *Cursor[K, V]) seekBackward(i int) {
	for ; i >= 0; i -= 1 {
		if c.m.occupied.Test(uint(i)) {
			c.bucket = i
			c.node = c.m.buckets[i].Last()
			c.end = false
			return
		}
	}
	c.bucket = -1
	c.node = nil
	c.end = false
}

// Get - the current node
func (c *Cursor[K, V]) Get() *bintree.Node[K, V] {
	return c.node
}

// Key - key of the current entry
func (c *Cursor[K, V]) Key() K {
	return c.node.Key()
}

// Value - value of the current entry
func (c *Cursor[K, V]) Value() V {
	return c.node.Value()
}

// SetValue - replace the value of the current entry
func (c *Cursor[K, V]) SetValue(value V) {
	c.node.SetValue(value)
}

// Bucket - index of the current bucket
func (c *Cursor[K, V]) Bucket() int {
	return c.bucket
}

// Valid - positioned on an entry
func (c *Cursor[K, V]) Valid() bool {
	return nil != c.node
}

// AtEnd - positioned just past the last entry
func (c *Cursor[K, V]) AtEnd() bool {
	return nil == c.node && c.end
}

// Equal - same map and same position
func (c *Cursor[K, V]) Equal(other iterator.Iterator[*bintree.Node[K, V]]) bool {
	o, ok := other.(*Cursor[K, V])
	if !ok || nil == o {
		return false
	}
	if c.m != o.m || c.node != o.node {
		return false
	}
	return nil != c.node || c.end == o.end
}

// Clone - independent cursor at the same position
func (c *Cursor[K, V]) Clone() iterator.Iterator[*bintree.Node[K, V]] {
	d := *c
	return &d
}

// Erase - remove the current entry and move to the next one
func (c *Cursor[K, V]) Erase() error {
	if nil == c.node {
		return fault.ErrNotFound
	}
	node := c.node
	bucket := c.bucket

	c.Advance()
	if err := c.m.buckets[bucket].EraseNode(node); nil != err {
		return err
	}
	c.m.removed(bucket)
	return nil
}
