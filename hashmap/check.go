// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashmap

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/bintree/bintree"
	"github.com/bitmark-inc/bintree/fault"
)

// Check - occupancy matches the buckets, every bucket is a valid
// red-black tree holding only keys that hash to it, the counts agree
// and the load factor is within bounds
func (m *Map[K, V]) Check() error {
	total := 0
	for i, b := range m.buckets {
		empty := nil == b || b.IsEmpty()
		if empty == m.occupied.Test(uint(i)) {
			return fmt.Errorf("bucket: %d  entries: %t: %w", i, !empty, fault.ErrOccupancy)
		}
		if nil == b {
			continue
		}
		if err := b.Check(); nil != err {
			return fmt.Errorf("bucket: %d: %w", i, err)
		}

		var err error
		b.Ascend(func(n *bintree.Node[K, V]) bool {
			if j := m.index(n.Key()); j != i {
				err = fmt.Errorf("key: %v  bucket: %d  expected: %d: %w", n.Key(), i, j, fault.ErrBucketIndex)
				return false
			}
			return true
		})
		if nil != err {
			return err
		}
		total += b.Count()
	}

	if total != m.count {
		return fmt.Errorf("count: %d  entries: %d: %w", m.count, total, fault.ErrTreeCount)
	}
	if m.LoadFactor() > MaxLoadFactor {
		return fmt.Errorf("load: %.3f: %w", m.LoadFactor(), fault.ErrLoadFactor)
	}
	return nil
}

// Fprint - summary of the map and its occupied buckets
func (m *Map[K, V]) Fprint(w io.Writer) {
	fmt.Fprintf(w, "entries: %d\n", m.count)
	fmt.Fprintf(w, "buckets: %d\n", len(m.buckets))
	fmt.Fprintf(w, "occupied: %d\n", m.Occupied())
	fmt.Fprintf(w, "load factor: %.3f\n", m.LoadFactor())
	for i, ok := m.occupied.NextSet(0); ok; i, ok = m.occupied.NextSet(i + 1) {
		b := m.buckets[i]
		fmt.Fprintf(w, "  bucket: %d  entries: %d  height: %d\n", i, b.Count(), b.Height())
	}
}
