// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reference - an ordered association list with the same
// observable behaviour as a bintree.Tree, used as the model when
// exercising the balanced trees
package reference

import (
	"sort"

	"github.com/bitmark-inc/bintree/bintree"
	"github.com/bitmark-inc/bintree/fault"
)

// Entry - one key and value
type Entry[K, V any] struct {
	Key   K
	Value V
}

// List - entries kept in key order
type List[K, V any] struct {
	entries    []Entry[K, V]
	compare    bintree.CompareFunc[K]
	duplicates bintree.Duplicates
}

// New - empty list with the given order and duplicate policy
func New[K, V any](compare bintree.CompareFunc[K], duplicates bintree.Duplicates) *List[K, V] {
	return &List[K, V]{
		entries:    []Entry[K, V]{},
		compare:    compare,
		duplicates: duplicates,
	}
}

// Len - number of entries
func (l *List[K, V]) Len() int {
	return len(l.entries)
}

// internal: index of the first entry not less than key
func (l *List[K, V]) lower(key K) int {
	return sort.Search(len(l.entries), func(i int) bool {
		return l.compare(l.entries[i].Key, key) >= 0
	})
}

// internal: index of the first entry greater than key
func (l *List[K, V]) upper(key K) int {
	return sort.Search(len(l.entries), func(i int) bool {
		return l.compare(l.entries[i].Key, key) > 0
	})
}

// Insert - same duplicate handling as bintree.Tree.Insert
func (l *List[K, V]) Insert(key K, value V) error {
	i := l.lower(key)
	if i < len(l.entries) && 0 == l.compare(l.entries[i].Key, key) {
		switch l.duplicates {
		case bintree.Replace:
			l.entries[i].Value = value
			return nil
		case bintree.Allow:
			i = l.upper(key)
		default:
			return fault.ErrDuplicateKey
		}
	}
	l.entries = append(l.entries, Entry[K, V]{})
	copy(l.entries[i+1:], l.entries[i:])
	l.entries[i] = Entry[K, V]{Key: key, Value: value}
	return nil
}

// Erase - remove the first entry equal to key
func (l *List[K, V]) Erase(key K) (V, error) {
	var zero V
	if 0 == len(l.entries) {
		return zero, fault.ErrEmptyTree
	}
	i := l.lower(key)
	if i >= len(l.entries) || 0 != l.compare(l.entries[i].Key, key) {
		return zero, fault.ErrNotFound
	}
	value := l.entries[i].Value
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return value, nil
}

// Find - value of the first entry equal to key and its index
func (l *List[K, V]) Find(key K) (V, int, error) {
	var zero V
	i := l.lower(key)
	if i >= len(l.entries) || 0 != l.compare(l.entries[i].Key, key) {
		return zero, -1, fault.ErrNotFound
	}
	return l.entries[i].Value, i, nil
}

// LowerBound - index of the first entry not less than key, Len if
// there is none
func (l *List[K, V]) LowerBound(key K) int {
	return l.lower(key)
}

// Get - entry at index
func (l *List[K, V]) Get(index int) (Entry[K, V], bool) {
	if index < 0 || index >= len(l.entries) {
		return Entry[K, V]{}, false
	}
	return l.entries[index], true
}

// Entries - copy of every entry in order
func (l *List[K, V]) Entries() []Entry[K, V] {
	e := make([]Entry[K, V], len(l.entries))
	copy(e, l.entries)
	return e
}

// Clear - remove everything
func (l *List[K, V]) Clear() {
	l.entries = l.entries[:0]
}
