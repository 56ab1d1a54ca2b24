// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package iterator

// Slice - cursor over the elements of a slice
//
// position -1 is before-begin and len(items) is end
type Slice[T any] struct {
	items    []T
	position int
}

// OverSlice - cursor at the first element of s (or end if s is empty)
func OverSlice[T any](s []T) *Slice[T] {
	return &Slice[T]{
		items:    s,
		position: 0,
	}
}

// SliceEnd - cursor at the end position of s
func SliceEnd[T any](s []T) *Slice[T] {
	return &Slice[T]{
		items:    s,
		position: len(s),
	}
}

// Advance - move forward one element
func (s *Slice[T]) Advance() bool {
	if s.position < len(s.items) {
		s.position += 1
	}
	return s.Valid()
}

// Retreat - move back one element
func (s *Slice[T]) Retreat() bool {
	if s.position >= 0 {
		s.position -= 1
	}
	return s.Valid()
}

// Get - current element
func (s *Slice[T]) Get() T {
	return s.items[s.position]
}

// Valid - positioned on an element
func (s *Slice[T]) Valid() bool {
	return s.position >= 0 && s.position < len(s.items)
}

// Equal - same backing array and same position
func (s *Slice[T]) Equal(other Iterator[T]) bool {
	o, ok := other.(*Slice[T])
	if !ok {
		return false
	}
	if len(s.items) != len(o.items) || s.position != o.position {
		return false
	}
	if 0 == len(s.items) {
		return true
	}
	return &s.items[0] == &o.items[0]
}

// Clone - copy of the cursor
func (s *Slice[T]) Clone() Iterator[T] {
	return &Slice[T]{
		items:    s.items,
		position: s.position,
	}
}

// Index - the current position
func (s *Slice[T]) Index() int {
	return s.position
}
