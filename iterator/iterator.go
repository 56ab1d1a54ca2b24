// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package iterator - a bidirectional cursor shared by all containers
//
// Each container supplies its own cursor type; the algorithms in this
// package only rely on the Iterator interface so they run unchanged
// over a slice or a tree.
//
// A cursor is either positioned on an element (Valid is true) or
// sits just past the last element (end) or just before the first
// element (before-begin).  Advancing from before-begin moves to the
// first element and retreating from end moves to the last element.
package iterator

// Iterator - cursor capability
type Iterator[T any] interface {
	// Advance - move to the next element, false if now at end
	Advance() bool

	// Retreat - move to the previous element, false if now before
	// the beginning
	Retreat() bool

	// Get - the current element, only meaningful if Valid
	Get() T

	// Valid - true if positioned on an element
	Valid() bool

	// Equal - true if both cursors denote the same position of the
	// same container
	Equal(Iterator[T]) bool

	// Clone - an independent cursor at the same position
	Clone() Iterator[T]
}
