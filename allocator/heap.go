// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package allocator

import (
	"github.com/bitmark-inc/bintree/counter"
)

// Heap - allocate each item from the Go heap
//
// the counters are atomic so a single Heap may be shared by several
// trees in different goroutines
type Heap[T any] struct {
	allocated counter.Counter
	released  counter.Counter
}

// NewHeap - create a heap allocator
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{}
}

// Allocate - never fails
func (h *Heap[T]) Allocate() (*T, error) {
	h.allocated.Increment()
	return new(T), nil
}

// Release - clear the item so it does not hold references
func (h *Heap[T]) Release(item *T) {
	if nil == item {
		return
	}
	var zero T
	*item = zero
	h.released.Increment()
}

// Stats - current totals
func (h *Heap[T]) Stats() Stats {
	allocated := h.allocated.Uint64()
	released := h.released.Uint64()
	return Stats{
		Allocated: allocated,
		Released:  released,
		Live:      allocated - released,
	}
}
