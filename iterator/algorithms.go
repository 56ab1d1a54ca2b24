// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package iterator

// AdvanceN - advance up to n times, returns the number of steps that
// landed on an element
func AdvanceN[T any](it Iterator[T], n int) int {
	moved := 0
	for i := 0; i < n; i += 1 {
		if !it.Advance() {
			break
		}
		moved += 1
	}
	return moved
}

// RetreatN - retreat up to n times, returns the number of steps that
// landed on an element
func RetreatN[T any](it Iterator[T], n int) int {
	moved := 0
	for i := 0; i < n; i += 1 {
		if !it.Retreat() {
			break
		}
		moved += 1
	}
	return moved
}

// Collect - the elements from the current position up to end, the
// cursor is left at end
func Collect[T any](it Iterator[T]) []T {
	result := []T{}
	for ; it.Valid(); it.Advance() {
		result = append(result, it.Get())
	}
	return result
}

// Each - call f for each element from the current position until f
// returns false or end is reached
func Each[T any](it Iterator[T], f func(T) bool) {
	for ; it.Valid(); it.Advance() {
		if !f(it.Get()) {
			return
		}
	}
}

// Distance - number of advances needed to move from first to last,
// -1 if last is not reached before end; first is not moved
func Distance[T any](first Iterator[T], last Iterator[T]) int {
	it := first.Clone()
	n := 0
	for !it.Equal(last) {
		if !it.Valid() {
			return -1
		}
		it.Advance()
		n += 1
	}
	return n
}
