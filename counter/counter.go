// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - counters that can be shared between goroutines
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned counter that can be incremented and
// decremented from several goroutines
type Counter struct {
	n atomic.Uint64
}

// Increment - add 1 to a counter, returns new value
func (c *Counter) Increment() uint64 {
	return c.n.Add(1)
}

// Decrement - subtract 1 from a counter, returns new value
//
// decrementing zero wraps around, this is used as an underflow
// indication by callers that check balanced usage
func (c *Counter) Decrement() uint64 {
	return c.n.Add(^uint64(0))
}

// Add - add a number of items, returns new value
func (c *Counter) Add(n uint64) uint64 {
	return c.n.Add(n)
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return c.n.Load()
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.n.Load()
}

// Reset - set to zero, returns the previous value
func (c *Counter) Reset() uint64 {
	return c.n.Swap(0)
}
