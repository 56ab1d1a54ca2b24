// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package allocator

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/fault"
)

// DefaultPieces - number of items in each block of a pool
const DefaultPieces = 4096

// Pool - carve items out of fixed size blocks
//
// a block is never resized or moved, so item addresses are stable;
// released items go onto a free list and are handed out again before
// any new block space is used
type Pool[T any] struct {
	sync.Mutex

	pieces    int   // items per block
	maxBlocks int   // zero for no limit
	blocks    [][]T // the backing storage
	used      int   // items taken from the last block
	free      []*T  // released items

	allocated uint64
	released  uint64
	rejected  uint64

	// only with checking: items handed out and not yet released
	outstanding map[*T]struct{}

	log *logger.L
}

// EnableChecks - track every item handed out so that a second
// release of an item, or release of an item this pool never
// allocated, is logged critically and refused instead of corrupting
// the free list
//
// must be called before the first Allocate
func (p *Pool[T]) EnableChecks() error {
	p.Lock()
	defer p.Unlock()

	if 0 != p.allocated {
		return fault.ErrAlreadyInitialised
	}
	if nil == p.outstanding {
		p.outstanding = make(map[*T]struct{})
	}
	return nil
}

// NewPool - create a pool of blocks each holding pieces items
//
// pieces of zero selects DefaultPieces; maxBlocks of zero allows the
// pool to grow without limit, otherwise Allocate fails with
// fault.ErrAllocationFailure once every item of maxBlocks blocks is
// in use.  log may be nil.
func NewPool[T any](pieces int, maxBlocks int, log *logger.L) (*Pool[T], error) {
	if 0 == pieces {
		pieces = DefaultPieces
	}
	if pieces < 0 || maxBlocks < 0 {
		return nil, fault.ErrInvalidPoolSize
	}
	return &Pool[T]{
		pieces:    pieces,
		maxBlocks: maxBlocks,
		log:       log,
	}, nil
}

// Allocate - reuse a released item if any are available, otherwise
// take the next unused item of the current block
func (p *Pool[T]) Allocate() (*T, error) {
	p.Lock()
	defer p.Unlock()

	if n := len(p.free); n > 0 {
		item := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		p.hand(item)
		return item, nil
	}

	if 0 == len(p.blocks) || p.used == p.pieces {
		if p.maxBlocks > 0 && len(p.blocks) >= p.maxBlocks {
			if nil != p.log {
				p.log.Warnf("pool exhausted: %d blocks of %d items", len(p.blocks), p.pieces)
			}
			return nil, fault.ErrAllocationFailure
		}
		p.blocks = append(p.blocks, make([]T, p.pieces))
		p.used = 0
		if nil != p.log {
			p.log.Debugf("pool block: %d  items: %d", len(p.blocks), p.pieces)
		}
	}

	block := p.blocks[len(p.blocks)-1]
	item := &block[p.used]
	p.used += 1
	p.hand(item)
	return item, nil
}

// internal: count an item going out, lock must be held
func (p *Pool[T]) hand(item *T) {
	p.allocated += 1
	if nil != p.outstanding {
		p.outstanding[item] = struct{}{}
	}
}

// Release - clear an item and keep it for reuse
func (p *Pool[T]) Release(item *T) {
	if nil == item {
		return
	}
	p.Lock()
	defer p.Unlock()

	if nil != p.outstanding {
		if _, ok := p.outstanding[item]; !ok {
			p.rejected += 1
			fault.Criticalf("pool release: item: %p is not allocated from this pool", item)
			return
		}
		delete(p.outstanding, item)
	}

	var zero T
	*item = zero

	p.free = append(p.free, item)
	p.released += 1
}

// Stats - current totals
func (p *Pool[T]) Stats() Stats {
	p.Lock()
	defer p.Unlock()

	capacity := uint64(0)
	if p.maxBlocks > 0 {
		capacity = uint64(p.maxBlocks * p.pieces)
	}
	return Stats{
		Allocated: p.allocated,
		Released:  p.released,
		Live:      p.allocated - p.released,
		Capacity:  capacity,
		Rejected:  p.rejected,
	}
}

// Blocks - number of blocks obtained so far
func (p *Pool[T]) Blocks() int {
	p.Lock()
	defer p.Unlock()
	return len(p.blocks)
}
