// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/allocator"
	"github.com/bitmark-inc/bintree/avl"
	"github.com/bitmark-inc/bintree/bintree"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/redblack"
	"github.com/bitmark-inc/bintree/reference"
)

// the tree type under test
type tree = bintree.Tree[int, int]
type node = bintree.Node[int, int]

// number of cursor steps compared after a lower bound
const boundSteps = 5

// Result - totals for one workload
type Result struct {
	Name        string
	Balancer    string
	Allocator   string
	Inserts     uint64 // successful inserts
	Duplicates  uint64 // inserts of an existing key
	Erases      uint64 // successful erases
	Misses      uint64 // erase or find of an absent key
	Finds       uint64 // successful finds
	Bounds      uint64 // lower bound walks
	Failures    uint64 // allocation failures
	Count       int
	Height      int
	Rotations   uint64
	Memory      allocator.Stats
	Interrupted bool
	Duration    time.Duration
}

// common to the tree and map runners
type state struct {
	config    *Config
	log       *logger.L
	random    *rand.Rand
	allocator allocator.Allocator[node]
	model     *reference.List[int, int]
	result    *Result
}

// the state of a running tree workload
type runner struct {
	state
	tree *tree
}

// Run - exercise a tree built from config against the reference
// model, stopping early if shutdown is closed
//
// config must have been validated.  log may be nil.  If printer is
// not nil the tree is drawn on it before being cleared.
func Run(config *Config, log *logger.L, printer io.Writer, shutdown <-chan struct{}) (*Result, error) {
	if HashMapBalancer == config.Balancer {
		return runMap(config, log, printer, shutdown)
	}

	r, err := newRunner(config, log)
	if nil != err {
		return nil, err
	}

	start := time.Now()
	r.infof("start: balancer: %s  allocator: %s  duplicates: %s  seed: %d", config.Balancer, config.Allocator, r.tree.Duplicates(), config.Seed)

	err = r.exercise(shutdown)
	if nil == err {
		err = r.compareAll()
	}
	err = r.finish(printer, err)

	r.result.Duration = time.Since(start)
	if nil != err {
		return r.result, err
	}

	r.infof("finish: inserts: %d  erases: %d  finds: %d  rotations: %d  time: %s", r.result.Inserts, r.result.Erases, r.result.Finds, r.result.Rotations, r.result.Duration)
	return r.result, nil
}

// internal: tree, model and allocator for a validated config
func newRunner(config *Config, log *logger.L) (*runner, error) {
	duplicates, err := bintree.ParseDuplicates(config.Duplicates)
	if nil != err {
		return nil, err
	}

	a, err := newAllocator(config, log)
	if nil != err {
		return nil, err
	}

	t, err := newTree(config, a, duplicates, log)
	if nil != err {
		return nil, err
	}

	return &runner{
		state: newState(config, log, a, duplicates),
		tree:  t,
	}, nil
}

func newState(config *Config, log *logger.L, a allocator.Allocator[node], duplicates bintree.Duplicates) state {
	return state{
		config:    config,
		log:       log,
		random:    rand.New(rand.NewSource(config.Seed)),
		allocator: a,
		model:     reference.New[int, int](cmp.Compare[int], duplicates),
		result: &Result{
			Name:      config.Name,
			Balancer:  config.Balancer,
			Allocator: config.Allocator,
		},
	}
}

// internal: record the final shape, then release every node and
// collect the allocator totals whether or not the run failed
func (r *runner) finish(printer io.Writer, err error) error {
	r.result.Count = r.tree.Count()
	r.result.Height = r.tree.Height()
	r.result.Rotations = r.tree.Rotations()
	if nil != printer {
		r.tree.Fprint(printer, false)
	}

	r.tree.Clear()
	return r.collect(err)
}

// internal: allocator totals once every node should be released
func (s *state) collect(err error) error {
	if reporter, ok := s.allocator.(allocator.Reporter); ok {
		s.result.Memory = reporter.Stats()
		if nil == err && 0 != s.result.Memory.Live {
			err = s.mismatch("allocator: %d nodes not released", s.result.Memory.Live)
		}
		if nil == err && 0 != s.result.Memory.Rejected {
			err = s.mismatch("allocator: %d releases refused", s.result.Memory.Rejected)
		}
	}
	return err
}

// internal: node storage for the workload
func newAllocator(config *Config, log *logger.L) (allocator.Allocator[node], error) {
	switch config.Allocator {
	case HeapAllocator:
		return allocator.NewHeap[node](), nil
	case PoolAllocator:
		pool, err := allocator.NewPool[node](config.PoolPieces, config.PoolBlocks, log)
		if nil != err {
			return nil, err
		}
		if config.Verify {
			if err := pool.EnableChecks(); nil != err {
				return nil, err
			}
		}
		return pool, nil
	default:
		return nil, fault.ErrInvalidAllocator
	}
}

// internal: tree for the configured policy
func newTree(config *Config, a allocator.Allocator[node], duplicates bintree.Duplicates, log *logger.L) (*tree, error) {
	options := []bintree.Option{
		bintree.WithAllocator(a),
		bintree.WithDuplicates(duplicates),
		bintree.WithVerify(config.Verify),
	}
	if nil != log {
		options = append(options, bintree.WithLogger(log))
	}

	switch config.Balancer {
	case avl.Name:
		return avl.New[int, int](options...)
	case redblack.Name:
		return redblack.New[int, int](options...)
	case PlainBalancer:
		return bintree.New[int, int](cmp.Compare[int], bintree.Plain[int, int]{}, options...)
	default:
		return nil, fault.ErrInvalidBalancer
	}
}

// internal: initial fill then a random mix of operations
func (r *runner) exercise(shutdown <-chan struct{}) error {

	for i := 0; i < r.config.Keys; i += 1 {
		if err := r.insert(); nil != err {
			return err
		}
	}
	r.debugf("filled: %d nodes", r.tree.Count())

	for i := 0; i < r.config.Operations; i += 1 {
		select {
		case <-shutdown:
			r.result.Interrupted = true
			r.infof("interrupted after: %d operations", i)
			return nil
		default:
		}

		var err error
		switch n := r.random.Intn(100); {
		case n < 40:
			err = r.insert()
		case n < 70:
			err = r.erase()
		case n < 90:
			err = r.find()
		default:
			err = r.bound()
		}
		if nil != err {
			return err
		}
		if r.tree.Count() != r.model.Len() {
			return r.mismatch("count: %d  expected: %d", r.tree.Count(), r.model.Len())
		}
	}
	return nil
}

func (s *state) key() int {
	return s.random.Intn(s.config.KeySpace + 1)
}

func (r *runner) insert() error {
	k := r.key()
	v := r.random.Int()

	_, err := r.tree.Insert(k, v)
	if errors.Is(err, fault.ErrAllocationFailure) {
		r.result.Failures += 1
		return nil
	}
	expected := r.model.Insert(k, v)
	if err != expected {
		return r.mismatch("insert: %d  error: %v  expected: %v", k, err, expected)
	}
	if nil == err {
		r.result.Inserts += 1
	} else {
		r.result.Duplicates += 1
	}
	return nil
}

func (r *runner) erase() error {
	k := r.key()

	v, err := r.tree.Erase(k)
	ev, expected := r.model.Erase(k)
	if err != expected || v != ev {
		return r.mismatch("erase: %d  value: %d  error: %v  expected: %d, %v", k, v, err, ev, expected)
	}
	if nil == err {
		r.result.Erases += 1
	} else {
		r.result.Misses += 1
	}
	return nil
}

func (r *runner) find() error {
	k := r.key()

	n, index := r.tree.Search(k)
	ev, eIndex, err := r.model.Find(k)
	if nil != err {
		if nil != n {
			return r.mismatch("find: %d  found: %d  expected absent", k, n.Key())
		}
		r.result.Misses += 1
		return nil
	}
	if nil == n {
		return r.mismatch("find: %d  not found", k)
	}
	if index != eIndex || n.Value() != ev {
		return r.mismatch("find: %d  index: %d  value: %d  expected: %d, %d", k, index, n.Value(), eIndex, ev)
	}
	if g := r.tree.Get(index); g != n {
		return r.mismatch("get: %d  does not match search", index)
	}
	r.result.Finds += 1
	return nil
}

func (r *runner) bound() error {
	k := r.key()

	c := r.tree.LowerBound(k)
	index := r.model.LowerBound(k)
	for i := 0; i < boundSteps; i += 1 {
		e, ok := r.model.Get(index + i)
		if !ok {
			if c.Valid() {
				return r.mismatch("bound: %d  step: %d  found: %d  expected end", k, i, c.Key())
			}
			break
		}
		if !c.Valid() {
			return r.mismatch("bound: %d  step: %d  at end  expected: %d", k, i, e.Key)
		}
		if c.Key() != e.Key || c.Value() != e.Value {
			return r.mismatch("bound: %d  step: %d  found: %d, %d  expected: %d, %d", k, i, c.Key(), c.Value(), e.Key, e.Value)
		}
		c.Advance()
	}
	r.result.Bounds += 1
	return nil
}

// internal: whole tree against the model then the tree's own checks
func (r *runner) compareAll() error {
	entries := r.model.Entries()
	i := 0
	var err error
	r.tree.Ascend(func(n *node) bool {
		if i >= len(entries) {
			err = r.mismatch("extra node: %d", n.Key())
			return false
		}
		if n.Key() != entries[i].Key || n.Value() != entries[i].Value {
			err = r.mismatch("[%d]: %d, %d  expected: %d, %d", i, n.Key(), n.Value(), entries[i].Key, entries[i].Value)
			return false
		}
		i += 1
		return true
	})
	if nil != err {
		return err
	}
	if i != len(entries) {
		return r.mismatch("nodes: %d  expected: %d", i, len(entries))
	}
	if err := r.tree.Check(); nil != err {
		if nil != r.log {
			r.log.Errorf("%s: check: %s", r.config.Name, err)
		}
		return err
	}
	return nil
}

func (s *state) mismatch(format string, arguments ...interface{}) error {
	message := fmt.Sprintf(format, arguments...)
	if nil != s.log {
		s.log.Errorf("%s: %s", s.config.Name, message)
	}
	return fmt.Errorf("%s: %s: %w", s.config.Name, message, fault.ErrModelMismatch)
}

func (s *state) infof(format string, arguments ...interface{}) {
	if nil != s.log {
		s.log.Infof("%s: "+format, append([]interface{}{s.config.Name}, arguments...)...)
	}
}

func (s *state) debugf(format string, arguments ...interface{}) {
	if nil != s.log {
		s.log.Debugf("%s: "+format, append([]interface{}{s.config.Name}, arguments...)...)
	}
}
